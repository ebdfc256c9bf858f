package service

import (
	"context"
	"fmt"

	"github.com/mehrbod2002/brokerdb/internal/repository"
	"github.com/mehrbod2002/brokerdb/internal/schema"
)

type CollectionDrift struct {
	Name              string   `json:"name"`
	Exists            bool     `json:"exists"`
	Validated         bool     `json:"validated"`
	ValidatorMatches  bool     `json:"validatorMatches"`
	MissingIndexes    []string `json:"missingIndexes,omitempty"`
	MismatchedIndexes []string `json:"mismatchedIndexes,omitempty"`
}

func (c CollectionDrift) InSync() bool {
	if !c.Exists || len(c.MissingIndexes) > 0 || len(c.MismatchedIndexes) > 0 {
		return false
	}
	return !c.Validated || c.ValidatorMatches
}

type DriftReport struct {
	Database    string            `json:"database"`
	Collections []CollectionDrift `json:"collections"`
}

func (r *DriftReport) InSync() bool {
	for _, c := range r.Collections {
		if !c.InSync() {
			return false
		}
	}
	return true
}

// Verify compares the live database with the plan without writing anything.
func (s *bootstrapService) Verify(ctx context.Context) (*DriftReport, error) {
	report := &DriftReport{Database: s.schemaRepo.DatabaseName()}

	for _, name := range s.plan.Collections() {
		drift := CollectionDrift{Name: name}

		if cs, ok := s.plan.Schema(name); ok {
			drift.Validated = true
			live, exists, err := s.schemaRepo.GetValidator(ctx, name)
			if err != nil {
				return nil, err
			}
			drift.Exists = exists
			if exists {
				same, err := schema.SameValidator(cs.JSONSchema(), live)
				if err != nil {
					return nil, err
				}
				drift.ValidatorMatches = same
			}
		}

		indexes, err := s.schemaRepo.ListIndexes(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to list indexes on %s: %w", name, err)
		}
		if len(indexes) > 0 {
			drift.Exists = true
		}
		byName := make(map[string]repository.IndexInfo, len(indexes))
		for _, idx := range indexes {
			byName[idx.Name] = idx
		}
		for _, spec := range s.plan.IndexesFor(name) {
			live, ok := byName[spec.Name()]
			switch {
			case !ok:
				drift.MissingIndexes = append(drift.MissingIndexes, spec.Name())
			case !spec.Matches(live.Keys, live.Unique):
				drift.MismatchedIndexes = append(drift.MismatchedIndexes, spec.Name())
			}
		}

		if !drift.InSync() {
			s.logger.Warn().Str("collection", name).
				Bool("exists", drift.Exists).
				Strs("missing_indexes", drift.MissingIndexes).
				Strs("mismatched_indexes", drift.MismatchedIndexes).
				Msg("Collection drifted from plan")
		}
		report.Collections = append(report.Collections, drift)
	}
	return report, nil
}
