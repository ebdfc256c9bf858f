package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mehrbod2002/brokerdb/internal/models"
	"github.com/mehrbod2002/brokerdb/internal/repository"
	"github.com/mehrbod2002/brokerdb/internal/schema"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	StepCreateCollection = "create-collection"
	StepCreateIndexes    = "create-indexes"
	StepSeedSymbols      = "seed-symbols"
)

type SeedMode string

const (
	// SeedInsert inserts the seed set unconditionally; a rerun fails with
	// ErrAlreadySeeded.
	SeedInsert       SeedMode = "insert"
	SeedSkipExisting SeedMode = "skip-existing"
	SeedNone         SeedMode = "none"
)

type Options struct {
	SeedMode         SeedMode
	UpdateValidators bool
}

type StepResult struct {
	Step       string             `json:"step"`
	Collection string             `json:"collection,omitempty"`
	Outcome    models.StepOutcome `json:"outcome"`
	Detail     string             `json:"detail,omitempty"`
}

type Report struct {
	RunID         string       `json:"runId"`
	Database      string       `json:"database"`
	Steps         []StepResult `json:"steps"`
	SeededSymbols []string     `json:"seededSymbols,omitempty"`
}

type BootstrapService interface {
	// Apply runs the plan once, in order, and stops at the first failure.
	// The returned report covers every step attempted, including the failed one.
	Apply(ctx context.Context) (*Report, error)
	Verify(ctx context.Context) (*DriftReport, error)
	Plan() schema.Plan
}

type bootstrapService struct {
	plan       schema.Plan
	schemaRepo repository.SchemaRepository
	symbolRepo repository.SymbolRepository
	logService LogService
	logger     zerolog.Logger
	opts       Options
	now        func() time.Time
	newID      func() string
}

func NewBootstrapService(plan schema.Plan, schemaRepo repository.SchemaRepository, symbolRepo repository.SymbolRepository, logService LogService, logger zerolog.Logger, opts Options) BootstrapService {
	if opts.SeedMode == "" {
		opts.SeedMode = SeedInsert
	}
	return &bootstrapService{
		plan:       plan,
		schemaRepo: schemaRepo,
		symbolRepo: symbolRepo,
		logService: logService,
		logger:     logger,
		opts:       opts,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

func (s *bootstrapService) Plan() schema.Plan {
	return s.plan
}

func (s *bootstrapService) Apply(ctx context.Context) (*Report, error) {
	report := &Report{RunID: s.newID(), Database: s.schemaRepo.DatabaseName()}
	logger := s.logger.With().Str("run_id", report.RunID).Str("database", report.Database).Logger()
	logger.Info().Msg("Initializing database...")

	record := func(result StepResult) {
		report.Steps = append(report.Steps, result)
		event := logger.Info()
		if result.Outcome == models.OutcomeFailed {
			event = logger.Error()
		}
		event.Str("step", result.Step).
			Str("collection", result.Collection).
			Str("outcome", string(result.Outcome)).
			Str("detail", result.Detail).
			Msg("Bootstrap step")
		if err := s.logService.LogStep(ctx, report.RunID, result); err != nil {
			logger.Warn().Err(err).Str("step", result.Step).Msg("Failed to record bootstrap step")
		}
	}
	fail := func(step, collection string, err error) error {
		record(StepResult{Step: step, Collection: collection, Outcome: models.OutcomeFailed, Detail: err.Error()})
		return &StepError{Step: step, Collection: collection, Err: err}
	}

	for _, cs := range s.plan.Validated {
		outcome, err := s.ensureCollection(ctx, cs)
		if err != nil {
			return report, fail(StepCreateCollection, cs.Name, err)
		}
		record(StepResult{Step: StepCreateCollection, Collection: cs.Name, Outcome: outcome})
	}

	for _, collection := range s.plan.Collections() {
		specs := s.plan.IndexesFor(collection)
		if len(specs) == 0 {
			continue
		}
		result, err := s.ensureIndexes(ctx, collection, specs)
		if err != nil {
			return report, fail(StepCreateIndexes, collection, err)
		}
		record(result)
	}

	if s.opts.SeedMode != SeedNone {
		logger.Info().Msg("Inserting initial symbols...")
	}
	result, seeded, err := s.seedSymbols(ctx)
	if err != nil {
		return report, fail(StepSeedSymbols, schema.CollectionSymbols, err)
	}
	record(result)
	report.SeededSymbols = seeded

	logger.Info().Msg("Database initialization completed successfully!")
	logger.Info().Msgf("Created collections: %s", strings.Join(s.plan.Collections(), ", "))
	logger.Info().Msg("Created indexes for optimal performance")
	if len(seeded) > 0 {
		logger.Info().Msgf("Inserted initial stock symbols: %s", strings.Join(seeded, ", "))
	}
	return report, nil
}

func (s *bootstrapService) ensureCollection(ctx context.Context, cs schema.CollectionSchema) (models.StepOutcome, error) {
	validator := cs.JSONSchema()
	err := s.schemaRepo.CreateCollection(ctx, cs.Name, validator)
	if err == nil {
		return models.OutcomeCreated, nil
	}
	if !repository.IsNamespaceExists(err) {
		return models.OutcomeFailed, err
	}

	live, _, err := s.schemaRepo.GetValidator(ctx, cs.Name)
	if err != nil {
		return models.OutcomeFailed, err
	}
	same, err := schema.SameValidator(validator, live)
	if err != nil {
		return models.OutcomeFailed, err
	}
	if same {
		return models.OutcomeExists, nil
	}
	if !s.opts.UpdateValidators {
		return models.OutcomeFailed, ErrValidatorConflict
	}
	if err := s.schemaRepo.UpdateValidator(ctx, cs.Name, validator); err != nil {
		return models.OutcomeFailed, fmt.Errorf("failed to update validator: %w", err)
	}
	return models.OutcomeUpdated, nil
}

func (s *bootstrapService) ensureIndexes(ctx context.Context, collection string, specs []schema.IndexSpec) (StepResult, error) {
	existing, err := s.schemaRepo.ListIndexes(ctx, collection)
	if err != nil {
		return StepResult{}, fmt.Errorf("failed to list indexes: %w", err)
	}
	have := make(map[string]bool, len(existing))
	for _, idx := range existing {
		have[idx.Name] = true
	}

	var missing []string
	indexModels := make([]mongo.IndexModel, 0, len(specs))
	for _, spec := range specs {
		indexModels = append(indexModels, spec.Model())
		if !have[spec.Name()] {
			missing = append(missing, spec.Name())
		}
	}

	// Existing indexes are sent too so option conflicts surface.
	if _, err := s.schemaRepo.CreateIndexes(ctx, collection, indexModels); err != nil {
		switch {
		case repository.IsDuplicateKey(err):
			return StepResult{}, fmt.Errorf("%w: %v", ErrDuplicateData, err)
		case repository.IsIndexConflict(err):
			return StepResult{}, fmt.Errorf("%w: %v", ErrIndexConflict, err)
		}
		return StepResult{}, err
	}

	if len(missing) == 0 {
		return StepResult{Step: StepCreateIndexes, Collection: collection, Outcome: models.OutcomeExists}, nil
	}
	return StepResult{
		Step:       StepCreateIndexes,
		Collection: collection,
		Outcome:    models.OutcomeCreated,
		Detail:     strings.Join(missing, ", "),
	}, nil
}

func (s *bootstrapService) seedSymbols(ctx context.Context) (StepResult, []string, error) {
	result := StepResult{Step: StepSeedSymbols, Collection: schema.CollectionSymbols}
	tickers := schema.SeedTickers()

	switch s.opts.SeedMode {
	case SeedNone:
		result.Outcome = models.OutcomeSkipped
		result.Detail = "seeding disabled"
		return result, nil, nil
	case SeedSkipExisting:
		n, err := s.symbolRepo.CountBySymbols(ctx, tickers)
		if err != nil {
			return result, nil, fmt.Errorf("failed to count seed symbols: %w", err)
		}
		if n > 0 {
			result.Outcome = models.OutcomeSkipped
			result.Detail = fmt.Sprintf("%d seed symbols already present", n)
			return result, nil, nil
		}
	case SeedInsert:
	default:
		return result, nil, fmt.Errorf("%w: %q", ErrUnknownSeedMode, s.opts.SeedMode)
	}

	symbols := schema.SeedSymbols(s.now())
	for _, sym := range symbols {
		if err := schema.Symbols.Validate(sym); err != nil {
			return result, nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
		}
	}
	if err := s.symbolRepo.InsertSymbols(ctx, symbols); err != nil {
		if repository.IsDuplicateKey(err) {
			return result, nil, fmt.Errorf("%w: %v", ErrAlreadySeeded, err)
		}
		return result, nil, err
	}

	result.Outcome = models.OutcomeCreated
	result.Detail = strings.Join(tickers, ", ")
	return result, tickers, nil
}
