package service

import (
	"context"

	"github.com/mehrbod2002/brokerdb/internal/models"
	"github.com/mehrbod2002/brokerdb/internal/repository"
)

type LogService interface {
	LogStep(ctx context.Context, runID string, result StepResult) error
	GetAllLogs(ctx context.Context, page, limit int) ([]*models.BootstrapLog, error)
	GetLogsByRunID(ctx context.Context, runID string) ([]*models.BootstrapLog, error)
}

type logService struct {
	logRepo repository.LogRepository
}

// NewLogService returns a service that persists step logs. A nil repository
// turns every call into a no-op.
func NewLogService(logRepo repository.LogRepository) LogService {
	return &logService{logRepo: logRepo}
}

func (s *logService) LogStep(ctx context.Context, runID string, result StepResult) error {
	if s.logRepo == nil {
		return nil
	}
	entry := &models.BootstrapLog{
		RunID:      runID,
		Step:       result.Step,
		Collection: result.Collection,
		Outcome:    result.Outcome,
		Detail:     result.Detail,
	}
	return s.logRepo.SaveLog(ctx, entry)
}

func (s *logService) GetAllLogs(ctx context.Context, page, limit int) ([]*models.BootstrapLog, error) {
	if s.logRepo == nil {
		return []*models.BootstrapLog{}, nil
	}
	return s.logRepo.GetAllLogs(ctx, page, limit)
}

func (s *logService) GetLogsByRunID(ctx context.Context, runID string) ([]*models.BootstrapLog, error) {
	if s.logRepo == nil {
		return []*models.BootstrapLog{}, nil
	}
	return s.logRepo.GetLogsByRunID(ctx, runID)
}
