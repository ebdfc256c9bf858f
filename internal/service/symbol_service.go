package service

import (
	"context"

	"github.com/mehrbod2002/brokerdb/internal/models"
	"github.com/mehrbod2002/brokerdb/internal/repository"
)

type SymbolService interface {
	GetSymbol(ctx context.Context, ticker string) (*models.Symbol, error)
	GetAllSymbols(ctx context.Context) ([]*models.Symbol, error)
}

type symbolService struct {
	symbolRepo repository.SymbolRepository
}

func NewSymbolService(symbolRepo repository.SymbolRepository) SymbolService {
	return &symbolService{symbolRepo: symbolRepo}
}

func (s *symbolService) GetSymbol(ctx context.Context, ticker string) (*models.Symbol, error) {
	return s.symbolRepo.GetSymbol(ctx, ticker)
}

func (s *symbolService) GetAllSymbols(ctx context.Context) ([]*models.Symbol, error) {
	return s.symbolRepo.GetAllSymbols(ctx)
}
