package service

import (
	"context"

	"github.com/sppulse/sppulse/internal/domain/models"
	"github.com/sppulse/sppulse/internal/storage"
	"github.com/sppulse/sppulse/internal/summary"
)

// SummaryService defines business logic for the ticker distribution summary.
type SummaryService interface {
	GetSummary(ctx context.Context) (*models.Summary, error)
}

type summaryService struct {
	repo storage.PricesRepository
}

func NewSummaryService(repo storage.PricesRepository) SummaryService {
	return &summaryService{repo: repo}
}

// GetSummary fetches per-ticker record counts and reduces them to
// distribution statistics. An empty table yields the zero summary.
func (s *summaryService) GetSummary(ctx context.Context) (*models.Summary, error) {
	counts, err := s.repo.GetTickerCounts()
	if err != nil {
		return nil, err
	}
	out := summary.FromCounts(counts)
	return &out, nil
}
