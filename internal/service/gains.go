package service

import (
	"context"
	"time"

	"github.com/sppulse/sppulse/internal/domain/models"
	"github.com/sppulse/sppulse/internal/storage"
)

// GainsService defines business logic for the investment simulation:
// buy at the start date's open, sell at the end date's close.
type GainsService interface {
	GetGains(ctx context.Context, ticker string, start, end time.Time, investment float64) (*models.Gains, error)
}

type gainsService struct {
	repo storage.PricesRepository
}

func NewGainsService(repo storage.PricesRepository) GainsService {
	return &gainsService{repo: repo}
}

// GetGains looks up the two prices and computes the outcome:
//
//	gains          = (close_at_end / open_at_start) * investment
//	percent_change = (close_at_end - open_at_start) / open_at_start * 100
//	final_value    = investment + gains
//
// Returns nil (and no error) when the ticker has no data on either date.
func (s *gainsService) GetGains(ctx context.Context, ticker string, start, end time.Time, investment float64) (*models.Gains, error) {
	window, err := s.repo.GetPriceWindow(ticker, start, end)
	if err != nil {
		return nil, err
	}
	if window == nil {
		return nil, nil
	}

	gains := (window.CloseAtEnd / window.OpenAtStart) * investment
	percent := (window.CloseAtEnd - window.OpenAtStart) / window.OpenAtStart * 100

	return &models.Gains{
		Ticker:        ticker,
		StartDate:     start,
		EndDate:       end,
		StartPrice:    window.OpenAtStart,
		EndPrice:      window.CloseAtEnd,
		Investment:    investment,
		Gains:         gains,
		PercentChange: percent,
		FinalValue:    investment + gains,
	}, nil
}
