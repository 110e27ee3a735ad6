package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sppulse/sppulse/internal/domain/dto"
	"github.com/sppulse/sppulse/internal/domain/models"
	"github.com/sppulse/sppulse/internal/service"
)

// Handler provides HTTP handlers for the summary and gains endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Delegate to the service layer
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	summary service.SummaryService
	gains   service.GainsService
}

// NewHandler constructs a new Handler instance.
func NewHandler(summarySvc service.SummaryService, gainsSvc service.GainsService) *Handler {
	return &Handler{summary: summarySvc, gains: gainsSvc}
}

// GetSummary handles GET /api/v1/summary requests.
//
// GetSummary godoc
// @Summary      Ticker distribution summary
// @Description  Returns the number of distinct tickers and the mean, min, and max record count per ticker
// @Tags         summary
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	s, err := h.summary.GetSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch summary", err))
		return
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Tickers:   s.Tickers,
		MeanCount: s.MeanCount,
		MinCount:  s.MinCount,
		MaxCount:  s.MaxCount,
	})
}

// GetGains handles GET /api/v1/gains requests.
//
// Query Parameters:
//   - ticker (string, required): Stock ticker symbol (e.g., "AAPL").
//   - start_date (string, required): Buy date in YYYY-MM-DD format.
//   - end_date (string, required): Sell date in YYYY-MM-DD format.
//   - investment (number, required): Amount invested at the start date (> 0).
//
// GetGains godoc
// @Summary      Investment gains for a ticker
// @Description  Buys at the start date's opening price, sells at the end date's closing price, and reports the outcome
// @Tags         gains
// @Produce      json
// @Param        ticker      query     string  true  "Stock ticker" example(AAPL)
// @Param        start_date  query     string  true  "Buy date in YYYY-MM-DD" example(2013-02-08)
// @Param        end_date    query     string  true  "Sell date in YYYY-MM-DD" example(2018-02-07)
// @Param        investment  query     number  true  "Amount invested" example(1000)
// @Success      200         {object}  dto.GainsResponse  "Success"
// @Failure      400         {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404         {object}  dto.ErrorResponse  "Not Found"
// @Failure      500         {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/gains [get]
func (h *Handler) GetGains(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Query("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}

	start, err := time.Parse(models.DateLayout, c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid start_date format, expected YYYY-MM-DD", err))
		return
	}
	end, err := time.Parse(models.DateLayout, c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid end_date format, expected YYYY-MM-DD", err))
		return
	}
	if !start.Before(end) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("start_date must be before end_date", nil))
		return
	}

	investment, err := strconv.ParseFloat(c.Query("investment"), 64)
	if err != nil || investment <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("investment must be a positive number", err))
		return
	}

	g, err := h.gains.GetGains(c.Request.Context(), ticker, start, end, investment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute gains", err))
		return
	}
	if g == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data found for the specified ticker and dates", nil))
		return
	}

	c.JSON(http.StatusOK, dto.GainsResponse{
		Ticker:        g.Ticker,
		StartDate:     g.StartDate.Format(models.DateLayout),
		EndDate:       g.EndDate.Format(models.DateLayout),
		StartPrice:    g.StartPrice,
		EndPrice:      g.EndPrice,
		Investment:    g.Investment,
		Gains:         g.Gains,
		PercentChange: g.PercentChange,
		FinalValue:    g.FinalValue,
	})
}
