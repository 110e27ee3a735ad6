package dto

// GainsResponse is the JSON body returned by GET /api/v1/gains.
type GainsResponse struct {
	Ticker        string  `json:"ticker" example:"AAPL"`            // Ticker the simulation ran for
	StartDate     string  `json:"start_date" example:"2013-02-08"`  // Buy date (open price)
	EndDate       string  `json:"end_date" example:"2018-02-07"`    // Sell date (close price)
	StartPrice    float64 `json:"start_price" example:"67.71"`      // Opening price on the start date
	EndPrice      float64 `json:"end_price" example:"159.54"`       // Closing price on the end date
	Investment    float64 `json:"investment" example:"1000"`        // Amount invested at the start date
	Gains         float64 `json:"gains" example:"2356.36"`          // (end/start) * investment
	PercentChange float64 `json:"percent_change" example:"135.63"`  // Price change in percent
	FinalValue    float64 `json:"final_value" example:"3356.36"`    // Investment + gains
}
