package models

import "time"

// Gains is the result of an investment simulation for one ticker:
// buy at the opening price of the start date, sell at the closing
// price of the end date.
//
// Gains is computed as (EndPrice / StartPrice) * Investment and
// FinalValue as Investment + Gains, matching the published analysis.
//
// swagger:model Gains
type Gains struct {
	Ticker        string    `json:"ticker" example:"AAPL"`
	StartDate     time.Time `json:"start_date" example:"2013-02-08T00:00:00Z"`
	EndDate       time.Time `json:"end_date" example:"2018-02-07T00:00:00Z"`
	StartPrice    float64   `json:"start_price" example:"67.71"`
	EndPrice      float64   `json:"end_price" example:"159.54"`
	Investment    float64   `json:"investment" example:"1000"`
	Gains         float64   `json:"gains" example:"2356.36"`
	PercentChange float64   `json:"percent_change" example:"135.63"`
	FinalValue    float64   `json:"final_value" example:"3356.36"`
}
