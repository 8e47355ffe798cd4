package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GasStats summarizes gas usage over a set of transactions.
type GasStats struct {
	Count       int             `json:"count"`
	TotalGas    int64           `json:"totalGas"`
	AverageGas  decimal.Decimal `json:"averageGas"`
	MaxGas      int64           `json:"maxGas"`
	EstimateETH decimal.Decimal `json:"estimatedEth"`
	Series      []GasPoint      `json:"series"`
}

// GasPoint is one sample of the gas usage chart.
type GasPoint struct {
	Timestamp time.Time `json:"timeStamp"`
	GasUsed   int64     `json:"gasUsed"`
}

// ActiveDay is the calendar date with the most transactions.
type ActiveDay struct {
	Date  string `json:"date"` // YYYY-MM-DD, UTC
	Count int    `json:"count"`
}

// TokenActivity is the most frequently transferred token symbol.
type TokenActivity struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

// BalancePoint is one step of the approximate historical balance.
type BalancePoint struct {
	Timestamp time.Time       `json:"timeStamp"`
	Balance   decimal.Decimal `json:"balance"`
}

// DateBounds is the first and last calendar date present in a transaction set.
type DateBounds struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
