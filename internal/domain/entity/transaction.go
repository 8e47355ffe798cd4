package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a normalized native transfer as displayed by the dashboard.
type Transaction struct {
	Hash      string          `json:"hash"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Value     decimal.Decimal `json:"value"`   // ETH
	GasUsed   int64           `json:"gasUsed"` // units of gas, not wei
	Timestamp time.Time       `json:"timeStamp"`
}

// TokenTransfer is the part of an ERC-20 transfer used for frequency counting.
type TokenTransfer struct {
	TokenSymbol         string    `json:"tokenSymbol"`
	CounterpartyAddress string    `json:"counterpartyAddress"`
	Timestamp           time.Time `json:"timeStamp"`
}

// TransactionFilter holds the optional predicates of the transactions view.
// A nil date bound, a zero MinValue or an empty substring always passes.
type TransactionFilter struct {
	From         *time.Time      `json:"from,omitempty"`
	To           *time.Time      `json:"to,omitempty"`
	MinValue     decimal.Decimal `json:"minValue"`
	FromContains string          `json:"fromContains,omitempty"`
	ToContains   string          `json:"toContains,omitempty"`
}
