package entity

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// TokenBalance is an ERC-20 holding scaled by the token's decimals.
type TokenBalance struct {
	Name       string          `json:"name"`
	Symbol     string          `json:"symbol"`
	RawBalance *big.Int        `json:"-"`
	Decimals   int32           `json:"decimals"`
	Balance    decimal.Decimal `json:"balance"`
}

// TokenValuation pairs a token balance with its USD price, if the token is priced at all.
type TokenValuation struct {
	TokenBalance
	PriceUSD decimal.Decimal `json:"priceUSD"`
	USDValue decimal.Decimal `json:"usdValue"`
}

// PortfolioValuation is the result of valuing all displayed token balances.
type PortfolioValuation struct {
	Tokens        []TokenValuation `json:"tokens"`
	Chart         []TokenValuation `json:"chart"` // usdValue > 0, descending
	TokenValueUSD decimal.Decimal  `json:"tokenValueUSD"`
	TotalValueUSD decimal.Decimal  `json:"totalValueUSD"`
}
