package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"wallet_tracker/internal/domain/entity"
)

// Overview is the wallet header: native balance and its USD value.
type Overview struct {
	Address         string             `json:"address"`
	Kind            entity.AddressKind `json:"kind"`
	ChecksumAddress string             `json:"checksumAddress,omitempty"`
	BalanceETH      decimal.Decimal    `json:"balanceEth"`
	ETHPriceUSD     decimal.Decimal    `json:"ethPriceUsd"`
	ValueUSD        decimal.Decimal    `json:"valueUsd"`
}

// TokensView is the ERC-20 section.
type TokensView struct {
	Overview  Overview                  `json:"overview"`
	Portfolio entity.PortfolioValuation `json:"portfolio"`
}

// TransactionsView is the filtered transactions section.
type TransactionsView struct {
	Bounds   *entity.DateBounds       `json:"bounds,omitempty"`
	Filter   entity.TransactionFilter `json:"filter"`
	Filtered []entity.Transaction     `json:"filtered"`
	Top      []entity.Transaction     `json:"top"`
}

// GasView is the gas usage section.
type GasView struct {
	Bounds *entity.DateBounds `json:"bounds,omitempty"`
	Stats  entity.GasStats    `json:"stats"`
}

// AnalyticsView is the wallet analytics section. MostActiveDay is nil without transactions.
type AnalyticsView struct {
	TransactionCount    int                   `json:"transactionCount"`
	MostActiveDay       *entity.ActiveDay     `json:"mostActiveDay,omitempty"`
	AverageNonZeroValue decimal.Decimal       `json:"averageNonZeroValue"`
	MostTransactedToken entity.TokenActivity  `json:"mostTransactedToken"`
	BalanceHistory      []entity.BalancePoint `json:"balanceHistory"`
}

// DashboardService builds each dashboard section for a single address.
type DashboardService interface {
	Overview(ctx context.Context, address string) Overview
	Tokens(ctx context.Context, address string) TokensView
	NFTs(ctx context.Context, address string) []entity.NFTItem
	Transactions(ctx context.Context, address string, filter entity.TransactionFilter) TransactionsView
	Gas(ctx context.Context, address string, from, to *time.Time) GasView
	Analytics(ctx context.Context, address string) AnalyticsView
}
