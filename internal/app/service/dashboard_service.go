package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"wallet_tracker/internal/app/normalizer"
	"wallet_tracker/internal/app/port"
	"wallet_tracker/internal/domain/analytics"
	"wallet_tracker/internal/domain/entity"
	"wallet_tracker/internal/pkg/metrics"
	"wallet_tracker/internal/pkg/utils"
)

var _ port.DashboardService = (*DashboardServiceImpl)(nil)

// DashboardServiceImpl implements port.DashboardService. Upstream calls are made one after
// another; a slow API delays the whole section.
type DashboardServiceImpl struct {
	explorer   port.ChainExplorer
	indexer    port.TokenIndexer
	oracle     port.PriceOracle
	priceTable port.PriceTable
	normalizer *normalizer.Normalizer
	wallets    port.WalletProvider
	logger     port.Logger
	topN       int
}

// NewDashboardService creates a new instance of DashboardServiceImpl. wallets may be nil, in
// which case recently viewed addresses are not recorded.
func NewDashboardService(
	explorer port.ChainExplorer,
	indexer port.TokenIndexer,
	oracle port.PriceOracle,
	priceTable port.PriceTable,
	norm *normalizer.Normalizer,
	wallets port.WalletProvider,
	logger port.Logger,
	topN int,
) *DashboardServiceImpl {
	if topN <= 0 {
		topN = analytics.DefaultTopN
	}
	return &DashboardServiceImpl{
		explorer:   explorer,
		indexer:    indexer,
		oracle:     oracle,
		priceTable: priceTable,
		normalizer: norm,
		wallets:    wallets,
		logger:     logger,
		topN:       topN,
	}
}

// Overview implements port.DashboardService.
func (s *DashboardServiceImpl) Overview(ctx context.Context, address string) port.Overview {
	s.begin("overview", address)
	balance := s.explorer.GetBalance(ctx, address)
	prices := s.oracle.GetPrices(ctx, []string{s.priceTable.NativeID()})
	return s.overview(address, balance, prices)
}

// Tokens implements port.DashboardService.
func (s *DashboardServiceImpl) Tokens(ctx context.Context, address string) port.TokensView {
	s.begin("tokens", address)
	balance := s.explorer.GetBalance(ctx, address)
	tokens := normalizer.DisplayableTokens(s.normalizer.TokenBalances(s.indexer.GetTokenBalances(ctx, address)))

	symbols := make([]string, 0, len(tokens))
	for _, t := range tokens {
		symbols = append(symbols, t.Symbol)
	}
	ids := append([]string{s.priceTable.NativeID()}, s.priceTable.IDsFor(symbols)...)
	prices := s.oracle.GetPrices(ctx, ids)

	overview := s.overview(address, balance, prices)
	portfolio := analytics.ValuePortfolio(tokens, prices, s.priceTable, overview.ValueUSD)
	s.logger.Debug("Tokens valued", "address", address, "tokens", len(tokens), "priced", len(portfolio.Chart))
	return port.TokensView{Overview: overview, Portfolio: portfolio}
}

// NFTs implements port.DashboardService.
func (s *DashboardServiceImpl) NFTs(ctx context.Context, address string) []entity.NFTItem {
	s.begin("nfts", address)
	return s.normalizer.NFTs(s.indexer.GetNFTs(ctx, address))
}

// Transactions implements port.DashboardService.
func (s *DashboardServiceImpl) Transactions(ctx context.Context, address string, filter entity.TransactionFilter) port.TransactionsView {
	s.begin("transactions", address)
	txs := s.transactions(ctx, address)
	return port.TransactionsView{
		Bounds:   analytics.Bounds(txs),
		Filter:   filter,
		Filtered: analytics.Filter(txs, filter),
		Top:      analytics.TopByValue(txs, s.topN),
	}
}

// Gas implements port.DashboardService.
func (s *DashboardServiceImpl) Gas(ctx context.Context, address string, from, to *time.Time) port.GasView {
	s.begin("gas", address)
	txs := s.transactions(ctx, address)
	return port.GasView{
		Bounds: analytics.Bounds(txs),
		Stats:  analytics.GasStatistics(analytics.FilterByDate(txs, from, to)),
	}
}

// Analytics implements port.DashboardService.
func (s *DashboardServiceImpl) Analytics(ctx context.Context, address string) port.AnalyticsView {
	s.begin("analytics", address)
	txs := s.transactions(ctx, address)
	view := port.AnalyticsView{
		TransactionCount:    len(txs),
		BalanceHistory:      []entity.BalancePoint{},
		AverageNonZeroValue: decimal.Zero,
		MostTransactedToken: entity.TokenActivity{Symbol: analytics.NoTokenSymbol},
	}
	if len(txs) == 0 {
		return view
	}

	transfers := s.normalizer.TokenTransfers(address, s.explorer.GetTokenTransfers(ctx, address))
	view.MostActiveDay = analytics.MostActiveDay(txs)
	view.AverageNonZeroValue = analytics.AverageNonZeroValue(txs)
	view.MostTransactedToken = analytics.MostTransactedToken(transfers)
	view.BalanceHistory = analytics.CumulativeBalance(txs)
	return view
}

func (s *DashboardServiceImpl) transactions(ctx context.Context, address string) []entity.Transaction {
	return s.normalizer.Transactions(s.explorer.GetTransactions(ctx, address))
}

func (s *DashboardServiceImpl) overview(address string, balance decimal.Decimal, prices entity.PriceQuote) port.Overview {
	kind, checksum := utils.ClassifyAddress(address)
	ethUSD, ok := prices.USD(s.priceTable.NativeID())
	if !ok {
		ethUSD = decimal.Zero
	}
	ov := port.Overview{
		Address:     address,
		Kind:        kind,
		BalanceETH:  balance,
		ETHPriceUSD: ethUSD,
		ValueUSD:    balance.Mul(ethUSD),
	}
	if kind == entity.AddressKindAccount {
		ov.ChecksumAddress = checksum
	}
	return ov
}

// begin counts the section and records the address as recently viewed. Failing to persist the
// recent list never blocks the section.
func (s *DashboardServiceImpl) begin(section, address string) {
	metrics.IncSection(section)
	s.logger.Debug("Building dashboard section", "section", section, "address", address)
	if s.wallets == nil {
		return
	}
	if err := s.wallets.TouchRecent(address); err != nil {
		s.logger.Warn("Could not record recent wallet", "address", address, "error", err)
	}
}
