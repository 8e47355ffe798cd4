package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"wallet_tracker/internal/app/normalizer"
	"wallet_tracker/internal/app/port"
	"wallet_tracker/internal/app/provider"
	"wallet_tracker/internal/domain/entity"
	apitypes "wallet_tracker/internal/entity"
)

const wallet = "0x742d35cc6634c0532925a3b844bc454e4438f44e"

type nopLogger struct{}

func (nopLogger) Info(string, ...any)     {}
func (nopLogger) Debug(string, ...any)    {}
func (nopLogger) Warn(string, ...any)     {}
func (nopLogger) Error(string, ...any)    {}
func (nopLogger) With(...any) port.Logger { return nopLogger{} }

type mockExplorer struct {
	balance       decimal.Decimal
	txs           []apitypes.RawTransaction
	transfers     []apitypes.RawTokenTransfer
	transferCalls int
}

func (m *mockExplorer) GetBalance(context.Context, string) decimal.Decimal { return m.balance }
func (m *mockExplorer) GetTransactions(context.Context, string) []apitypes.RawTransaction {
	return m.txs
}
func (m *mockExplorer) GetTokenTransfers(context.Context, string) []apitypes.RawTokenTransfer {
	m.transferCalls++
	return m.transfers
}

type mockIndexer struct {
	tokens []apitypes.RawTokenBalance
	nfts   []apitypes.RawNFT
}

func (m *mockIndexer) GetTokenBalances(context.Context, string) []apitypes.RawTokenBalance {
	return m.tokens
}
func (m *mockIndexer) GetNFTs(context.Context, string) []apitypes.RawNFT { return m.nfts }

type mockOracle struct {
	prices    map[string]decimal.Decimal
	requested [][]string
}

func (m *mockOracle) GetPrices(_ context.Context, ids []string) entity.PriceQuote {
	m.requested = append(m.requested, ids)
	quote := entity.PriceQuote{}
	for _, id := range ids {
		if p, ok := m.prices[id]; ok {
			quote[id] = p
		}
	}
	return quote
}

type mockWallets struct {
	touched []string
}

func (m *mockWallets) GetWallets() (entity.WalletList, error) { return entity.WalletList{}, nil }
func (m *mockWallets) AddBookmark(string) (entity.WalletList, error) {
	return entity.WalletList{}, nil
}
func (m *mockWallets) RemoveBookmark(string) (entity.WalletList, error) {
	return entity.WalletList{}, nil
}
func (m *mockWallets) TouchRecent(address string) error {
	m.touched = append(m.touched, address)
	return nil
}

func rawTx(hash, value, gasUsed, ts string) apitypes.RawTransaction {
	return apitypes.RawTransaction{Hash: hash, From: wallet, To: "0xbeef", Value: value, GasUsed: gasUsed, TimeStamp: ts}
}

type fixture struct {
	explorer *mockExplorer
	indexer  *mockIndexer
	oracle   *mockOracle
	wallets  *mockWallets
	service  *DashboardServiceImpl
}

func newFixture() *fixture {
	f := &fixture{
		explorer: &mockExplorer{
			balance: decimal.NewFromInt(2),
			txs: []apitypes.RawTransaction{
				rawTx("0x3", "3000000000000000000", "30000", "1704240000"), // 2024-01-03
				rawTx("0x2", "0", "20000", "1704153600"),                   // 2024-01-02
				rawTx("0x1", "1000000000000000000", "10000", "1704067200"), // 2024-01-01
			},
			transfers: []apitypes.RawTokenTransfer{
				{TokenSymbol: "USDT", From: wallet, To: "0xshop"},
				{TokenSymbol: "DAI", From: "0xfriend", To: wallet},
				{TokenSymbol: "USDT", From: wallet, To: "0xshop"},
			},
		},
		indexer: &mockIndexer{
			tokens: []apitypes.RawTokenBalance{
				{Symbol: "USDT", Decimals: 6, Balance: "250000000"},
				{Symbol: "UNI", Decimals: 18, Balance: "5000000000000000000"},
				{Symbol: "DUST", Decimals: 18, Balance: "1"},
				{Symbol: "ODD", Decimals: 0, Balance: "42"},
			},
		},
		oracle: &mockOracle{prices: map[string]decimal.Decimal{
			"ethereum": decimal.NewFromInt(3000),
			"tether":   decimal.NewFromInt(1),
			"uniswap":  decimal.NewFromInt(10),
		}},
		wallets: &mockWallets{},
	}
	norm := normalizer.New(nopLogger{}, "", "placeholder.png")
	table := provider.NewPriceTable(nil, nil)
	f.service = NewDashboardService(f.explorer, f.indexer, f.oracle, table, norm, f.wallets, nopLogger{}, 2)
	return f
}

func TestOverview(t *testing.T) {
	f := newFixture()
	ov := f.service.Overview(context.Background(), wallet)

	if !ov.ValueUSD.Equal(decimal.NewFromInt(6000)) || !ov.ETHPriceUSD.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("got %+v", ov)
	}
	if ov.Kind != entity.AddressKindAccount || ov.ChecksumAddress != "0x742d35Cc6634C0532925a3b844Bc454e4438f44e" {
		t.Errorf("unexpected address classification %+v", ov)
	}
	if len(f.wallets.touched) != 1 || f.wallets.touched[0] != wallet {
		t.Errorf("recent list not updated: %v", f.wallets.touched)
	}
}

func TestOverviewWithoutPrice(t *testing.T) {
	f := newFixture()
	f.oracle.prices = nil
	ov := f.service.Overview(context.Background(), "vitalik.eth")

	if !ov.ValueUSD.IsZero() || !ov.BalanceETH.Equal(decimal.NewFromInt(2)) {
		t.Errorf("got %+v", ov)
	}
	if ov.Kind != entity.AddressKindName || ov.ChecksumAddress != "" {
		t.Errorf("unexpected address classification %+v", ov)
	}
}

func TestTokens(t *testing.T) {
	f := newFixture()
	view := f.service.Tokens(context.Background(), wallet)

	if len(f.oracle.requested) != 1 {
		t.Fatalf("got %d price requests, want 1", len(f.oracle.requested))
	}
	ids := f.oracle.requested[0]
	if len(ids) != 3 || ids[0] != "ethereum" {
		t.Errorf("requested ids %v", ids)
	}

	p := view.Portfolio
	if len(p.Tokens) != 3 {
		t.Errorf("dust token was not hidden: %d tokens", len(p.Tokens))
	}
	if len(p.Chart) != 2 || p.Chart[0].Symbol != "USDT" || !p.Chart[0].USDValue.Equal(decimal.NewFromInt(250)) {
		t.Errorf("chart got %+v", p.Chart)
	}
	if !p.TokenValueUSD.Equal(decimal.NewFromInt(300)) || !p.TotalValueUSD.Equal(decimal.NewFromInt(6300)) {
		t.Errorf("totals got %s and %s", p.TokenValueUSD, p.TotalValueUSD)
	}
}

func TestTransactions(t *testing.T) {
	f := newFixture()
	view := f.service.Transactions(context.Background(), wallet, entity.TransactionFilter{MinValue: decimal.NewFromInt(1)})

	if view.Bounds == nil || view.Bounds.Start != "2024-01-01" || view.Bounds.End != "2024-01-03" {
		t.Errorf("bounds got %+v", view.Bounds)
	}
	if len(view.Filtered) != 2 || view.Filtered[0].Hash != "0x3" || view.Filtered[1].Hash != "0x1" {
		t.Errorf("filtered got %+v", view.Filtered)
	}
	if len(view.Top) != 2 || view.Top[0].Hash != "0x3" {
		t.Errorf("top got %+v", view.Top)
	}
}

func TestGas(t *testing.T) {
	f := newFixture()
	from := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	view := f.service.Gas(context.Background(), wallet, &from, nil)

	if view.Stats.Count != 2 || view.Stats.TotalGas != 50000 || view.Stats.MaxGas != 30000 {
		t.Errorf("stats got %+v", view.Stats)
	}
	if view.Bounds == nil || view.Bounds.Start != "2024-01-01" {
		t.Errorf("bounds should cover the full set, got %+v", view.Bounds)
	}
}

func TestAnalytics(t *testing.T) {
	f := newFixture()
	view := f.service.Analytics(context.Background(), wallet)

	if view.TransactionCount != 3 {
		t.Errorf("count got %d", view.TransactionCount)
	}
	if view.MostActiveDay == nil || view.MostActiveDay.Date != "2024-01-01" {
		t.Errorf("most active day got %+v", view.MostActiveDay)
	}
	if !view.AverageNonZeroValue.Equal(decimal.NewFromInt(2)) {
		t.Errorf("average got %s", view.AverageNonZeroValue)
	}
	if view.MostTransactedToken.Symbol != "USDT" || view.MostTransactedToken.Count != 2 {
		t.Errorf("token got %+v", view.MostTransactedToken)
	}
	if len(view.BalanceHistory) != 3 || !view.BalanceHistory[2].Balance.Equal(decimal.NewFromInt(4)) {
		t.Errorf("history got %+v", view.BalanceHistory)
	}
}

func TestAnalyticsWithoutTransactions(t *testing.T) {
	f := newFixture()
	f.explorer.txs = nil
	view := f.service.Analytics(context.Background(), wallet)

	if view.TransactionCount != 0 || view.MostActiveDay != nil || view.BalanceHistory == nil {
		t.Errorf("got %+v", view)
	}
	if view.MostTransactedToken.Symbol != "N/A" {
		t.Errorf("token got %+v", view.MostTransactedToken)
	}
	if f.explorer.transferCalls != 0 {
		t.Errorf("token transfers fetched without transactions")
	}
}

func TestNFTsWithoutWalletProvider(t *testing.T) {
	f := newFixture()
	f.indexer.nfts = []apitypes.RawNFT{{TokenID: "1", Name: "Punks", Metadata: []byte(`{"image":"ipfs://a"}`)}}
	svc := NewDashboardService(f.explorer, f.indexer, f.oracle, provider.NewPriceTable(nil, nil),
		normalizer.New(nopLogger{}, "", "placeholder.png"), nil, nopLogger{}, 0)

	items := svc.NFTs(context.Background(), wallet)
	if len(items) != 1 || items[0].Image != "https://ipfs.io/ipfs/a" || items[0].Name != "1" {
		t.Errorf("got %+v", items)
	}
}
