package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"wallet_tracker/internal/domain/entity"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func tx(hash, from, to, value string, gas int64, ts string) entity.Transaction {
	return entity.Transaction{
		Hash:      hash,
		From:      from,
		To:        to,
		Value:     decimal.RequireFromString(value),
		GasUsed:   gas,
		Timestamp: day(ts),
	}
}

func sampleTxs() []entity.Transaction {
	return []entity.Transaction{
		tx("0x01", "0xAaAa", "0xBbBb", "1.5", 21000, "2024-01-01 10:00"),
		tx("0x02", "0xbbbb", "0xcccc", "0", 50000, "2024-01-01 23:59"),
		tx("0x03", "0xcccc", "0xaaaa", "0.25", 30000, "2024-01-03 00:00"),
		tx("0x04", "0xdddd", "0xAAAA", "3", 45000, "2024-01-05 12:00"),
		tx("0x05", "0xaaaa", "0xeeee", "0.25", 60000, "2024-01-05 13:00"),
	}
}

func hashes(txs []entity.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, t := range txs {
		out = append(out, t.Hash)
	}
	return out
}

func sameHashes(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func ptr(t time.Time) *time.Time { return &t }

func TestFilter(t *testing.T) {
	txs := sampleTxs()

	tests := []struct {
		name   string
		filter entity.TransactionFilter
		want   []string
	}{
		{"empty filter passes everything", entity.TransactionFilter{}, []string{"0x01", "0x02", "0x03", "0x04", "0x05"}},
		{"inclusive from bound", entity.TransactionFilter{From: ptr(day("2024-01-03 00:00"))}, []string{"0x03", "0x04", "0x05"}},
		{"inclusive to bound compares calendar dates", entity.TransactionFilter{To: ptr(day("2024-01-01 00:00"))}, []string{"0x01", "0x02"}},
		{"min value is inclusive", entity.TransactionFilter{MinValue: decimal.RequireFromString("0.25")}, []string{"0x01", "0x03", "0x04", "0x05"}},
		{"from substring ignores case", entity.TransactionFilter{FromContains: "AAAA"}, []string{"0x01", "0x05"}},
		{"to substring ignores case", entity.TransactionFilter{ToContains: "aaaa"}, []string{"0x03", "0x04"}},
		{
			"predicates are conjunctive",
			entity.TransactionFilter{
				From:       ptr(day("2024-01-02 00:00")),
				To:         ptr(day("2024-01-05 00:00")),
				MinValue:   decimal.RequireFromString("1"),
				ToContains: "aaaa",
			},
			[]string{"0x04"},
		},
		{"no match", entity.TransactionFilter{FromContains: "ffff"}, []string{}},
	}

	for _, tc := range tests {
		got := hashes(Filter(txs, tc.filter))
		if !sameHashes(got, tc.want) {
			t.Errorf("[%s] got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFilterIsMonotonic(t *testing.T) {
	txs := sampleTxs()
	loose := Filter(txs, entity.TransactionFilter{MinValue: decimal.RequireFromString("0.1")})
	strict := Filter(txs, entity.TransactionFilter{MinValue: decimal.RequireFromString("0.1"), FromContains: "aaaa"})

	if len(strict) > len(loose) {
		t.Fatalf("adding a predicate grew the result: %d > %d", len(strict), len(loose))
	}
	for _, s := range strict {
		found := false
		for _, l := range loose {
			if l.Hash == s.Hash {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s is in the stricter result but not the looser one", s.Hash)
		}
	}
}

func TestFilterByDateAndBounds(t *testing.T) {
	txs := sampleTxs()
	got := hashes(FilterByDate(txs, ptr(day("2024-01-05 00:00")), nil))
	if !sameHashes(got, []string{"0x04", "0x05"}) {
		t.Errorf("FilterByDate got %v", got)
	}

	b := Bounds(txs)
	if b == nil || b.Start != "2024-01-01" || b.End != "2024-01-05" {
		t.Errorf("Bounds got %+v", b)
	}
	if Bounds(nil) != nil {
		t.Errorf("Bounds of an empty set should be nil")
	}
}

func TestTopByValue(t *testing.T) {
	txs := sampleTxs()

	top := TopByValue(txs, 3)
	if got := hashes(top); !sameHashes(got, []string{"0x04", "0x01", "0x03"}) {
		t.Errorf("top 3 got %v", got)
	}
	for i := 1; i < len(top); i++ {
		if top[i].Value.GreaterThan(top[i-1].Value) {
			t.Errorf("top is not descending at %d", i)
		}
	}
	if txs[0].Hash != "0x01" || txs[3].Hash != "0x04" {
		t.Errorf("input slice was reordered")
	}

	if got := len(TopByValue(txs, DefaultTopN)); got != len(txs) {
		t.Errorf("top N over a short list got %d, want %d", got, len(txs))
	}
	if got := len(TopByValue(txs, 0)); got != 0 {
		t.Errorf("top 0 got %d", got)
	}

	many := make([]entity.Transaction, 0, 25)
	for i := 0; i < 25; i++ {
		many = append(many, entity.Transaction{Hash: "h", Value: decimal.NewFromInt(int64(i))})
	}
	if got := len(TopByValue(many, DefaultTopN)); got != DefaultTopN {
		t.Errorf("top N over 25 got %d, want %d", got, DefaultTopN)
	}
}

func TestGasStatistics(t *testing.T) {
	stats := GasStatistics(sampleTxs())
	if stats.Count != 5 || stats.TotalGas != 206000 || stats.MaxGas != 60000 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if !stats.AverageGas.Equal(decimal.NewFromInt(41200)) {
		t.Errorf("average got %s", stats.AverageGas)
	}
	if !stats.EstimateETH.Equal(decimal.RequireFromString("0.000206")) {
		t.Errorf("estimate got %s", stats.EstimateETH)
	}
	if len(stats.Series) != 5 {
		t.Errorf("series length got %d", len(stats.Series))
	}

	empty := GasStatistics(nil)
	if empty.Count != 0 || !empty.AverageGas.IsZero() || !empty.EstimateETH.IsZero() || empty.Series == nil {
		t.Errorf("unexpected empty stats %+v", empty)
	}
}

func TestMostActiveDay(t *testing.T) {
	got := MostActiveDay(sampleTxs())
	// 2024-01-01 and 2024-01-05 both have two transactions.
	if got == nil || got.Date != "2024-01-01" || got.Count != 2 {
		t.Errorf("got %+v", got)
	}
	if MostActiveDay(nil) != nil {
		t.Errorf("empty set should have no active day")
	}
}

func TestAverageNonZeroValue(t *testing.T) {
	if got := AverageNonZeroValue(sampleTxs()); !got.Equal(decimal.RequireFromString("1.25")) {
		t.Errorf("got %s, want 1.25", got)
	}
	zeros := []entity.Transaction{{Value: decimal.Zero}, {Value: decimal.Zero}}
	if got := AverageNonZeroValue(zeros); !got.IsZero() {
		t.Errorf("all-zero input got %s, want 0", got)
	}
	if got := AverageNonZeroValue(nil); !got.IsZero() {
		t.Errorf("empty input got %s, want 0", got)
	}
}

func TestCumulativeBalance(t *testing.T) {
	txs := []entity.Transaction{
		tx("late", "a", "b", "2", 0, "2024-02-02 00:00"),
		tx("early", "a", "b", "1", 0, "2024-02-01 00:00"),
	}
	points := CumulativeBalance(txs)
	if len(points) != 2 {
		t.Fatalf("got %d points", len(points))
	}
	if !points[0].Balance.Equal(decimal.NewFromInt(1)) || !points[1].Balance.Equal(decimal.NewFromInt(3)) {
		t.Errorf("got %s, %s, want 1, 3", points[0].Balance, points[1].Balance)
	}
	if !points[0].Timestamp.Before(points[1].Timestamp) {
		t.Errorf("points are not in time order")
	}
}

func TestMostTransactedToken(t *testing.T) {
	tests := []struct {
		name      string
		symbols   []string
		want      string
		wantCount int
	}{
		{"none", nil, NoTokenSymbol, 0},
		{"clear winner", []string{"USDT", "DAI", "USDT"}, "USDT", 2},
		{"tie goes to first seen", []string{"DAI", "USDT", "USDT", "DAI"}, "DAI", 2},
	}
	for _, tc := range tests {
		transfers := make([]entity.TokenTransfer, 0, len(tc.symbols))
		for _, s := range tc.symbols {
			transfers = append(transfers, entity.TokenTransfer{TokenSymbol: s})
		}
		got := MostTransactedToken(transfers)
		if got.Symbol != tc.want || got.Count != tc.wantCount {
			t.Errorf("[%s] got %+v, want %s/%d", tc.name, got, tc.want, tc.wantCount)
		}
	}
}

type staticLookup map[string]string

func (s staticLookup) LookupID(symbol string) (string, bool) {
	id, ok := s[symbol]
	return id, ok
}

func TestValuePortfolio(t *testing.T) {
	tokens := []entity.TokenBalance{
		{Symbol: "usdt", Balance: decimal.NewFromInt(100)},
		{Symbol: "UNI", Balance: decimal.NewFromInt(10)},
		{Symbol: "FOO", Balance: decimal.NewFromInt(5)},
		{Symbol: "DAI", Balance: decimal.NewFromInt(7)},
	}
	table := staticLookup{"USDT": "tether", "UNI": "uniswap", "DAI": "dai"}
	prices := entity.PriceQuote{
		"tether":  decimal.NewFromInt(1),
		"uniswap": decimal.NewFromInt(20),
	}

	v := ValuePortfolio(tokens, prices, table, decimal.NewFromInt(1000))

	if len(v.Tokens) != 4 {
		t.Fatalf("tokens got %d, want 4", len(v.Tokens))
	}
	if !v.Tokens[2].USDValue.IsZero() || !v.Tokens[3].USDValue.IsZero() {
		t.Errorf("unknown and unpriced tokens should be worth 0")
	}
	if len(v.Chart) != 2 || v.Chart[0].Symbol != "UNI" || v.Chart[1].Symbol != "usdt" {
		t.Errorf("chart got %+v", v.Chart)
	}
	if !v.TokenValueUSD.Equal(decimal.NewFromInt(300)) {
		t.Errorf("token total got %s, want 300", v.TokenValueUSD)
	}
	if !v.TotalValueUSD.Equal(decimal.NewFromInt(1300)) {
		t.Errorf("portfolio total got %s, want 1300", v.TotalValueUSD)
	}
}
