package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"wallet_tracker/internal/domain/entity"
	"wallet_tracker/internal/pkg/utils"
)

// DefaultTopN is the size of the "largest transactions" table.
const DefaultTopN = 10

// NoTokenSymbol is reported when there are no token transfers at all.
const NoTokenSymbol = "N/A"

// TopByValue returns up to n transactions ordered by value, largest first.
// Equal values keep their input order.
func TopByValue(txs []entity.Transaction, n int) []entity.Transaction {
	sorted := make([]entity.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value.GreaterThan(sorted[j].Value)
	})
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// GasStatistics aggregates gasUsed. The ETH estimate uses the fixed 1e-9 factor.
func GasStatistics(txs []entity.Transaction) entity.GasStats {
	stats := entity.GasStats{
		AverageGas:  decimal.Zero,
		EstimateETH: decimal.Zero,
		Series:      make([]entity.GasPoint, 0, len(txs)),
	}
	for _, tx := range txs {
		stats.Count++
		stats.TotalGas += tx.GasUsed
		if stats.Count == 1 || tx.GasUsed > stats.MaxGas {
			stats.MaxGas = tx.GasUsed
		}
		stats.Series = append(stats.Series, entity.GasPoint{Timestamp: tx.Timestamp, GasUsed: tx.GasUsed})
	}
	if stats.Count > 0 {
		stats.AverageGas = decimal.NewFromInt(stats.TotalGas).Div(decimal.NewFromInt(int64(stats.Count)))
		stats.EstimateETH = utils.GasToEther(stats.TotalGas)
	}
	return stats
}

// MostActiveDay returns the calendar date with the most transactions.
// Ties go to the earliest date. It returns nil for an empty set.
func MostActiveDay(txs []entity.Transaction) *entity.ActiveDay {
	if len(txs) == 0 {
		return nil
	}
	counts := make(map[string]int)
	for _, tx := range txs {
		counts[CalendarDate(tx.Timestamp)]++
	}

	var best entity.ActiveDay
	for day, count := range counts {
		if count > best.Count || (count == best.Count && day < best.Date) {
			best = entity.ActiveDay{Date: day, Count: count}
		}
	}
	return &best
}

// AverageNonZeroValue is the mean value of transactions with value > 0, or zero if there are none.
func AverageNonZeroValue(txs []entity.Transaction) decimal.Decimal {
	sum := decimal.Zero
	n := int64(0)
	for _, tx := range txs {
		if tx.Value.IsPositive() {
			sum = sum.Add(tx.Value)
			n++
		}
	}
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(n))
}

// CumulativeBalance is a running sum of value in time order.
// Values carry no direction, so every transaction counts as an inflow; the series is an
// approximation of activity volume rather than a reconstructed ledger balance.
func CumulativeBalance(txs []entity.Transaction) []entity.BalancePoint {
	sorted := make([]entity.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	points := make([]entity.BalancePoint, 0, len(sorted))
	running := decimal.Zero
	for _, tx := range sorted {
		running = running.Add(tx.Value)
		points = append(points, entity.BalancePoint{Timestamp: tx.Timestamp, Balance: running})
	}
	return points
}

// MostTransactedToken counts transfers per symbol. Ties go to the symbol seen first.
func MostTransactedToken(transfers []entity.TokenTransfer) entity.TokenActivity {
	if len(transfers) == 0 {
		return entity.TokenActivity{Symbol: NoTokenSymbol}
	}
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, t := range transfers {
		if _, seen := counts[t.TokenSymbol]; !seen {
			order = append(order, t.TokenSymbol)
		}
		counts[t.TokenSymbol]++
	}

	best := entity.TokenActivity{}
	for _, symbol := range order {
		if counts[symbol] > best.Count {
			best = entity.TokenActivity{Symbol: symbol, Count: counts[symbol]}
		}
	}
	return best
}
