package analytics

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"wallet_tracker/internal/domain/entity"
)

// SymbolLookup resolves a trading symbol to a price-oracle id.
type SymbolLookup interface {
	LookupID(symbol string) (string, bool)
}

// ValuePortfolio prices each token through the symbol table. Tokens without a table entry or
// without a quote are valued at zero and stay in Tokens; Chart holds only priced tokens.
func ValuePortfolio(
	tokens []entity.TokenBalance,
	prices entity.PriceQuote,
	table SymbolLookup,
	ethValueUSD decimal.Decimal,
) entity.PortfolioValuation {
	valued := make([]entity.TokenValuation, 0, len(tokens))
	for _, t := range tokens {
		v := entity.TokenValuation{TokenBalance: t, PriceUSD: decimal.Zero, USDValue: decimal.Zero}
		if id, ok := table.LookupID(strings.ToUpper(t.Symbol)); ok {
			if price, ok := prices.USD(id); ok {
				v.PriceUSD = price
				v.USDValue = t.Balance.Mul(price)
			}
		}
		valued = append(valued, v)
	}

	chart := make([]entity.TokenValuation, 0, len(valued))
	for _, v := range valued {
		if v.USDValue.IsPositive() {
			chart = append(chart, v)
		}
	}
	sort.SliceStable(chart, func(i, j int) bool {
		return chart[i].USDValue.GreaterThan(chart[j].USDValue)
	})

	tokenTotal := decimal.Zero
	for _, v := range chart {
		tokenTotal = tokenTotal.Add(v.USDValue)
	}

	return entity.PortfolioValuation{
		Tokens:        valued,
		Chart:         chart,
		TokenValueUSD: tokenTotal,
		TotalValueUSD: ethValueUSD.Add(tokenTotal),
	}
}
