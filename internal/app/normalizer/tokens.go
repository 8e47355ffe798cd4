package normalizer

import (
	"github.com/shopspring/decimal"

	"wallet_tracker/internal/domain/entity"
	apitypes "wallet_tracker/internal/entity"
	"wallet_tracker/internal/pkg/utils"
)

// DustThreshold is the balance at or below which a token is hidden from the listing.
var DustThreshold = decimal.New(1, -4)

// TokenBalances scales each raw balance by its decimals. Unparsable balances are skipped.
func (n *Normalizer) TokenBalances(raw []apitypes.RawTokenBalance) []entity.TokenBalance {
	out := make([]entity.TokenBalance, 0, len(raw))
	for _, r := range raw {
		amount, err := utils.ParseBaseUnits(r.Balance)
		if err != nil {
			n.logger.Warn("Skipping token with malformed balance", "symbol", r.Symbol, "token", r.TokenAddress, "error", err)
			continue
		}
		decimals := int32(r.Decimals)
		out = append(out, entity.TokenBalance{
			Name:       r.Name,
			Symbol:     r.Symbol,
			RawBalance: amount,
			Decimals:   decimals,
			Balance:    utils.ToDecimal(amount, decimals),
		})
	}
	return out
}

// DisplayableTokens keeps balances strictly above DustThreshold.
func DisplayableTokens(tokens []entity.TokenBalance) []entity.TokenBalance {
	out := make([]entity.TokenBalance, 0, len(tokens))
	for _, t := range tokens {
		if t.Balance.GreaterThan(DustThreshold) {
			out = append(out, t)
		}
	}
	return out
}
