package provider

import (
	"strings"

	"wallet_tracker/internal/app/port"
)

// NativePriceID is the oracle id used to price ETH.
const NativePriceID = "ethereum"

// DefaultSymbolIDs is the built-in symbol -> CoinGecko id table.
var DefaultSymbolIDs = map[string]string{
	"ETH":   "ethereum",
	"USDT":  "tether",
	"USDC":  "usd-coin",
	"DAI":   "dai",
	"UNI":   "uniswap",
	"LINK":  "chainlink",
	"WBTC":  "wrapped-bitcoin",
	"MATIC": "matic-network",
	"SHIB":  "shiba-inu",
	"APE":   "apecoin",
}

type priceTableImpl struct {
	ids      map[string]string // upper-case symbol -> id
	nativeID string
}

// NewPriceTable builds the immutable table from the defaults plus overrides. An override with an
// empty id removes the symbol.
func NewPriceTable(overrides map[string]string, logger port.Logger) port.PriceTable {
	ids := make(map[string]string, len(DefaultSymbolIDs)+len(overrides))
	for symbol, id := range DefaultSymbolIDs {
		ids[symbol] = id
	}
	for symbol, id := range overrides {
		key := strings.ToUpper(strings.TrimSpace(symbol))
		id = strings.TrimSpace(id)
		if id == "" {
			delete(ids, key)
			continue
		}
		ids[key] = id
	}

	nativeID := ids["ETH"]
	if nativeID == "" {
		nativeID = NativePriceID
	}
	if logger != nil {
		logger.Info("Price table loaded", "symbols", len(ids), "overrides", len(overrides))
	}
	return &priceTableImpl{ids: ids, nativeID: nativeID}
}

// LookupID implements port.PriceTable.
func (t *priceTableImpl) LookupID(symbol string) (string, bool) {
	id, ok := t.ids[strings.ToUpper(strings.TrimSpace(symbol))]
	return id, ok
}

// IDsFor implements port.PriceTable.
func (t *priceTableImpl) IDsFor(symbols []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		id, ok := t.LookupID(s)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// NativeID implements port.PriceTable.
func (t *priceTableImpl) NativeID() string {
	return t.nativeID
}
