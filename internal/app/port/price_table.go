package port

// PriceTable maps trading symbols to price-oracle identifiers. It is immutable after startup.
type PriceTable interface {
	// LookupID returns the canonical id for a symbol, matched case-insensitively.
	LookupID(symbol string) (string, bool)
	// IDsFor returns the distinct ids for the given symbols, skipping unknown ones.
	IDsFor(symbols []string) []string
	// NativeID is the id used to price ETH itself.
	NativeID() string
}
