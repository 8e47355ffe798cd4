package entity

// SimplePriceResponse is the body of /simple/price: id -> currency -> price.
type SimplePriceResponse map[string]map[string]float64
