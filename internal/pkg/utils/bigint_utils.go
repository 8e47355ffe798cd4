package utils

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/shopspring/decimal"
)

const (
	// EtherDecimals is the scale between wei and ETH.
	EtherDecimals int32 = 18
	// gasToEtherExponent is the fixed gas-to-ETH approximation (1e-9), not a live gas price.
	gasToEtherExponent int32 = -9
)

// ParseBaseUnits parses an integer amount in base units. Decimal and 0x-prefixed hex are accepted.
func ParseBaseUnits(raw string) (*big.Int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	v, ok := math.ParseBig256(s)
	if !ok {
		return nil, fmt.Errorf("invalid base-unit amount %q", raw)
	}
	return v, nil
}

// ToDecimal scales a base-unit integer down by 10^decimals.
// Example: amount=1234500000000000000, decimals=18 => 1.2345
func ToDecimal(amount *big.Int, decimals int32) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, -decimals)
}

// WeiToEther converts a wei string to ETH.
func WeiToEther(wei string) (decimal.Decimal, error) {
	v, err := ParseBaseUnits(wei)
	if err != nil {
		return decimal.Zero, err
	}
	return ToDecimal(v, EtherDecimals), nil
}

// GasToEther estimates the ETH spent on gas using the fixed 1e-9 factor.
func GasToEther(totalGas int64) decimal.Decimal {
	return decimal.New(totalGas, gasToEtherExponent)
}
