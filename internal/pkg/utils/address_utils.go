package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"wallet_tracker/internal/domain/entity"
)

// NormalizeAddress trims the input. Only emptiness is rejected; upstream APIs decide validity.
func NormalizeAddress(raw string) (string, bool) {
	addr := strings.TrimSpace(raw)
	return addr, addr != ""
}

// ClassifyAddress reports whether addr is a hex account and, if so, its EIP-55 checksum form.
func ClassifyAddress(addr string) (entity.AddressKind, string) {
	if common.IsHexAddress(addr) {
		return entity.AddressKindAccount, common.HexToAddress(addr).Hex()
	}
	return entity.AddressKindName, addr
}
