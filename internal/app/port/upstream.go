package port

import (
	"context"

	"github.com/shopspring/decimal"

	"wallet_tracker/internal/domain/entity"
	apitypes "wallet_tracker/internal/entity"
)

// The adapters below are best-effort: failures are logged inside the implementation and surface
// only as the documented zero value, so callers cannot tell "nothing there" from "call failed".

// ChainExplorer reads account data from the chain explorer API.
type ChainExplorer interface {
	// GetBalance returns the latest native balance in ETH, or zero on failure.
	GetBalance(ctx context.Context, address string) decimal.Decimal
	// GetTransactions returns the full transaction list, newest first, or an empty slice on failure.
	GetTransactions(ctx context.Context, address string) []apitypes.RawTransaction
	// GetTokenTransfers returns the ERC-20 transfer history, or an empty slice on failure.
	GetTokenTransfers(ctx context.Context, address string) []apitypes.RawTokenTransfer
}

// TokenIndexer reads token and NFT holdings from the indexer API.
type TokenIndexer interface {
	GetTokenBalances(ctx context.Context, address string) []apitypes.RawTokenBalance
	GetNFTs(ctx context.Context, address string) []apitypes.RawNFT
}

// PriceOracle quotes USD prices by canonical identifier.
type PriceOracle interface {
	// GetPrices returns a quote per known id; unknown ids are absent.
	GetPrices(ctx context.Context, ids []string) entity.PriceQuote
}
