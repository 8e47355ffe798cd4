package port

import "wallet_tracker/internal/domain/entity"

// WalletStore persists the bookmarked and recent wallet lists as a whole.
type WalletStore interface {
	Load() (entity.WalletList, error)
	Save(list entity.WalletList) error
}

// WalletProvider manages the bookmarked/recent lists on top of a WalletStore.
type WalletProvider interface {
	GetWallets() (entity.WalletList, error)
	AddBookmark(address string) (entity.WalletList, error)
	RemoveBookmark(address string) (entity.WalletList, error)
	TouchRecent(address string) error
}
