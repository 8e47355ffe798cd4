package provider

import (
	"fmt"
	"sync"

	"wallet_tracker/internal/app/port"
	"wallet_tracker/internal/domain/entity"
	"wallet_tracker/internal/pkg/utils"
)

// DefaultMaxRecent caps the recently viewed list.
const DefaultMaxRecent = 10

type walletProviderImpl struct {
	store     port.WalletStore
	maxRecent int
	logger    port.Logger
	mu        sync.Mutex
}

// NewWalletProvider creates a WalletProvider over store. Every change rewrites the whole list.
func NewWalletProvider(store port.WalletStore, maxRecent int, logger port.Logger) port.WalletProvider {
	if maxRecent <= 0 {
		maxRecent = DefaultMaxRecent
	}
	return &walletProviderImpl{store: store, maxRecent: maxRecent, logger: logger}
}

// GetWallets implements port.WalletProvider.
func (p *walletProviderImpl) GetWallets() (entity.WalletList, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Load()
}

// AddBookmark implements port.WalletProvider. Bookmarking an existing address is a no-op.
func (p *walletProviderImpl) AddBookmark(address string) (entity.WalletList, error) {
	return p.update(func(list *entity.WalletList) bool {
		if utils.ContainsFold(list.Bookmarked, address) {
			return false
		}
		list.Bookmarked = append(list.Bookmarked, address)
		return true
	})
}

// RemoveBookmark implements port.WalletProvider.
func (p *walletProviderImpl) RemoveBookmark(address string) (entity.WalletList, error) {
	return p.update(func(list *entity.WalletList) bool {
		before := len(list.Bookmarked)
		list.Bookmarked = utils.RemoveFold(list.Bookmarked, address)
		return len(list.Bookmarked) != before
	})
}

// TouchRecent implements port.WalletProvider.
func (p *walletProviderImpl) TouchRecent(address string) error {
	_, err := p.update(func(list *entity.WalletList) bool {
		if len(list.Recent) > 0 && list.Recent[0] == address {
			return false
		}
		list.Recent = utils.PrependUnique(list.Recent, address, p.maxRecent)
		return true
	})
	return err
}

func (p *walletProviderImpl) update(mutate func(list *entity.WalletList) bool) (entity.WalletList, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	list, err := p.store.Load()
	if err != nil {
		return entity.WalletList{}, fmt.Errorf("failed to load wallet list: %w", err)
	}
	if !mutate(&list) {
		return list, nil
	}
	if err := p.store.Save(list); err != nil {
		p.logger.Error("Failed to save wallet list", "error", err)
		return entity.WalletList{}, fmt.Errorf("failed to save wallet list: %w", err)
	}
	p.logger.Debug("Wallet list saved", "bookmarked", len(list.Bookmarked), "recent", len(list.Recent))
	return list, nil
}
