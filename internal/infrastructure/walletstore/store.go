package walletstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	jsoniter "github.com/json-iterator/go"

	"wallet_tracker/internal/app/port"
	"wallet_tracker/internal/domain/entity"
	"wallet_tracker/internal/pkg/utils"
)

// DefaultFilePath is where the wallet list lives unless configured otherwise.
const DefaultFilePath = "data/wallets.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore implements port.WalletStore with a single JSON document
// {"bookmarked": [...], "recent": [...]}, read and written as a whole.
type FileStore struct {
	filePath   string
	loggerInfo func(msg string, args ...any)
}

// NewFileStore creates a FileStore for filePath.
func NewFileStore(filePath string, loggerInfo func(msg string, args ...any)) port.WalletStore {
	if filePath == "" {
		filePath = DefaultFilePath
	}
	return &FileStore{filePath: filePath, loggerInfo: loggerInfo}
}

// Load reads the list. A missing file yields two empty lists.
func (s *FileStore) Load() (entity.WalletList, error) {
	empty := entity.WalletList{Bookmarked: []string{}, Recent: []string{}}

	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		if s.loggerInfo != nil {
			s.loggerInfo("Wallet file not found, starting with empty lists", "path", s.filePath)
		}
		return empty, nil
	}
	if err != nil {
		return empty, fmt.Errorf("failed to read wallet file %s: %w", s.filePath, err)
	}

	var list entity.WalletList
	if err := json.Unmarshal(data, &list); err != nil {
		return empty, fmt.Errorf("failed to parse wallet file %s: %w", s.filePath, err)
	}
	if list.Bookmarked == nil {
		list.Bookmarked = []string{}
	}
	if list.Recent == nil {
		list.Recent = []string{}
	}
	return list, nil
}

// Save rewrites the whole file.
func (s *FileStore) Save(list entity.WalletList) error {
	if list.Bookmarked == nil {
		list.Bookmarked = []string{}
	}
	if list.Recent == nil {
		list.Recent = []string{}
	}
	data, err := json.MarshalIndent(list, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode wallet list: %w", err)
	}
	if err := utils.WriteFileAtomic(s.filePath, data, 0o644); err != nil {
		return err
	}
	if s.loggerInfo != nil {
		s.loggerInfo("Wallet file saved", "path", s.filePath, "bookmarked", len(list.Bookmarked), "recent", len(list.Recent))
	}
	return nil
}
