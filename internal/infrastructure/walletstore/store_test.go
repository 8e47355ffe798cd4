package walletstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wallet_tracker/internal/domain/entity"
)

func TestLoadMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "wallets.json"), nil)

	list, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if list.Bookmarked == nil || list.Recent == nil || len(list.Bookmarked) != 0 || len(list.Recent) != 0 {
		t.Errorf("got %+v, want two empty lists", list)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "wallets.json")
	var logged []string
	s := NewFileStore(path, func(msg string, args ...any) { logged = append(logged, msg) })

	want := entity.WalletList{Bookmarked: []string{"0xA"}, Recent: []string{"0xB", "0xA"}}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Bookmarked) != 1 || got.Bookmarked[0] != "0xA" || len(got.Recent) != 2 || got.Recent[0] != "0xB" {
		t.Errorf("got %+v, want %+v", got, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `"bookmarked"`) || !strings.Contains(string(data), `"recent"`) {
		t.Errorf("unexpected file content %s", data)
	}
	if len(logged) == 0 {
		t.Errorf("save was not logged")
	}
}

func TestLoadNullLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.json")
	if err := os.WriteFile(path, []byte(`{"bookmarked": null}`), 0o644); err != nil {
		t.Fatal(err)
	}

	list, err := NewFileStore(path, nil).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if list.Bookmarked == nil || list.Recent == nil {
		t.Errorf("nil lists were not normalized: %+v", list)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path, nil).Load(); err == nil {
		t.Errorf("expected a parse error")
	}
}
