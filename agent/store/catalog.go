package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
)

var _ contractx.Catalog = (*Catalog)(nil)

// Catalog reads the menu and inventory documents. Nothing is cached: every
// call goes back to disk so hand edits show up on the next request.
type Catalog struct {
	layout Layout

	mu           sync.Mutex
	bootstrapped bool
}

func NewCatalog(layout Layout) *Catalog {
	return &Catalog{layout: layout}
}

// Bootstrap creates the data directories and seeds any missing catalog
// document with the default dataset. Existing documents are never touched.
func (c *Catalog) Bootstrap() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bootstrapped {
		return nil
	}

	log.Info().Str("data_dir", c.layout.Root).Msg("initializing data")

	for _, dir := range c.layout.dirs() {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create %s: %v", contractx.ErrStorageUnavailable, dir, err)
		}
	}

	created, err := seedIfAbsent(c.layout.MenuFile(), defaultMenu())
	if err != nil {
		return err
	}
	if created {
		log.Info().Str("path", c.layout.MenuFile()).Msg("created default menu.json")
	}

	created, err = seedIfAbsent(c.layout.InventoryFile(), defaultInventory())
	if err != nil {
		return err
	}
	if created {
		log.Info().Str("path", c.layout.InventoryFile()).Msg("created default inventory.json")
	}

	c.bootstrapped = true
	return nil
}

func (c *Catalog) LoadMenu(ctx context.Context) ([]contractx.MenuItem, error) {
	var menu []contractx.MenuItem
	if err := readDocument(c.layout.MenuFile(), &menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (c *Catalog) LoadInventory(ctx context.Context) (contractx.Inventory, error) {
	var inventory contractx.Inventory
	if err := readDocument(c.layout.InventoryFile(), &inventory); err != nil {
		return nil, err
	}
	if inventory == nil {
		inventory = contractx.Inventory{}
	}
	return inventory, nil
}

func readDocument(path string, dst any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", contractx.ErrStorageUnavailable, path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", contractx.ErrStorageUnavailable, path, err)
	}
	return nil
}

func seedIfAbsent(path string, doc any) (bool, error) {
	payload, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return false, fmt.Errorf("%w: encode seed for %s: %v", contractx.ErrStorageUnavailable, path, err)
	}

	err = writeExclusive(path, payload)
	if errors.Is(err, os.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: seed %s: %v", contractx.ErrStorageUnavailable, path, err)
	}
	return true, nil
}

// writeExclusive creates path and writes payload, failing with os.ErrExist
// when the file is already there.
func writeExclusive(path string, payload []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(payload); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
