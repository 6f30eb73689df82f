package store

import "path/filepath"

// Layout resolves where each document lives under a single data directory.
type Layout struct {
	Root string
}

func NewLayout(root string) Layout {
	if root == "" {
		root = "data"
	}
	return Layout{Root: root}
}

func (l Layout) MenuFile() string {
	return filepath.Join(l.Root, "menu", "menu.json")
}

func (l Layout) InventoryFile() string {
	return filepath.Join(l.Root, "inventory", "inventory.json")
}

func (l Layout) OrdersDir() string {
	return filepath.Join(l.Root, "orders")
}

func (l Layout) ReservationsDir() string {
	return filepath.Join(l.Root, "reservations")
}

func (l Layout) dirs() []string {
	return []string{
		filepath.Dir(l.MenuFile()),
		filepath.Dir(l.InventoryFile()),
		l.OrdersDir(),
		l.ReservationsDir(),
	}
}
