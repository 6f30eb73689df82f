package contract

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
)

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
)

type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// HasTag reports whether the item carries tag, ignoring case.
func (m MenuItem) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

type InventoryEntry struct {
	Stock int    `json:"stock"`
	Unit  string `json:"unit"`
}

// Inventory is keyed by menu item id.
type Inventory map[string]InventoryEntry

type Order struct {
	OrderID   string      `json:"order_id" bun:"order_id,pk"`
	Status    OrderStatus `json:"status" bun:"status,notnull"`
	Timestamp time.Time   `json:"timestamp" bun:"timestamp,notnull"`
	Customer  string      `json:"customer" bun:"customer"`
	Items     []string    `json:"items" bun:"items,array"`
}

type Reservation struct {
	ReservationID     string            `json:"reservation_id" bun:"reservation_id,pk"`
	Customer          string            `json:"customer" bun:"customer"`
	DateTimeRequested string            `json:"date_time_requested" bun:"date_time_requested"`
	PartySize         int               `json:"party_size" bun:"party_size"`
	Status            ReservationStatus `json:"status" bun:"status,notnull"`
}
