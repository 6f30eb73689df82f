package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
)

var _ contractx.RecordStore = (*FileRecordStore)(nil)

// RecordOption customizes a record store.
type RecordOption func(*recordClock)

// WithClock overrides the time source used for order timestamps.
func WithClock(now func() time.Time) RecordOption {
	return func(c *recordClock) {
		if now != nil {
			c.now = now
		}
	}
}

// WithIDGenerator overrides how record identifiers are produced.
func WithIDGenerator(newID func() string) RecordOption {
	return func(c *recordClock) {
		if newID != nil {
			c.newID = newID
		}
	}
}

type recordClock struct {
	now   func() time.Time
	newID func() string
}

func newRecordClock(opts []RecordOption) recordClock {
	c := recordClock{now: time.Now, newID: NewRecordID}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// NewRecordID returns the first eight characters of a random UUID.
// Collisions are not guarded against.
func NewRecordID() string {
	return uuid.NewString()[:8]
}

// FileRecordStore writes each order and reservation to its own JSON file,
// named after the record id. Files are created exclusively and never rewritten.
type FileRecordStore struct {
	layout Layout
	clock  recordClock
}

func NewFileRecordStore(layout Layout, opts ...RecordOption) *FileRecordStore {
	return &FileRecordStore{
		layout: layout,
		clock:  newRecordClock(opts),
	}
}

func (s *FileRecordStore) CreateOrder(ctx context.Context, customerName string, itemIDs []string) (contractx.Order, error) {
	order := newOrder(s.clock, customerName, itemIDs)
	if err := writeRecord(s.layout.OrdersDir(), order.OrderID, order); err != nil {
		return contractx.Order{}, err
	}
	return order, nil
}

func (s *FileRecordStore) CreateReservation(
	ctx context.Context,
	customerName string,
	dateTimeRequested string,
	partySize int,
) (contractx.Reservation, error) {
	res := newReservation(s.clock, customerName, dateTimeRequested, partySize)
	if err := writeRecord(s.layout.ReservationsDir(), res.ReservationID, res); err != nil {
		return contractx.Reservation{}, err
	}
	return res, nil
}

func newOrder(clock recordClock, customerName string, itemIDs []string) contractx.Order {
	items := make([]string, len(itemIDs))
	copy(items, itemIDs)

	return contractx.Order{
		OrderID:   clock.newID(),
		Status:    contractx.OrderPending,
		Timestamp: clock.now(),
		Customer:  customerName,
		Items:     items,
	}
}

func newReservation(clock recordClock, customerName string, dateTimeRequested string, partySize int) contractx.Reservation {
	return contractx.Reservation{
		ReservationID:     clock.newID(),
		Customer:          customerName,
		DateTimeRequested: dateTimeRequested,
		PartySize:         partySize,
		Status:            contractx.ReservationConfirmed,
	}
}

func writeRecord(dir string, id string, record any) error {
	payload, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode record %s: %v", contractx.ErrStorageWriteFailed, id, err)
	}

	path := filepath.Join(dir, id+".json")
	if err := writeExclusive(path, payload); err != nil {
		return fmt.Errorf("%w: write %s: %v", contractx.ErrStorageWriteFailed, path, err)
	}
	return nil
}
