package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

var _ contractx.RecordStore = (*PostgresRecordStore)(nil)

type PostgresConfig struct {
	DSN string `envconfig:"DATABASE_DSN" split_words:"true"`
}

// OpenPostgres returns a bun handle; no connection is made until first use.
func OpenPostgres(cfg PostgresConfig) (*bun.DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("%w: database dsn is required", contractx.ErrValidation)
	}
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New()), nil
}

// PostgresRecordStore keeps orders and reservations as insert-only rows.
type PostgresRecordStore struct {
	db    *bun.DB
	clock recordClock
}

func NewPostgresRecordStore(db *bun.DB, opts ...RecordOption) (*PostgresRecordStore, error) {
	if db == nil {
		return nil, fmt.Errorf("%w: bun db is required", contractx.ErrValidation)
	}
	return &PostgresRecordStore{
		db:    db,
		clock: newRecordClock(opts),
	}, nil
}

// Migrate creates the orders and reservations tables if they are missing.
func (s *PostgresRecordStore) Migrate(ctx context.Context) error {
	models := []any{
		(*contractx.Order)(nil),
		(*contractx.Reservation)(nil),
	}
	for _, model := range models {
		if _, err := s.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("%w: create table for %T: %v", contractx.ErrStorageUnavailable, model, err)
		}
	}
	return nil
}

func (s *PostgresRecordStore) CreateOrder(ctx context.Context, customerName string, itemIDs []string) (contractx.Order, error) {
	order := newOrder(s.clock, customerName, itemIDs)
	if _, err := s.insertOrder(&order).Exec(ctx); err != nil {
		return contractx.Order{}, fmt.Errorf("%w: insert order %s: %v", contractx.ErrStorageWriteFailed, order.OrderID, err)
	}
	return order, nil
}

func (s *PostgresRecordStore) CreateReservation(
	ctx context.Context,
	customerName string,
	dateTimeRequested string,
	partySize int,
) (contractx.Reservation, error) {
	res := newReservation(s.clock, customerName, dateTimeRequested, partySize)
	if _, err := s.insertReservation(&res).Exec(ctx); err != nil {
		return contractx.Reservation{}, fmt.Errorf("%w: insert reservation %s: %v", contractx.ErrStorageWriteFailed, res.ReservationID, err)
	}
	return res, nil
}

func (s *PostgresRecordStore) Close() error {
	return s.db.Close()
}

func (s *PostgresRecordStore) insertOrder(order *contractx.Order) *bun.InsertQuery {
	return s.db.NewInsert().Model(order)
}

func (s *PostgresRecordStore) insertReservation(res *contractx.Reservation) *bun.InsertQuery {
	return s.db.NewInsert().Model(res)
}
