package contract

import "context"

type Catalog interface {
	LoadMenu(ctx context.Context) ([]MenuItem, error)
	LoadInventory(ctx context.Context) (Inventory, error)
}

type RecordStore interface {
	CreateOrder(ctx context.Context, customerName string, itemIDs []string) (Order, error)
	CreateReservation(ctx context.Context, customerName string, dateTimeRequested string, partySize int) (Reservation, error)
}

// Notifier tells the kitchen about a freshly stored order.
type Notifier interface {
	NotifyOrder(ctx context.Context, order Order) error
}

type Assistant interface {
	Reply(ctx context.Context, message string) (string, error)
}
