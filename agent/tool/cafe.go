package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
)

// Toolkit implements the four cafe tools on top of the catalog and record
// stores. Outputs are sentences meant for the model, not for program logic.
type Toolkit struct {
	catalog  contractx.Catalog
	records  contractx.RecordStore
	notifier contractx.Notifier
}

type ToolkitOption func(*Toolkit)

func WithNotifier(n contractx.Notifier) ToolkitOption {
	return func(t *Toolkit) {
		if n != nil {
			t.notifier = n
		}
	}
}

func NewToolkit(catalog contractx.Catalog, records contractx.RecordStore, opts ...ToolkitOption) (*Toolkit, error) {
	if catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if records == nil {
		return nil, errors.New("record store is required")
	}
	t := &Toolkit{catalog: catalog, records: records}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t, nil
}

func (t *Toolkit) GetMenu(ctx context.Context, category string) (string, error) {
	menu, err := t.catalog.LoadMenu(ctx)
	if err != nil {
		return "", err
	}

	items := menu
	if category != "" {
		items = make([]contractx.MenuItem, 0, len(menu))
		for _, item := range menu {
			if item.HasTag(category) {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			return fmt.Sprintf("We don't have any items matching '%s' right now.", category), nil
		}
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- %s ($%.2f): %s", item.Name, item.Price, item.Description))
	}
	return strings.Join(lines, "\n"), nil
}

// CheckItemAvailability reports stock for itemID. Anything above zero counts
// as in stock.
func (t *Toolkit) CheckItemAvailability(ctx context.Context, itemID string) (string, error) {
	inventory, err := t.catalog.LoadInventory(ctx)
	if err != nil {
		return "", err
	}

	entry, ok := inventory[itemID]
	if !ok {
		return fmt.Sprintf("Warning: I couldn't find an item with the ID '%s' in our inventory system.", itemID), nil
	}
	if entry.Stock > 0 {
		return fmt.Sprintf("Yes, we have %d %s of %s currently in stock.", entry.Stock, entry.Unit, itemID), nil
	}
	return fmt.Sprintf("Sorry, %s is currently sold out.", itemID), nil
}

// PlaceOrder stores the order as given. Item ids are not checked against the
// menu and stock is left untouched.
func (t *Toolkit) PlaceOrder(ctx context.Context, customerName string, itemIDs []string) (string, error) {
	order, err := t.records.CreateOrder(ctx, customerName, itemIDs)
	if err != nil {
		return "", err
	}

	if t.notifier != nil {
		if err := t.notifier.NotifyOrder(ctx, order); err != nil {
			log.Warn().Err(err).Str("order_id", order.OrderID).Msg("kitchen notification failed")
		}
	}

	return fmt.Sprintf("Success! Order %s has been placed for %s. The kitchen will be notified.", order.OrderID, customerName), nil
}

func (t *Toolkit) MakeReservation(ctx context.Context, customerName string, dateTime string, partySize int) (string, error) {
	res, err := t.records.CreateReservation(ctx, customerName, dateTime, partySize)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"Amazing. A reservation for %d people has been confirmed for %s at %s. Booking ID: %s.",
		partySize, customerName, dateTime, res.ReservationID,
	), nil
}

type getMenuArgs struct {
	Category *string `json:"category"`
}

type checkItemAvailabilityArgs struct {
	ItemID string `json:"item_id"`
}

type placeOrderArgs struct {
	CustomerName string   `json:"customer_name"`
	ItemIDs      []string `json:"item_ids"`
}

type makeReservationArgs struct {
	CustomerName string  `json:"customer_name"`
	DateTime     string  `json:"date_time"`
	PartySize    flexInt `json:"party_size"`
}

// Execute dispatches a tool call by name with JSON encoded arguments.
func (t *Toolkit) Execute(ctx context.Context, name string, argumentsInJSON string) (string, error) {
	log.Debug().Str("tool", name).Str("args", argumentsInJSON).Msg("tool invoked")

	switch name {
	case ToolGetMenu:
		var args getMenuArgs
		if err := decodeArgs(name, argumentsInJSON, &args); err != nil {
			return "", err
		}
		category := ""
		if args.Category != nil {
			category = *args.Category
		}
		return t.GetMenu(ctx, category)
	case ToolCheckItemAvailability:
		var args checkItemAvailabilityArgs
		if err := decodeArgs(name, argumentsInJSON, &args); err != nil {
			return "", err
		}
		return t.CheckItemAvailability(ctx, args.ItemID)
	case ToolPlaceOrder:
		var args placeOrderArgs
		if err := decodeArgs(name, argumentsInJSON, &args); err != nil {
			return "", err
		}
		if args.ItemIDs == nil {
			args.ItemIDs = []string{}
		}
		return t.PlaceOrder(ctx, args.CustomerName, args.ItemIDs)
	case ToolMakeReservation:
		var args makeReservationArgs
		if err := decodeArgs(name, argumentsInJSON, &args); err != nil {
			return "", err
		}
		return t.MakeReservation(ctx, args.CustomerName, args.DateTime, int(args.PartySize))
	default:
		return "", fmt.Errorf("%w: %s", contractx.ErrUnknownTool, name)
	}
}

func decodeArgs(tool string, raw string, dst any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "{}"
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: invalid arguments for %s: %v", contractx.ErrValidation, tool, err)
	}
	return nil
}

// flexInt accepts 4, 4.0 and "4".
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*f = flexInt(n)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != float64(int(v)) {
		return fmt.Errorf("%s is not an integer", s)
	}
	*f = flexInt(int(v))
	return nil
}
