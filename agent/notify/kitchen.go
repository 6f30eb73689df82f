package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
	qstashx "github.com/tanpawarit/namaste-bites-agent/pkg/qstash"
)

var (
	_ contractx.Notifier = (*Kitchen)(nil)
	_ contractx.Notifier = Noop{}
)

type publisher interface {
	Publish(ctx context.Context, destination string, payload any) (qstashx.PublishResponse, error)
}

// Kitchen forwards new orders to the kitchen endpoint through QStash.
type Kitchen struct {
	client      publisher
	destination string
}

func NewKitchen(client publisher, destination string) (*Kitchen, error) {
	if client == nil {
		return nil, errors.New("qstash client is required")
	}
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, errors.New("kitchen destination is required")
	}
	return &Kitchen{client: client, destination: destination}, nil
}

// FromConfig returns a QStash-backed notifier when configured, otherwise Noop.
func FromConfig(cfg qstashx.Config) (contractx.Notifier, error) {
	if !cfg.Enabled() {
		return Noop{}, nil
	}
	client, err := qstashx.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return NewKitchen(client, cfg.KitchenURL)
}

func (k *Kitchen) NotifyOrder(ctx context.Context, order contractx.Order) error {
	resp, err := k.client.Publish(ctx, k.destination, order)
	if err != nil {
		return fmt.Errorf("notify kitchen of order %s: %w", order.OrderID, err)
	}
	log.Debug().Str("order_id", order.OrderID).Str("message_id", resp.MessageID).Msg("kitchen notified")
	return nil
}

type Noop struct{}

func (Noop) NotifyOrder(context.Context, contractx.Order) error {
	return nil
}
