package notify

import (
	"context"
	"errors"
	"testing"

	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
	qstashx "github.com/tanpawarit/namaste-bites-agent/pkg/qstash"
)

type fakePublisher struct {
	destination string
	payload     any
	err         error
}

func (f *fakePublisher) Publish(ctx context.Context, destination string, payload any) (qstashx.PublishResponse, error) {
	f.destination = destination
	f.payload = payload
	if f.err != nil {
		return qstashx.PublishResponse{}, f.err
	}
	return qstashx.PublishResponse{MessageID: "msg_1"}, nil
}

func TestKitchenNotifyOrder(t *testing.T) {
	t.Parallel()

	pub := &fakePublisher{}
	kitchen, err := NewKitchen(pub, "https://kitchen.example/orders")
	if err != nil {
		t.Fatalf("NewKitchen() error = %v", err)
	}

	order := contractx.Order{OrderID: "abcd1234", Customer: "Asha", Items: []string{"samosa"}}
	if err := kitchen.NotifyOrder(context.Background(), order); err != nil {
		t.Fatalf("NotifyOrder() error = %v", err)
	}
	if pub.destination != "https://kitchen.example/orders" {
		t.Fatalf("unexpected destination: %s", pub.destination)
	}
	if got, ok := pub.payload.(contractx.Order); !ok || got.OrderID != "abcd1234" {
		t.Fatalf("unexpected payload: %#v", pub.payload)
	}
}

func TestKitchenNotifyOrderWrapsError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	kitchen, err := NewKitchen(&fakePublisher{err: boom}, "https://kitchen.example/orders")
	if err != nil {
		t.Fatalf("NewKitchen() error = %v", err)
	}
	if err := kitchen.NotifyOrder(context.Background(), contractx.Order{OrderID: "x"}); !errors.Is(err, boom) {
		t.Fatalf("NotifyOrder() error = %v, want boom", err)
	}
}

func TestFromConfigDisabledReturnsNoop(t *testing.T) {
	t.Parallel()

	n, err := FromConfig(qstashx.Config{})
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	if _, ok := n.(Noop); !ok {
		t.Fatalf("expected Noop notifier, got %T", n)
	}
}
