package dip

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier is the test double the inversion buys: no mail server,
// just a slice.
type recordingNotifier struct {
	orders []Order
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, o Order) error {
	if n.err != nil {
		return n.err
	}
	n.orders = append(n.orders, o)
	return nil
}

func TestOrderService_PlaceOrder(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := NewOrderService(notifier)

	order := Order{ID: "ord-7", Customer: "lin@example.com", Cents: 4200}
	require.NoError(t, svc.PlaceOrder(context.Background(), order))

	require.Len(t, notifier.orders, 1)
	assert.Equal(t, "ord-7", notifier.orders[0].ID)
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	svc := NewOrderService(&recordingNotifier{})
	ctx := context.Background()

	assert.Error(t, svc.PlaceOrder(ctx, Order{Customer: "x", Cents: 1}))
	assert.Error(t, svc.PlaceOrder(ctx, Order{ID: "ord-8", Customer: "x", Cents: 0}))
}

func TestOrderService_PlaceOrder_NotifierFailure(t *testing.T) {
	notifier := &recordingNotifier{err: fmt.Errorf("relay down")}
	svc := NewOrderService(notifier)

	err := svc.PlaceOrder(context.Background(), Order{ID: "ord-9", Customer: "x", Cents: 1})
	assert.ErrorContains(t, err, "relay down")
}

func TestSMTPNotifier_SatisfiesConsumerInterface(t *testing.T) {
	var dialed string
	smtp := &SMTPNotifier{
		Addr: "mail.internal:25",
		Dial: func(addr, to, body string) error {
			dialed = fmt.Sprintf("%s -> %s: %s", addr, to, body)
			return nil
		},
	}

	var n Notifier = smtp
	require.NoError(t, n.Notify(context.Background(), Order{ID: "ord-1", Customer: "a@b", Cents: 100}))
	assert.Contains(t, dialed, "mail.internal:25 -> a@b")
}

// ExampleNewOrderService is the composition root in miniature: main() picks
// the concretion, the policy never changes.
func ExampleNewOrderService() {
	notify := &SMTPNotifier{
		Addr: "mail.internal:25",
		Dial: func(addr, to, body string) error {
			fmt.Printf("smtp %s to=%s\n", addr, to)
			return nil
		},
	}

	svc := NewOrderService(notify)
	if err := svc.PlaceOrder(context.Background(), Order{ID: "ord-1", Customer: "dan@example.com", Cents: 999}); err != nil {
		fmt.Println(err)
	}
	// Output: smtp mail.internal:25 to=dan@example.com
}
