// Package dip is the compilable illustration for the Dependency Inversion
// Principle: high-level policy declares the abstraction it needs; details
// implement it and get injected at the composition root. The before picture
// is in hardwired.go.
package dip

import (
	"context"
	"fmt"
)

// Order is the thing being placed. Throwaway illustration, no persistence.
type Order struct {
	ID       string
	Customer string
	Cents    int64
}

// Notifier is declared BY the consumer, next to the code that uses it.
// The SMTP package does not export an interface; it just happens to satisfy
// this one.
type Notifier interface {
	Notify(ctx context.Context, o Order) error
}

// OrderService is the high-level checkout policy. It knows nothing about
// SMTP, queues or push notifications.
type OrderService struct {
	notifier Notifier
}

// NewOrderService wires the policy to whatever the composition root chose.
func NewOrderService(n Notifier) *OrderService {
	return &OrderService{notifier: n}
}

// PlaceOrder validates the order and notifies the customer.
func (s *OrderService) PlaceOrder(ctx context.Context, o Order) error {
	if o.ID == "" {
		return fmt.Errorf("order has no ID")
	}
	if o.Cents <= 0 {
		return fmt.Errorf("order %s has a non-positive total", o.ID)
	}
	if err := s.notifier.Notify(ctx, o); err != nil {
		return fmt.Errorf("notify customer for order %s: %w", o.ID, err)
	}
	return nil
}

// SMTPNotifier is a detail living at the edge. In production it would dial;
// here the dial is injected so the type stays honest about its dependency.
type SMTPNotifier struct {
	Addr string
	Dial func(addr, to, body string) error
}

// Notify delivers the confirmation over SMTP.
func (n *SMTPNotifier) Notify(ctx context.Context, o Order) error {
	body := fmt.Sprintf("Order %s confirmed, total %d cents", o.ID, o.Cents)
	return n.Dial(n.Addr, o.Customer, body)
}
