// Package srp is the compilable illustration for the Single Responsibility
// Principle: one reason to change per type. The before picture lives in
// monolith.go; this file is the refactor, with pricing, persistence and
// notification each owned by a separate type.
package srp

import "fmt"

// Money is an amount in cents.
type Money int64

// LineItem is one billed entry on an invoice.
type LineItem struct {
	Description string
	Amount      Money
}

// Invoice knows pricing rules and nothing else.
type Invoice struct {
	ID       string
	Customer string
	Items    []LineItem
}

// Total sums the line items.
func (inv Invoice) Total() Money {
	var total Money
	for _, item := range inv.Items {
		total += item.Amount
	}
	return total
}

// InvoiceFormatter renders invoices for humans. Formatting changes (layout,
// locale) land here without touching pricing.
type InvoiceFormatter struct{}

// Format renders the invoice as plain text.
func (InvoiceFormatter) Format(inv Invoice) string {
	out := fmt.Sprintf("Invoice %s for %s\n", inv.ID, inv.Customer)
	for _, item := range inv.Items {
		out += fmt.Sprintf("  %-20s %8.2f\n", item.Description, float64(item.Amount)/100)
	}
	out += fmt.Sprintf("  %-20s %8.2f\n", "TOTAL", float64(inv.Total())/100)
	return out
}

// InvoiceRepository owns storage. Schema changes land here.
type InvoiceRepository struct {
	byID map[string]Invoice
}

// NewInvoiceRepository returns an empty in-memory repository.
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{byID: make(map[string]Invoice)}
}

// Save stores the invoice, replacing any previous version.
func (r *InvoiceRepository) Save(inv Invoice) error {
	if inv.ID == "" {
		return fmt.Errorf("invoice has no ID")
	}
	r.byID[inv.ID] = inv
	return nil
}

// Find returns the stored invoice by ID.
func (r *InvoiceRepository) Find(id string) (Invoice, bool) {
	inv, ok := r.byID[id]
	return inv, ok
}

// Mailer is the delivery capability the notifier needs. Declared here, by
// the consumer.
type Mailer interface {
	Send(to, subject, body string) error
}

// InvoiceNotifier owns customer communication. Template changes land here.
type InvoiceNotifier struct {
	mailer Mailer
}

// NewInvoiceNotifier wires the notifier to a delivery mechanism.
func NewInvoiceNotifier(m Mailer) *InvoiceNotifier {
	return &InvoiceNotifier{mailer: m}
}

// Send emails the customer their invoice.
func (n *InvoiceNotifier) Send(inv Invoice) error {
	subject := fmt.Sprintf("Your invoice %s", inv.ID)
	body := InvoiceFormatter{}.Format(inv)
	return n.mailer.Send(inv.Customer, subject, body)
}
