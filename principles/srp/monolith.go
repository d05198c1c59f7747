package srp

import "fmt"

// MonolithicInvoice is the before picture: pricing, formatting, storage and
// email on one type. Three departments (finance, ops, marketing) now have a
// reason to change the same struct.
type MonolithicInvoice struct {
	ID       string
	Customer string
	Items    []LineItem

	saved map[string]string
}

// Total prices the invoice.
func (inv *MonolithicInvoice) Total() Money {
	var total Money
	for _, item := range inv.Items {
		total += item.Amount
	}
	return total
}

// Save persists the invoice wherever the invoice decides.
func (inv *MonolithicInvoice) Save() error {
	if inv.saved == nil {
		inv.saved = make(map[string]string)
	}
	inv.saved[inv.ID] = fmt.Sprintf("%s:%d", inv.Customer, inv.Total())
	return nil
}

// EmailCustomer formats and sends in one breath, untestable without a
// mail server once a real SMTP client lands here.
func (inv *MonolithicInvoice) EmailCustomer(send func(to, body string) error) error {
	body := fmt.Sprintf("Invoice %s, total %d", inv.ID, inv.Total())
	return send(inv.Customer, body)
}
