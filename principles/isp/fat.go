package isp

import "errors"

// ErrUnsupported is what the fat interface forces honest devices to lie
// with at runtime.
var ErrUnsupported = errors.New("operation not supported")

// Machine is the before picture: an interface written from the vendor's
// catalog instead of the callers' needs.
type Machine interface {
	Print(Document) error
	Scan(Document) error
	Fax(Document) error
}

// OldPrinter must stub two thirds of the contract to compile.
type OldPrinter struct {
	Printed []string
}

func (p *OldPrinter) Print(d Document) error {
	p.Printed = append(p.Printed, d.Name)
	return nil
}

// Scan is a lie, checked at runtime.
func (p *OldPrinter) Scan(Document) error { return ErrUnsupported }

// Fax is a lie, checked at runtime.
func (p *OldPrinter) Fax(Document) error { return ErrUnsupported }
