// Package isp is the compilable illustration for the Interface Segregation
// Principle: no client should depend on methods it does not use. The before
// picture is the fat Machine interface in fat.go; the refactor slices it
// along what callers actually need.
package isp

import "fmt"

// Document is a job for an office machine.
type Document struct {
	Name  string
	Pages int
}

// Printer is the capability print-only callers ask for.
type Printer interface {
	Print(Document) error
}

// Scanner is the capability scan-only callers ask for.
type Scanner interface {
	Scan(Document) error
}

// PrintScanner composes roles for devices that honestly have both.
type PrintScanner interface {
	Printer
	Scanner
}

// BasicPrinter implements Printer and nothing else. The compiler, not a
// runtime error, tells callers it cannot scan.
type BasicPrinter struct {
	Printed []string
}

// Print records the job.
func (p *BasicPrinter) Print(d Document) error {
	if d.Pages <= 0 {
		return fmt.Errorf("document %q has no pages", d.Name)
	}
	p.Printed = append(p.Printed, d.Name)
	return nil
}

// MultiFunction is an honest PrintScanner.
type MultiFunction struct {
	Printed []string
	Scanned []string
}

// Print records the job.
func (m *MultiFunction) Print(d Document) error {
	m.Printed = append(m.Printed, d.Name)
	return nil
}

// Scan records the job.
func (m *MultiFunction) Scan(d Document) error {
	m.Scanned = append(m.Scanned, d.Name)
	return nil
}

// PrintAll drains a print queue. It asks for exactly the capability it
// uses, so every printing device qualifies, stub-free.
func PrintAll(p Printer, docs ...Document) error {
	for _, d := range docs {
		if err := p.Print(d); err != nil {
			return fmt.Errorf("print %q: %w", d.Name, err)
		}
	}
	return nil
}
