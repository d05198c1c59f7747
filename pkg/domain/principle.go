package domain

import (
	"fmt"
	"strings"
)

// Principle identifies one of the five SOLID design principles.
type Principle string

const (
	SingleResponsibility Principle = "srp"
	OpenClosed           Principle = "ocp"
	LiskovSubstitution   Principle = "lsp"
	InterfaceSegregation Principle = "isp"
	DependencyInversion  Principle = "dip"
)

// Principles lists the five principles in canonical S-O-L-I-D order.
// The course always sequences lessons in this order.
func Principles() []Principle {
	return []Principle{
		SingleResponsibility,
		OpenClosed,
		LiskovSubstitution,
		InterfaceSegregation,
		DependencyInversion,
	}
}

// Letter returns the uppercase letter the principle contributes to the acronym.
func (p Principle) Letter() string {
	switch p {
	case SingleResponsibility:
		return "S"
	case OpenClosed:
		return "O"
	case LiskovSubstitution:
		return "L"
	case InterfaceSegregation:
		return "I"
	case DependencyInversion:
		return "D"
	}
	return "?"
}

// Title returns the full human-readable name of the principle.
func (p Principle) Title() string {
	switch p {
	case SingleResponsibility:
		return "Single Responsibility Principle"
	case OpenClosed:
		return "Open/Closed Principle"
	case LiskovSubstitution:
		return "Liskov Substitution Principle"
	case InterfaceSegregation:
		return "Interface Segregation Principle"
	case DependencyInversion:
		return "Dependency Inversion Principle"
	}
	return string(p)
}

// Rank returns the position of the principle in the canonical order (0-4).
// Unknown principles sort last.
func (p Principle) Rank() int {
	for i, known := range Principles() {
		if p == known {
			return i
		}
	}
	return len(Principles())
}

// Valid reports whether p is one of the five known principles.
func (p Principle) Valid() bool {
	return p.Rank() < len(Principles())
}

// ParsePrinciple resolves a user-supplied name to a Principle.
// It accepts the short code ("ocp"), the single letter ("o") and the
// full title ("open/closed"), case-insensitively.
func ParsePrinciple(s string) (Principle, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Principles() {
		if needle == string(p) || strings.EqualFold(needle, p.Letter()) {
			return p, nil
		}
		if needle == strings.ToLower(p.Title()) || needle == strings.ToLower(strings.TrimSuffix(p.Title(), " Principle")) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPrinciple, s)
}
