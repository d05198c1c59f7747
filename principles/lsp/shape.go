// Package lsp is the compilable illustration for the Liskov Substitution
// Principle: a subtype must be usable wherever its supertype is promised,
// without behavioral surprise. The before picture is the mutable
// square-is-a-rectangle in square.go; the refactor below models what the
// shapes actually have in common.
package lsp

// Shape is the honest common contract. Both implementations are immutable
// values, so Scaled can't silently rewrite a caller's dimensions.
type Shape interface {
	Area() float64
	Scaled(factor float64) Shape
}

// Rect is an immutable rectangle.
type Rect struct{ W, H float64 }

// Area returns width times height.
func (r Rect) Area() float64 { return r.W * r.H }

// Scaled returns a new rectangle with both sides multiplied by factor.
func (r Rect) Scaled(factor float64) Shape {
	return Rect{W: r.W * factor, H: r.H * factor}
}

// Square is an immutable square. It is not a Rect; it just shares the Shape
// contract, which is all the callers ever needed.
type Square struct{ Side float64 }

// Area returns the side squared.
func (s Square) Area() float64 { return s.Side * s.Side }

// Scaled returns a new square with the side multiplied by factor.
func (s Square) Scaled(factor float64) Shape {
	return Square{Side: s.Side * factor}
}
