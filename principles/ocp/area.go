// Package ocp is the compilable illustration for the Open/Closed Principle:
// open for extension, closed for modification. The before picture is the
// type switch in switch.go; the refactor below extends by adding a type, not
// by editing a function.
package ocp

import "math"

// Shape is the extension point. A new shape means a new type implementing
// Area; TotalArea never changes.
type Shape interface {
	Area() float64
}

// Rect is an axis-aligned rectangle.
type Rect struct{ W, H float64 }

// Area returns width times height.
func (r Rect) Area() float64 { return r.W * r.H }

// Circle is a circle of radius R.
type Circle struct{ R float64 }

// Area returns pi r squared.
func (c Circle) Area() float64 { return math.Pi * c.R * c.R }

// Triangle joined the system after TotalArea shipped. Nothing else changed.
type Triangle struct{ Base, Height float64 }

// Area returns half base times height.
func (t Triangle) Area() float64 { return t.Base * t.Height / 2 }

// TotalArea sums the areas. Closed for modification: it compiles against
// the Shape contract and never learns about concrete types.
func TotalArea(shapes []Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
