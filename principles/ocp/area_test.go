package ocp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalArea(t *testing.T) {
	shapes := []Shape{
		Rect{W: 3, H: 4},
		Circle{R: 1},
		Triangle{Base: 6, Height: 2},
	}

	assert.InDelta(t, 12+3.14159+6, TotalArea(shapes), 0.001)
	assert.Zero(t, TotalArea(nil))
}

// A shape defined outside this package extends the system without touching
// TotalArea. This is the "closed for modification" claim, verified.
type annulus struct{ outer, inner Circle }

func (a annulus) Area() float64 { return a.outer.Area() - a.inner.Area() }

func TestTotalArea_OpenForExtension(t *testing.T) {
	ring := annulus{outer: Circle{R: 2}, inner: Circle{R: 1}}
	assert.InDelta(t, ring.Area(), TotalArea([]Shape{ring}), 0.001)
}

func TestTotalAreaSwitch_DropsUnknownShapes(t *testing.T) {
	known := []any{Rect{W: 3, H: 4}}
	assert.InDelta(t, 12, TotalAreaSwitch(known), 0.001)

	// The type switch never heard of Triangle: it contributes nothing,
	// and nothing warns us.
	withTriangle := append(known, Triangle{Base: 6, Height: 2})
	assert.InDelta(t, 12, TotalAreaSwitch(withTriangle), 0.001)
}

func ExampleTotalArea() {
	shapes := []Shape{Rect{W: 2, H: 3}, Rect{W: 1, H: 1}}
	fmt.Println(TotalArea(shapes))
	// Output: 7
}
