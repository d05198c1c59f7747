package lsp

// MutableRect is the before picture: independent setters are part of the
// contract callers rely on.
type MutableRect struct{ w, h float64 }

// SetWidth sets the width, leaving the height alone. Callers depend on
// that "leaving the height alone".
func (r *MutableRect) SetWidth(w float64)  { r.w = w }
func (r *MutableRect) SetHeight(h float64) { r.h = h }
func (r *MutableRect) Area() float64       { return r.w * r.h }

// MutableSquare inherits the rectangle's interface but not its promises:
// the invariant forces each setter to touch both sides.
type MutableSquare struct{ MutableRect }

func (s *MutableSquare) SetWidth(w float64)  { s.w, s.h = w, w }
func (s *MutableSquare) SetHeight(h float64) { s.w, s.h = h, h }

// Sizer is what code written against the violation sees.
type Sizer interface {
	SetWidth(float64)
	SetHeight(float64)
	Area() float64
}
