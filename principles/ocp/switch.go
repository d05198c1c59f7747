package ocp

// TotalAreaSwitch is the before picture: every new shape reopens this
// function, and a shape the switch doesn't know about silently contributes
// zero instead of failing to compile.
func TotalAreaSwitch(shapes []any) float64 {
	var total float64
	for _, s := range shapes {
		switch v := s.(type) {
		case Rect:
			total += v.W * v.H
		case Circle:
			total += 3.14159 * v.R * v.R
		}
	}
	return total
}
