package tabs

// Insets are the safe-area distances from each screen edge. All four
// values reported to the host are non-negative.
type Insets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// Clamped returns a copy with negative components replaced by zero.
func (i Insets) Clamped() Insets {
	if i.Top < 0 {
		i.Top = 0
	}
	if i.Left < 0 {
		i.Left = 0
	}
	if i.Bottom < 0 {
		i.Bottom = 0
	}
	if i.Right < 0 {
		i.Right = 0
	}
	return i
}
