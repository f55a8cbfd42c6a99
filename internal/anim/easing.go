package anim

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(float64) float64

// Linear moves at constant velocity. A looping marquee needs it: any
// acceleration makes the wrap point visible.
func Linear(t float64) float64 {
	return clamp01(t)
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	default:
		return t
	}
}
