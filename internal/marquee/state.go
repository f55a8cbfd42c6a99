package marquee

// ScrollState reports whether the engine is driving a loop.
type ScrollState int

const (
	Idle ScrollState = iota
	Looping
)

func (s ScrollState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Looping:
		return "looping"
	default:
		return "unknown"
	}
}
