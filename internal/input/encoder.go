package input

// Direction is the sign of an encoder's movement between two polls.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionIncrease
	DirectionDecrease
)

func (d Direction) String() string {
	switch d {
	case DirectionIncrease:
		return "increase"
	case DirectionDecrease:
		return "decrease"
	default:
		return "none"
	}
}

// Tracker remembers the last observed position of one encoder. Any number
// of detents between two polls collapses into a single direction.
type Tracker struct {
	last int
}

func NewTracker(initial int) *Tracker {
	return &Tracker{last: initial}
}

// Last is the position seen by the most recent Update.
func (t *Tracker) Last() int {
	return t.last
}

// Update compares current against the last observed position and always
// records current as the new last position.
func (t *Tracker) Update(current int) Direction {
	delta := current - t.last
	t.last = current

	switch {
	case delta < 0:
		return DirectionDecrease
	case delta > 0:
		return DirectionIncrease
	default:
		return DirectionNone
	}
}
