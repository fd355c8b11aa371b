// Package input turns raw button samples and encoder positions into
// discrete events. Nothing here touches hardware or allocates after
// construction.
package input

import "time"

// Edge is the transition reported by a Debouncer for one sample.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeRose
	EdgeFell
)

func (e Edge) String() string {
	switch e {
	case EdgeRose:
		return "rose"
	case EdgeFell:
		return "fell"
	default:
		return "none"
	}
}

// Debouncer filters contact bounce on a single input line. A new level is
// accepted once the raw signal has held it for the configured number of
// consecutive samples, or for the configured interval when built with
// NewIntervalDebouncer.
type Debouncer struct {
	stable    bool
	candidate bool

	// tick policy
	window int
	run    int

	// time policy
	interval time.Duration
	since    time.Time
	now      func() time.Time
}

// NewDebouncer returns a debouncer that needs ticks consecutive samples on
// a new level before reporting it. ticks below 1 is treated as 1.
func NewDebouncer(initial bool, ticks int) *Debouncer {
	if ticks < 1 {
		ticks = 1
	}
	return &Debouncer{
		stable:    initial,
		candidate: initial,
		window:    ticks,
	}
}

// NewIntervalDebouncer returns a debouncer that needs the raw signal to stay
// on a new level for at least interval. now defaults to time.Now.
func NewIntervalDebouncer(initial bool, interval time.Duration, now func() time.Time) *Debouncer {
	if now == nil {
		now = time.Now
	}
	return &Debouncer{
		stable:    initial,
		candidate: initial,
		interval:  interval,
		now:       now,
	}
}

// Value is the current debounced level.
func (d *Debouncer) Value() bool {
	return d.stable
}

// Update feeds one raw sample and reports the edge it completes, if any.
func (d *Debouncer) Update(raw bool) Edge {
	if raw == d.stable {
		d.candidate = raw
		d.run = 0
		return EdgeNone
	}

	if raw != d.candidate {
		d.candidate = raw
		d.run = 0
		if d.now != nil {
			d.since = d.now()
		}
	}
	d.run++

	if !d.settled() {
		return EdgeNone
	}

	d.stable = raw
	d.run = 0
	if raw {
		return EdgeRose
	}
	return EdgeFell
}

func (d *Debouncer) settled() bool {
	if d.now != nil {
		return d.now().Sub(d.since) >= d.interval
	}
	return d.run >= d.window
}
