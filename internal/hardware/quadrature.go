package hardware

import (
	"sync"
	"sync/atomic"

	"github.com/warthog618/go-gpiocdev"
)

// transitions is indexed by previous<<2 | current, each state being A<<1 | B.
// Invalid (double) transitions count as zero.
var transitions = [16]int8{
	0, -1, 1, 0,
	1, 0, 0, -1,
	-1, 0, 0, 1,
	0, 1, -1, 0,
}

// quadratureDecoder counts detents of one encoder from A/B edge events. Edges
// arrive on the gpiocdev event goroutine while Position is read by the poll
// loop.
type quadratureDecoder struct {
	lineA int
	lineB int

	mu    sync.Mutex
	a, b  int
	state uint8
	steps int

	position atomic.Int64
}

func newQuadratureDecoder(lineA, lineB, levelA, levelB int) *quadratureDecoder {
	q := &quadratureDecoder{lineA: lineA, lineB: lineB, a: levelA, b: levelB}
	q.state = q.current()
	return q
}

// seed resets the decoder to the sampled A/B levels, dropping any partial
// step accumulated from edges seen before the sample.
func (q *quadratureDecoder) seed(levelA, levelB int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.a, q.b = levelA, levelB
	q.state = q.current()
	q.steps = 0
}

func (q *quadratureDecoder) current() uint8 {
	return uint8(q.a<<1 | q.b)
}

// edge records a new level on line offset and advances the counter.
func (q *quadratureDecoder) edge(offset, level int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	switch offset {
	case q.lineA:
		q.a = level
	case q.lineB:
		q.b = level
	default:
		return
	}

	next := q.current()
	q.steps += int(transitions[q.state<<2|next])
	q.state = next

	switch {
	case q.steps >= StepsPerDetent:
		q.steps -= StepsPerDetent
		q.position.Add(1)
	case q.steps <= -StepsPerDetent:
		q.steps += StepsPerDetent
		q.position.Add(-1)
	}
}

func (q *quadratureDecoder) handleEvent(evt gpiocdev.LineEvent) {
	level := 0
	if evt.Type == gpiocdev.LineEventRisingEdge {
		level = 1
	}
	q.edge(evt.Offset, level)
}

// Position is the detent count since start.
func (q *quadratureDecoder) Position() int {
	return int(q.position.Load())
}
