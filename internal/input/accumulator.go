package input

import "sync"

// Direction enumerates the held movement keys.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Snapshot is one tick's worth of input: pointer movement summed since
// the previous tick plus the movement directions held during it.
type Snapshot struct {
	PointerDX int
	PointerDY int
	Forward   bool
	Backward  bool
	Left      bool
	Right     bool
}

// Accumulator collects input between ticks. Producers may feed it from
// any goroutine; the simulation drains it once per tick, which resets
// it to neutral so stale input never leaks into later frames.
type Accumulator struct {
	mu   sync.Mutex
	snap Snapshot
}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// AddPointerDelta adds a relative pointer movement.
func (a *Accumulator) AddPointerDelta(dx, dy int) {
	a.mu.Lock()
	a.snap.PointerDX += dx
	a.snap.PointerDY += dy
	a.mu.Unlock()
}

// SetHeld records whether a movement direction is currently held.
func (a *Accumulator) SetHeld(d Direction, held bool) {
	a.mu.Lock()
	switch d {
	case Forward:
		a.snap.Forward = held
	case Backward:
		a.snap.Backward = held
	case Left:
		a.snap.Left = held
	case Right:
		a.snap.Right = held
	}
	a.mu.Unlock()
}

// Apply merges a whole snapshot: deltas add, held flags latch on.
func (a *Accumulator) Apply(s Snapshot) {
	a.mu.Lock()
	a.snap.PointerDX += s.PointerDX
	a.snap.PointerDY += s.PointerDY
	a.snap.Forward = a.snap.Forward || s.Forward
	a.snap.Backward = a.snap.Backward || s.Backward
	a.snap.Left = a.snap.Left || s.Left
	a.snap.Right = a.snap.Right || s.Right
	a.mu.Unlock()
}

// Drain returns everything accumulated since the last drain and resets
// the accumulator to neutral.
func (a *Accumulator) Drain() Snapshot {
	a.mu.Lock()
	s := a.snap
	a.snap = Snapshot{}
	a.mu.Unlock()
	return s
}
