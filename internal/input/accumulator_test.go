package input

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointerDeltasAccumulate(t *testing.T) {
	a := NewAccumulator()
	a.AddPointerDelta(3, -1)
	a.AddPointerDelta(-1, 4)

	s := a.Drain()
	assert.Equal(t, 2, s.PointerDX)
	assert.Equal(t, 3, s.PointerDY)
}

func TestDrainResets(t *testing.T) {
	a := NewAccumulator()
	a.AddPointerDelta(10, 10)
	a.SetHeld(Forward, true)
	a.SetHeld(Left, true)

	first := a.Drain()
	assert.True(t, first.Forward)
	assert.True(t, first.Left)
	assert.Equal(t, 10, first.PointerDX)

	assert.Equal(t, Snapshot{}, a.Drain())
}

func TestSetHeldDirections(t *testing.T) {
	a := NewAccumulator()
	a.SetHeld(Backward, true)
	a.SetHeld(Right, true)
	a.SetHeld(Right, false)

	s := a.Drain()
	assert.Equal(t, Snapshot{Backward: true}, s)
}

func TestApplyLatchesAndSums(t *testing.T) {
	a := NewAccumulator()
	a.Apply(Snapshot{PointerDX: 5, Forward: true})
	a.Apply(Snapshot{PointerDX: 2, PointerDY: -3, Right: true})
	a.Apply(Snapshot{Forward: false})

	s := a.Drain()
	assert.Equal(t, Snapshot{PointerDX: 7, PointerDY: -3, Forward: true, Right: true}, s)
}

func TestConcurrentProducers(t *testing.T) {
	a := NewAccumulator()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				a.AddPointerDelta(1, -1)
			}
		}()
	}
	wg.Wait()

	s := a.Drain()
	assert.Equal(t, 800, s.PointerDX)
	assert.Equal(t, -800, s.PointerDY)
}
