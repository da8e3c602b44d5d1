package core

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/automoto/tileworld/shared/geom"
	"github.com/stretchr/testify/assert"
)

func TestFixedStep(t *testing.T) {
	f := NewFixedStep(0.25, 5)
	calls := 0
	step := func() { calls++ }

	assert.Equal(t, 2, f.Advance(0.625, step))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0.5, f.Alpha())

	assert.Equal(t, 1, f.Advance(0.125, step))
	assert.Equal(t, 0.0, f.Alpha())

	assert.Equal(t, 0, f.Advance(0.1, step))

	// A long stall runs the cap and drops the rest.
	calls = 0
	assert.Equal(t, 5, f.Advance(10, step))
	assert.Equal(t, 5, calls)
	assert.Equal(t, 0.0, f.Alpha())

	assert.Equal(t, 0, f.Advance(-1, step))
	assert.Equal(t, 0, f.Advance(math.NaN(), step))
}

func TestGameLoopRunsUntilCancelled(t *testing.T) {
	s, _ := newTestSim(t, fightRules(), nil)

	var mu sync.Mutex
	var seen Events
	loop := NewGameLoop(s, 200, func() Input {
		return Input{Move: geom.Vec2{X: 1}}
	}, func(es Events) {
		mu.Lock()
		seen = append(seen, es...)
		mu.Unlock()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	loop.Run(ctx)

	assert.Greater(t, loop.Ticks(), 0)
	assert.False(t, loop.Running())
	assert.Greater(t, s.World.Player.Pos.X, roomStart.X)
}

func TestGameLoopStop(t *testing.T) {
	s, _ := newTestSim(t, fightRules(), nil)
	loop := NewGameLoop(s, 100, nil, nil)

	done := make(chan struct{})
	go func() {
		loop.Run(context.Background())
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	loop.Stop()
	loop.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestGameLoopEndsWithGame(t *testing.T) {
	s, _ := newTestSim(t, fightRules(), nil)
	s.Health = 1
	s.World.Enemies = []Enemy{{Entity: Entity{Pos: roomStart}}}

	var over bool
	loop := NewGameLoop(s, 200, nil, func(es Events) {
		over = over || es.Has(EventGameOver)
	})

	done := make(chan struct{})
	go func() {
		loop.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		loop.Stop()
		t.Fatal("loop kept running after game over")
	}
	assert.True(t, over)
}
