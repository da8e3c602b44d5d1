package core

import (
	"context"
	"log"
	"sync"
	"time"
)

// FixedStep is the accumulator that decouples simulation rate from frame
// rate. Elapsed wall time is banked and spent in whole DT steps.
type FixedStep struct {
	DT       float64
	MaxSteps int
	acc      float64
}

// NewFixedStep returns an accumulator for the given step and per-call cap.
func NewFixedStep(dt float64, maxSteps int) *FixedStep {
	return &FixedStep{DT: dt, MaxSteps: maxSteps}
}

// Advance banks elapsed seconds and calls step once per whole DT. At most
// MaxSteps run per call; time beyond that is dropped so a stall cannot
// snowball. It returns the number of steps run.
func (f *FixedStep) Advance(elapsed float64, step func()) int {
	if !(elapsed > 0) || !(f.DT > 0) {
		return 0
	}
	f.acc += elapsed
	n := 0
	for f.acc >= f.DT {
		if f.MaxSteps > 0 && n >= f.MaxSteps {
			f.acc = 0
			break
		}
		step()
		f.acc -= f.DT
		n++
	}
	return n
}

// Alpha is the fraction of a step still banked, for render interpolation.
func (f *FixedStep) Alpha() float64 {
	if !(f.DT > 0) {
		return 0
	}
	return f.acc / f.DT
}

// InputSource supplies the intent for the next tick.
type InputSource func() Input

// EventSink receives the events of each tick.
type EventSink func(Events)

// GameLoop drives a Sim from a wall-clock ticker without a window.
type GameLoop struct {
	sim      *Sim
	tickRate int
	input    InputSource
	sink     EventSink
	step     *FixedStep

	mu       sync.Mutex
	running  bool
	ticks    int
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop wires a sim to a ticker. input and sink may be nil.
func NewGameLoop(sim *Sim, tickRate int, input InputSource, sink EventSink) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		input:    input,
		sink:     sink,
		step:     NewFixedStep(sim.Params.DT, sim.Params.MaxSteps),
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called, ctx is done, or the game ends.
func (g *GameLoop) Run(ctx context.Context) {
	g.setRunning(true)
	defer g.setRunning(false)

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop stopped")
			return
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case now := <-ticker.C:
			elapsed := now.Sub(last).Seconds()
			last = now
			g.step.Advance(elapsed, g.tick)
			if g.sim.World.GameEnd {
				log.Println("Game loop finished: game over")
				return
			}
		}
	}
}

func (g *GameLoop) tick() {
	var in Input
	if g.input != nil {
		in = g.input()
	}
	events := g.sim.Tick(g.sim.Params.DT, in)

	g.mu.Lock()
	g.ticks++
	g.mu.Unlock()

	if g.sink != nil && len(events) > 0 {
		g.sink(events)
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Ticks returns how many simulation steps have run.
func (g *GameLoop) Ticks() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ticks
}

func (g *GameLoop) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

func (g *GameLoop) setRunning(v bool) {
	g.mu.Lock()
	g.running = v
	g.mu.Unlock()
}
