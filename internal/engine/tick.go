// Package engine provides the tick-based simulation loop.
// One full perceive-decide-act-learn cycle completes per tick before
// the next begins; there is no concurrency inside the loop.
package engine

import (
	"fmt"
	"log/slog"
	"time"
)

// TicksPerMinute groups ticks for periodic work such as snapshot
// saves.
const TicksPerMinute = 60

// Engine drives the simulation forward.
type Engine struct {
	Tick     uint64        // Current tick counter (monotonic, never resets)
	Speed    float64       // Multiplier: 1.0 = real-time, 0 = paused
	Interval time.Duration // Base tick interval
	Running  bool

	// Callbacks — populated during setup.
	OnTick   func(tick uint64) // Every tick
	OnMinute func(tick uint64) // Every TicksPerMinute ticks
}

// New creates an engine with default settings.
func New() *Engine {
	return &Engine{
		Speed:    1.0,
		Interval: 250 * time.Millisecond,
	}
}

// Run starts the loop. Blocks until Stop is called.
func (e *Engine) Run() {
	e.Running = true
	slog.Info("engine started", "tick", e.Tick, "speed", e.Speed)

	for e.Running {
		if e.Speed <= 0 {
			// Paused.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()
		e.Step()

		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / e.Speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	slog.Info("engine stopped", "tick", e.Tick)
}

// Stop halts the loop after the current tick completes.
func (e *Engine) Stop() {
	e.Running = false
}

// Step advances the simulation by exactly one tick. Exposed so tests
// and batch runs can drive the engine without the wall clock.
func (e *Engine) Step() {
	e.Tick++

	if e.OnTick != nil {
		e.OnTick(e.Tick)
	}
	if e.Tick%TicksPerMinute == 0 && e.OnMinute != nil {
		e.OnMinute(e.Tick)
	}
}

// SimTime returns a human-readable time string for a tick number.
func SimTime(tick uint64) string {
	minutes := tick / TicksPerMinute
	return fmt.Sprintf("%d:%02d:%02d", minutes/60, minutes%60, tick%TicksPerMinute)
}
