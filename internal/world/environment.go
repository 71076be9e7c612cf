// Package world provides the default 2D environment: a flat strip of
// ground under an oscillating sun, with a few scattered objects. It
// exists to exercise the mind; the mind itself never depends on this
// package, only on the embodiment interface it implements.
package world

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Object is a physical thing in the world. Movable objects fall under
// gravity and come to rest on the ground.
type Object struct {
	Kind    string  // Lexicon object word the agent perceives it as
	X, Y    float64
	VX, VY  float64
	Movable bool
}

// GenConfig holds environment generation parameters.
type GenConfig struct {
	Width   float64
	Height  float64
	Seed    int64   // 0 = random
	Fruit   int     // Number of noise-placed fruit objects
	Gravity float64
}

// DefaultGenConfig returns the standard 800x600 strip.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:   800,
		Height:  600,
		Fruit:   6,
		Gravity: 9.8,
	}
}

// Environment is the 2D world state: objects, gravity, and the
// day/night sunlight cycle.
type Environment struct {
	Width    float64
	Height   float64
	Gravity  float64
	Sunlight float64 // 0-1 intensity
	Time     float64
	Objects  []*Object
}

// NewEnvironment generates a world from the config. Object placement
// is deterministic for a given seed: simplex noise over the strip
// decides where fruit grows, alongside the fixed landmark objects.
func NewEnvironment(cfg GenConfig) *Environment {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	env := &Environment{
		Width:    cfg.Width,
		Height:   cfg.Height,
		Gravity:  cfg.Gravity,
		Sunlight: 1.0,
	}

	// Fixed landmarks: a tree and a loose rock, as in every run.
	env.Objects = append(env.Objects,
		&Object{Kind: "tomo", X: 200, Y: 0},
		&Object{Kind: "supa", X: 400, Y: 100, Movable: true},
	)

	// Fruit grows where the noise field peaks. Walking the strip at a
	// fixed stride and keeping the strongest sites keeps placement
	// fully determined by the seed.
	noise := opensimplex.NewNormalized(seed)
	type site struct {
		x, v float64
	}
	var sites []site
	const stride = 16.0
	for x := stride; x < cfg.Width; x += stride {
		sites = append(sites, site{x: x, v: noise.Eval2(x/cfg.Width*4, 0)})
	}
	for placed := 0; placed < cfg.Fruit && len(sites) > 0; placed++ {
		best := 0
		for i, s := range sites {
			if s.v > sites[best].v {
				best = i
			}
		}
		env.Objects = append(env.Objects, &Object{Kind: "kili", X: sites[best].x, Y: 0})
		sites = append(sites[:best], sites[best+1:]...)
	}

	return env
}

// Advance steps world physics by dt seconds: the sun oscillates and
// movable objects fall until they hit the ground.
func (e *Environment) Advance(dt float64) {
	e.Time += dt
	e.Sunlight = (math.Sin(e.Time/10.0) + 1.0) / 2.0
	if e.Sunlight < 0 {
		e.Sunlight = 0
	}

	for _, obj := range e.Objects {
		if !obj.Movable {
			continue
		}
		obj.VY -= e.Gravity * dt
		obj.X += obj.VX * dt
		obj.Y += obj.VY * dt
		if obj.Y < 0 {
			obj.Y = 0
			obj.VY = 0
		}
	}
}

// RemoveObject deletes an object from the world (e.g. eaten fruit).
func (e *Environment) RemoveObject(target *Object) {
	for i, obj := range e.Objects {
		if obj == target {
			e.Objects = append(e.Objects[:i], e.Objects[i+1:]...)
			return
		}
	}
}
