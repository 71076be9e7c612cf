// Adapter — the embodiment boundary for the default 2D world.
// Translates world state into the mind's perception schema and the
// mind's actions into world effects plus a scalar reward. Swapping
// this adapter for another world implementation requires no change
// to the mind.
package world

import (
	"fmt"
	"math"

	"github.com/talgya/kama-sona/internal/mind"
)

// Reward shaping for the default world. Movement pays off in
// proportion to sunlight; eating a reachable fruit pays a flat bonus.
const (
	EatReward = 0.5
)

// Adapter embodies one agent in an Environment and implements the
// mind's perception/action contract.
type Adapter struct {
	Env      *Environment
	StepSize float64

	// Body state.
	X, Y   float64
	Radius float64

	// PerceptionRadius limits how far the agent sees. Zero means
	// unlimited.
	PerceptionRadius float64
}

// NewAdapter places an agent body at the center of the ground line.
func NewAdapter(env *Environment) *Adapter {
	return &Adapter{
		Env:      env,
		StepSize: 5.0,
		X:        env.Width / 2,
		Y:        0,
		Radius:   10,
	}
}

// Perceive builds the per-tick perception snapshot: own position,
// visible objects with distances, and current sunlight.
func (a *Adapter) Perceive() mind.PerceptionSnapshot {
	snap := mind.PerceptionSnapshot{
		Position: mind.Vec2{X: a.X, Y: a.Y},
		Sunlight: a.Env.Sunlight,
	}
	for _, obj := range a.Env.Objects {
		d := math.Hypot(obj.X-a.X, obj.Y-a.Y)
		if a.PerceptionRadius > 0 && d > a.PerceptionRadius {
			continue
		}
		snap.Objects = append(snap.Objects, mind.ObjectState{
			Kind:     obj.Kind,
			Position: mind.Vec2{X: obj.X, Y: obj.Y},
			Movable:  obj.Movable,
			Distance: d,
		})
	}
	return snap
}

// Apply executes an action in the world and returns its reward.
// Movement is rewarded by current sunlight; eating consumes the
// nearest matching object within reach. A failed action returns an
// error — the mind converts it into its configured penalty and moves
// on.
func (a *Adapter) Apply(action mind.Action) (float64, error) {
	switch action.Kind {
	case mind.ActionMove:
		step := a.StepSize
		if action.Dir == mind.DirLeft {
			step = -step
		}
		a.X = clampRange(a.X+step, a.Radius, a.Env.Width-a.Radius)
		return a.Env.Sunlight, nil

	case mind.ActionEat:
		obj := a.reachable(action.Target)
		if obj == nil {
			return 0, fmt.Errorf("nothing to eat within reach (target %q)", action.Target)
		}
		a.Env.RemoveObject(obj)
		return EatReward, nil

	case mind.ActionLook, mind.ActionWait:
		return 0, nil

	default:
		return 0, fmt.Errorf("unknown action kind %d", action.Kind)
	}
}

// reachable returns the nearest object of the given kind within reach.
func (a *Adapter) reachable(kind string) *Object {
	var best *Object
	bestDist := mind.ReachDistance
	for _, obj := range a.Env.Objects {
		if kind != "" && obj.Kind != kind {
			continue
		}
		if d := math.Hypot(obj.X-a.X, obj.Y-a.Y); d <= bestDist {
			best = obj
			bestDist = d
		}
	}
	return best
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
