// Package mind implements the layered cognitive pipeline:
// Subconscious (associative memory and impulses), Superego (learned
// norms), and Ego (the arbiter), composed into a Mind that perceives,
// acts, speaks, and learns once per simulation tick.
package mind

import (
	"fmt"

	"github.com/talgya/kama-sona/internal/grammar"
)

// Vec2 is a position in the 2D world.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ObjectState describes one nearby world object as perceived.
// Kind is the lexicon object word the agent knows it by.
type ObjectState struct {
	Kind     string  `json:"kind"`
	Position Vec2    `json:"position"`
	Movable  bool    `json:"movable"`
	Distance float64 `json:"distance"`
}

// AgentState describes another perceived agent. Unused in the
// single-agent world but part of the perception schema.
type AgentState struct {
	Position Vec2 `json:"position"`
}

// PerceptionSnapshot is the immutable per-tick view of the world the
// adapter hands the mind. Produced once before Decide, never mutated.
type PerceptionSnapshot struct {
	Position Vec2          `json:"position"`
	Objects  []ObjectState `json:"objects"`
	Sunlight float64       `json:"sunlight"`
	Others   []AgentState  `json:"others,omitempty"`
	Tick     uint64        `json:"tick"`
}

// Sunlight bands for perception discretization.
const (
	SunlightLowBand  = 0.33
	SunlightHighBand = 0.66
)

// ReachDistance is how close an object must be to be acted on.
const ReachDistance = 30.0

// featureKey discretizes a snapshot into the coarse context string
// used for experience matching and norm conditions.
func featureKey(snap PerceptionSnapshot) string {
	sun := "mid"
	switch {
	case snap.Sunlight < SunlightLowBand:
		sun = "low"
	case snap.Sunlight >= SunlightHighBand:
		sun = "high"
	}
	near := "clear"
	for _, obj := range snap.Objects {
		if obj.Distance <= ReachDistance {
			near = "near"
			break
		}
	}
	return "sun:" + sun + ",obj:" + near
}

// nearestObject returns the closest perceived object, or nil.
func nearestObject(snap PerceptionSnapshot) *ObjectState {
	var best *ObjectState
	for i := range snap.Objects {
		if best == nil || snap.Objects[i].Distance < best.Distance {
			best = &snap.Objects[i]
		}
	}
	return best
}

// ActionKind enumerates the effector primitives.
type ActionKind uint8

const (
	ActionWait ActionKind = iota // Stay in place (lon)
	ActionMove                   // Move one step (tawa)
	ActionEat                    // Consume a nearby object (moku)
	ActionLook                   // Observe surroundings (lukin)
)

// Direction parameterizes a move action.
type Direction uint8

const (
	DirRight Direction = iota
	DirLeft
)

// Action is what the Ego decided to do this tick. Target carries the
// lexicon object word for actions that take one (e.g. eat).
type Action struct {
	Kind   ActionKind `json:"kind"`
	Dir    Direction  `json:"dir,omitempty"`
	Target string     `json:"target,omitempty"`
}

// Verb returns the lexicon verb expressing this action.
func (a Action) Verb() string {
	switch a.Kind {
	case ActionMove:
		return "tawa"
	case ActionEat:
		return "moku"
	case ActionLook:
		return "lukin"
	default:
		return "lon"
	}
}

// ID returns the stable identifier used for experience association,
// norm rule keys, and deterministic tie-breaking.
func (a Action) ID() string {
	switch a.Kind {
	case ActionMove:
		if a.Dir == DirLeft {
			return "move:left"
		}
		return "move:right"
	case ActionEat:
		if a.Target != "" {
			return "eat:" + a.Target
		}
		return "eat"
	case ActionLook:
		return "look"
	default:
		return "wait"
	}
}

// Triple returns the semantic content the Ego will hand the grammar
// validator: first-person subject, the action's verb, and the target
// object if any.
func (a Action) Triple() grammar.Triple {
	return grammar.Triple{Verb: a.Verb(), Object: a.Target}
}

func (a Action) String() string {
	return fmt.Sprintf("Action(%s)", a.ID())
}

// Utterance is an ordered token sequence over the closed lexicon,
// valid against one of the sentence templates. It lives only within
// the tick that produced it.
type Utterance []string

func (u Utterance) String() string {
	out := ""
	for i, tok := range u {
		if i > 0 {
			out += " "
		}
		out += tok
	}
	return out
}

// Embodiment is the narrow boundary between the mind and whatever
// world it inhabits. Implementations translate world state into the
// perception schema and the mind's actions into world effects,
// returning the scalar reward that drives learning. Swapping the
// implementation plugs the same mind into a different world.
type Embodiment interface {
	Perceive() PerceptionSnapshot
	Apply(Action) (reward float64, err error)
}
