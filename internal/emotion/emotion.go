// Package emotion tracks the agent's mood: a single bounded scalar
// updated from the reward signal each tick. Mood feeds back into
// action selection and personality drift.
package emotion

// Tracker holds the mood scalar and its learning rate.
// Single-threaded, mutated once per tick.
type Tracker struct {
	mood         float64
	learningRate float64
}

// NewTracker creates a tracker with the given learning rate and an
// initial mood clamped to [-1, 1].
func NewTracker(learningRate, initial float64) *Tracker {
	return &Tracker{
		mood:         clampMood(initial),
		learningRate: learningRate,
	}
}

// Update adjusts mood by learningRate * reward, clamped to [-1, 1].
func (t *Tracker) Update(reward float64) {
	t.mood = clampMood(t.mood + t.learningRate*reward)
}

// Current returns the mood in [-1, 1].
func (t *Tracker) Current() float64 { return t.mood }

// Set restores a mood value (snapshot resume), clamped to range.
func (t *Tracker) Set(mood float64) { t.mood = clampMood(mood) }

// Bias returns the mood's contribution to an action category, keyed
// by the lexicon verb. A good mood favours going out into the world;
// a bad mood favours staying put.
func (t *Tracker) Bias(verb string) float64 {
	switch verb {
	case "tawa", "lukin":
		return 0.2 * t.mood
	case "lon":
		return -0.15 * t.mood
	default:
		return 0
	}
}

func clampMood(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
