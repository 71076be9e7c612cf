// Mind state snapshots for save/resume.
// A State is an opaque value copy of every §3-style entity the mind
// owns; Restore(State()) reproduces the mind exactly.
package mind

import "github.com/talgya/kama-sona/internal/personality"

// State is the serializable snapshot of a mind's mutable state.
type State struct {
	Tick        uint64                      `json:"tick"`
	Mood        float64                     `json:"mood"`
	Traits      personality.TraitVector     `json:"traits"`
	Baseline    personality.TraitVector     `json:"baseline"`
	Experiences []Experience                `json:"experiences"`
	Norms       map[string]NormRule         `json:"norms"`
}

// State captures the mind's current mutable state.
func (m *Mind) State() State {
	return State{
		Tick:        m.tick,
		Mood:        m.Emotion.Current(),
		Traits:      m.Personality.Current(),
		Baseline:    m.Personality.Baseline(),
		Experiences: m.Subconscious.Experiences(),
		Norms:       m.Superego.Rules(),
	}
}

// Restore replays a saved state into the mind. The baseline anchor is
// not restored — it is fixed at construction — but the drifted
// vector, mood, norms, experiences, and tick counter all are.
func (m *Mind) Restore(st State) {
	m.tick = st.Tick
	m.Emotion.Set(st.Mood)
	m.Personality.SetCurrent(st.Traits)
	m.Superego.Restore(st.Norms)
	m.Subconscious.Restore(st.Experiences)
}
