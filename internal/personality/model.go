// Trait drift and action biasing.
// Drift follows a human-like slow pace: each update nudges the
// current vector toward an experience-derived target, pulls it back
// toward the baseline, and clamps it inside the anchor band.
package personality

// DriftSignal carries the per-tick experience summary that shapes
// trait development.
type DriftSignal struct {
	Reward  float64 // Reinforcement from the environment this tick
	Mood    float64 // Current mood in [-1, 1]
	Novelty float64 // Perceived novelty in [0, 1] (object density)
	Verb    string  // Lexicon verb of the action taken
}

// Per-verb trait nudges: acting in a particular way slowly shapes who
// the agent is. Keyed by lexicon verb.
var verbTraitBias = map[string]TraitVector{
	"moku": {Openness: 0.2},
	"lon":  {Conscientiousness: 0.1},
	"tawa": {Extraversion: 0.2},
}

// Fixed delta coefficients for the drift rule.
const (
	noveltyWeight         = 0.6
	conscientiousPositive = 0.3
	conscientiousNegative = 0.2
	extraversionPositive  = 0.4
	extraversionNegative  = 0.2
	extraversionMood      = 0.2
	agreeablenessPositive = 0.25
	agreeablenessNegative = 0.1
	neuroticismNegative   = 0.5
	neuroticismPositive   = 0.15
)

// Model holds an agent's temperament: the immutable baseline anchor
// and the current vector that drifts within MaxDrift of it.
type Model struct {
	baseline TraitVector
	current  TraitVector

	DriftRate    float64 // Pace of change per update, in [0, 1]
	MaxDrift     float64 // Hard bound on |current - baseline| per trait
	BaselinePull float64 // Fraction of drift spent returning to the anchor
}

// NewModel creates a personality anchored at baseline. The baseline is
// clamped to [0, 1] once and never mutated afterwards.
func NewModel(baseline TraitVector, driftRate, maxDrift float64) *Model {
	baseline.Clamp()
	return &Model{
		baseline:     baseline,
		current:      baseline,
		DriftRate:    driftRate,
		MaxDrift:     maxDrift,
		BaselinePull: 0.15,
	}
}

// Baseline returns the immutable anchor vector.
func (m *Model) Baseline() TraitVector { return m.baseline }

// Current returns the present trait vector.
func (m *Model) Current() TraitVector { return m.current }

// SetCurrent restores a drifted vector (snapshot resume). The vector
// is clamped into the anchor band before use.
func (m *Model) SetCurrent(t TraitVector) {
	t.Clamp()
	m.current = m.clampToAnchor(t)
}

// Drift evolves the current vector one step. After every call,
// |current - baseline| <= MaxDrift holds for each trait.
func (m *Model) Drift(sig DriftSignal) {
	positive := max(sig.Reward, 0)
	negative := max(-sig.Reward, 0)
	bias := verbTraitBias[sig.Verb]

	delta := TraitVector{
		Openness:          (sig.Novelty-0.5)*noveltyWeight + bias.Openness,
		Conscientiousness: conscientiousPositive*positive - conscientiousNegative*negative + bias.Conscientiousness,
		Extraversion:      extraversionPositive*positive - extraversionNegative*negative + extraversionMood*sig.Mood + bias.Extraversion,
		Agreeableness:     agreeablenessPositive*positive - agreeablenessNegative*negative,
		Neuroticism:       neuroticismNegative*negative - neuroticismPositive*positive,
	}

	m.current = TraitVector{
		Openness:          m.step(m.current.Openness, m.baseline.Openness, delta.Openness),
		Conscientiousness: m.step(m.current.Conscientiousness, m.baseline.Conscientiousness, delta.Conscientiousness),
		Extraversion:      m.step(m.current.Extraversion, m.baseline.Extraversion, delta.Extraversion),
		Agreeableness:     m.step(m.current.Agreeableness, m.baseline.Agreeableness, delta.Agreeableness),
		Neuroticism:       m.step(m.current.Neuroticism, m.baseline.Neuroticism, delta.Neuroticism),
	}
}

func (m *Model) step(current, baseline, delta float64) float64 {
	next := current + m.DriftRate*delta - m.DriftRate*m.BaselinePull*(current-baseline)
	next = clamp01(next)
	return clamp(next, baseline-m.MaxDrift, baseline+m.MaxDrift)
}

func (m *Model) clampToAnchor(t TraitVector) TraitVector {
	return TraitVector{
		Openness:          clamp(t.Openness, m.baseline.Openness-m.MaxDrift, m.baseline.Openness+m.MaxDrift),
		Conscientiousness: clamp(t.Conscientiousness, m.baseline.Conscientiousness-m.MaxDrift, m.baseline.Conscientiousness+m.MaxDrift),
		Extraversion:      clamp(t.Extraversion, m.baseline.Extraversion-m.MaxDrift, m.baseline.Extraversion+m.MaxDrift),
		Agreeableness:     clamp(t.Agreeableness, m.baseline.Agreeableness-m.MaxDrift, m.baseline.Agreeableness+m.MaxDrift),
		Neuroticism:       clamp(t.Neuroticism, m.baseline.Neuroticism-m.MaxDrift, m.baseline.Neuroticism+m.MaxDrift),
	}
}

// Bias returns the deterministic linear contribution of the current
// temperament to an action category, keyed by the action's lexicon
// verb. Exploratory verbs reward extraversion and openness; staying
// put rewards conscientiousness; neuroticism discourages exploration.
func (m *Model) Bias(verb string) float64 {
	c := m.current
	switch verb {
	case "tawa":
		return 0.4*c.Extraversion + 0.2*c.Openness - 0.3*c.Neuroticism
	case "lon":
		return 0.3*c.Conscientiousness + 0.2*c.Neuroticism
	case "moku":
		return 0.3*c.Openness + 0.1*c.Extraversion
	case "lukin":
		return 0.2*c.Openness + 0.1*c.Conscientiousness
	default:
		return 0
	}
}
