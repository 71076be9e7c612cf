// Package personality provides the Big Five trait model: a static
// baseline temperament set at agent creation plus a current vector
// that drifts slowly under lived experience, anchored so the agent
// never loses its character.
package personality

// TraitVector holds the Big Five traits, each in [0, 1].
type TraitVector struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// DefaultTraits returns a mid-scale temperament.
func DefaultTraits() TraitVector {
	return TraitVector{
		Openness:          0.5,
		Conscientiousness: 0.5,
		Extraversion:      0.5,
		Agreeableness:     0.5,
		Neuroticism:       0.5,
	}
}

// Clamp bounds every trait to [0, 1].
func (t *TraitVector) Clamp() {
	t.Openness = clamp01(t.Openness)
	t.Conscientiousness = clamp01(t.Conscientiousness)
	t.Extraversion = clamp01(t.Extraversion)
	t.Agreeableness = clamp01(t.Agreeableness)
	t.Neuroticism = clamp01(t.Neuroticism)
}

// InRange reports whether every trait lies in [0, 1].
func (t TraitVector) InRange() bool {
	for _, v := range t.values() {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

func (t TraitVector) values() [5]float64 {
	return [5]float64{t.Openness, t.Conscientiousness, t.Extraversion, t.Agreeableness, t.Neuroticism}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
