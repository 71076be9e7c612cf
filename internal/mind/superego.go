// Superego — learned normative rules.
// A flat map from rule identifier to (weight, confidence). Weights
// follow an exponential moving average of reward; confidence grows
// monotonically with observation count and saturates at 1.
package mind

// NormRule is the learned strength of one normative condition.
// Weight converges toward the mean reward of actions matching the
// rule; Confidence reflects how often the rule has been observed.
type NormRule struct {
	Weight       float64 `json:"weight"`
	Confidence   float64 `json:"confidence"`
	Observations uint64  `json:"observations"`
}

// confidenceGain is the saturating step toward full confidence per
// observation.
const confidenceGain = 0.1

// Superego learns norms by reinforcement and scores candidate
// actions for the Ego. Rules are created lazily on first observation
// and never injected from outside.
type Superego struct {
	rules        map[string]NormRule
	learningRate float64
}

// NewSuperego creates an empty rule set with the given learning rate.
func NewSuperego(learningRate float64) *Superego {
	return &Superego{
		rules:        make(map[string]NormRule),
		learningRate: learningRate,
	}
}

// ruleKeys returns the rule identifiers matching a (snapshot, action)
// pair: one general rule over the action alone, one conditioned on
// the discretized context.
func ruleKeys(snap PerceptionSnapshot, action Action) [2]string {
	id := action.ID()
	return [2]string{id, featureKey(snap) + "|" + id}
}

// Update reinforces every rule matching the taken action. Each rule
// starts at weight 0 and confidence 0; the weight moves by
// lr * (reward - weight) and the confidence rises monotonically
// toward 1.
func (s *Superego) Update(snap PerceptionSnapshot, action Action, reward float64) {
	for _, key := range ruleKeys(snap, action) {
		rule := s.rules[key]
		rule.Weight += s.learningRate * (reward - rule.Weight)
		rule.Confidence += confidenceGain * (1 - rule.Confidence)
		rule.Observations++
		s.rules[key] = rule
	}
}

// Score returns the normative score of a candidate action: the sum
// of weight x confidence over matching rules. Zero for an action the
// superego has never seen.
func (s *Superego) Score(snap PerceptionSnapshot, action Action) float64 {
	total := 0.0
	for _, key := range ruleKeys(snap, action) {
		rule := s.rules[key]
		total += rule.Weight * rule.Confidence
	}
	return total
}

// Rules returns a copy of the learned rule set, keyed by identifier.
func (s *Superego) Rules() map[string]NormRule {
	out := make(map[string]NormRule, len(s.rules))
	for k, v := range s.rules {
		out[k] = v
	}
	return out
}

// Restore replaces the rule set with saved rules (snapshot resume).
func (s *Superego) Restore(rules map[string]NormRule) {
	s.rules = make(map[string]NormRule, len(rules))
	for k, v := range rules {
		s.rules[k] = v
	}
}
