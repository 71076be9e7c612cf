// Ego — the arbiter.
// The Ego is the single component allowed to consult all the others
// in a tick: it takes the Subconscious's ranked impulses, filters
// them through the Superego's norms, weighs in temperament and mood,
// picks an action, and speaks only what the grammar validator
// accepts. No peer component ever calls another; the call graph
// within a tick is strictly Ego-outward.
package mind

import (
	"log/slog"

	"github.com/talgya/kama-sona/internal/emotion"
	"github.com/talgya/kama-sona/internal/grammar"
	"github.com/talgya/kama-sona/internal/personality"
)

// Ego arbitrates between impulse, norm, temperament, and mood.
type Ego struct {
	subconscious *Subconscious
	superego     *Superego
	personality  *personality.Model
	emotion      *emotion.Tracker
	validator    *grammar.Validator

	normWeight        float64
	personalityWeight float64
	moodWeight        float64
	hardVeto          float64
}

// Decide selects this tick's action and utterance.
//
// Pipeline: impulse ranking from the Subconscious; candidates whose
// normative score falls below the hard-veto threshold are excluded
// outright; the rest are reweighted linearly by norm score,
// personality bias, and mood bias; the best composite wins, ties
// resolved by the Subconscious's original order. The chosen action's
// semantic triple is canonicalized by the grammar validator — if the
// sentence cannot be formed, the action still executes and the agent
// stays silent.
func (e *Ego) Decide(snap PerceptionSnapshot) (Action, Utterance) {
	candidates := e.subconscious.Impulse(snap)

	best := -1
	bestScore := 0.0
	for i, c := range candidates {
		norm := e.superego.Score(snap, c.Action)
		if norm < e.hardVeto {
			continue
		}
		verb := c.Action.Verb()
		score := c.Impulse +
			e.normWeight*norm +
			e.personalityWeight*e.personality.Bias(verb) +
			e.moodWeight*e.emotion.Bias(verb)
		if best < 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best < 0 {
		// Everything vetoed: the only safe act is to stay put.
		return Action{Kind: ActionWait}, nil
	}

	action := candidates[best].Action
	tokens, err := e.validator.Canonicalize(action.Triple())
	if err != nil {
		if !grammar.IsGrammarError(err) {
			slog.Warn("unexpected canonicalization failure", "action", action.ID(), "error", err)
		}
		return action, nil
	}
	return action, Utterance(tokens)
}
