// Mind — the composite cognitive pipeline.
// One Mind owns one agent's entire mental state. All mutation happens
// inside the synchronous tick cycle: Decide, apply through the
// embodiment, then Learn from the reward. Nothing here is safe for
// concurrent use and nothing needs to be.
package mind

import (
	"fmt"

	"github.com/talgya/kama-sona/internal/emotion"
	"github.com/talgya/kama-sona/internal/grammar"
	"github.com/talgya/kama-sona/internal/personality"
)

// Options is the mind's configuration surface. Validation failures
// are fatal at construction, before any tick runs.
type Options struct {
	MemoryCapacity int

	DriftRate float64
	MaxDrift  float64
	Baseline  personality.TraitVector

	EmotionLearningRate float64
	InitialMood         float64

	SuperegoLearningRate float64
	HardVetoThreshold    float64

	// Linear arbitration weights.
	NormWeight        float64
	PersonalityWeight float64
	MoodWeight        float64

	// FailurePenalty is the reward substituted when the embodiment
	// rejects an action. The mind never retries within a tick.
	FailurePenalty float64

	Lexicon *grammar.Lexicon
}

// DefaultOptions returns a workable configuration with the default
// lexicon and a mid-scale temperament.
func DefaultOptions() Options {
	return Options{
		MemoryCapacity:       512,
		DriftRate:            0.02,
		MaxDrift:             0.15,
		Baseline:             personality.DefaultTraits(),
		EmotionLearningRate:  0.1,
		SuperegoLearningRate: 0.2,
		HardVetoThreshold:    -0.5,
		NormWeight:           0.5,
		PersonalityWeight:    0.5,
		MoodWeight:           0.5,
		FailurePenalty:       -0.1,
	}
}

func (o Options) validate() error {
	if o.MemoryCapacity <= 0 {
		return fmt.Errorf("memory capacity must be positive, got %d", o.MemoryCapacity)
	}
	if o.DriftRate < 0 || o.DriftRate > 1 {
		return fmt.Errorf("drift rate must be in [0, 1], got %v", o.DriftRate)
	}
	if o.MaxDrift < 0 || o.MaxDrift > 1 {
		return fmt.Errorf("max drift must be in [0, 1], got %v", o.MaxDrift)
	}
	if o.EmotionLearningRate < 0 || o.EmotionLearningRate > 1 {
		return fmt.Errorf("emotion learning rate must be in [0, 1], got %v", o.EmotionLearningRate)
	}
	if o.SuperegoLearningRate < 0 || o.SuperegoLearningRate > 1 {
		return fmt.Errorf("superego learning rate must be in [0, 1], got %v", o.SuperegoLearningRate)
	}
	if !o.Baseline.InRange() {
		return fmt.Errorf("baseline traits must be in [0, 1], got %+v", o.Baseline)
	}
	return nil
}

// Mind composes the cognitive subsystems around a single Ego.
type Mind struct {
	Subconscious *Subconscious
	Superego     *Superego
	Personality  *personality.Model
	Emotion      *emotion.Tracker
	Validator    *grammar.Validator
	Ego          *Ego

	failurePenalty float64
	tick           uint64
}

// New constructs a mind. Configuration errors surface here, before
// the first tick.
func New(opts Options) (*Mind, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("mind config: %w", err)
	}
	lex := opts.Lexicon
	if lex == nil {
		lex = grammar.DefaultLexicon()
	}

	m := &Mind{
		Subconscious:   NewSubconscious(opts.MemoryCapacity),
		Superego:       NewSuperego(opts.SuperegoLearningRate),
		Personality:    personality.NewModel(opts.Baseline, opts.DriftRate, opts.MaxDrift),
		Emotion:        emotion.NewTracker(opts.EmotionLearningRate, opts.InitialMood),
		Validator:      grammar.NewValidator(lex),
		failurePenalty: opts.FailurePenalty,
	}
	m.Ego = &Ego{
		subconscious:      m.Subconscious,
		superego:          m.Superego,
		personality:       m.Personality,
		emotion:           m.Emotion,
		validator:         m.Validator,
		normWeight:        opts.NormWeight,
		personalityWeight: opts.PersonalityWeight,
		moodWeight:        opts.MoodWeight,
		hardVeto:          opts.HardVetoThreshold,
	}
	return m, nil
}

// Decide runs the Ego's arbitration for one snapshot. Exposed as the
// core entry point for surrounding loops that manage their own
// perceive/apply cycle.
func (m *Mind) Decide(snap PerceptionSnapshot) (Action, Utterance) {
	return m.Ego.Decide(snap)
}

// Learn propagates this tick's reward through every learning
// subsystem: mood first, then trait drift (which reads the fresh
// mood), then norms, then episodic memory.
func (m *Mind) Learn(snap PerceptionSnapshot, action Action, reward float64, tick uint64) {
	m.tick = tick
	m.Emotion.Update(reward)
	m.Personality.Drift(personality.DriftSignal{
		Reward:  reward,
		Mood:    m.Emotion.Current(),
		Novelty: novelty(snap),
		Verb:    action.Verb(),
	})
	m.Superego.Update(snap, action, reward)
	m.Subconscious.Observe(snap, action, reward, tick)
}

// novelty maps perceived object density into [0, 1].
func novelty(snap PerceptionSnapshot) float64 {
	n := float64(len(snap.Objects)) / 5.0
	if n > 1 {
		n = 1
	}
	return n
}

// TickResult summarizes one full decide-act-learn cycle.
type TickResult struct {
	Tick      uint64
	Action    Action
	Utterance Utterance
	Reward    float64
	Mood      float64
}

// Step runs one complete tick against an embodiment: perceive,
// decide, apply, learn. An adapter failure is not retried; it is
// absorbed as the configured penalty reward and learning proceeds.
func (m *Mind) Step(world Embodiment, tick uint64) TickResult {
	snap := world.Perceive()
	snap.Tick = tick

	action, utterance := m.Decide(snap)

	reward, err := world.Apply(action)
	if err != nil {
		reward = m.failurePenalty
	}

	m.Learn(snap, action, reward, tick)

	return TickResult{
		Tick:      tick,
		Action:    action,
		Utterance: utterance,
		Reward:    reward,
		Mood:      m.Emotion.Current(),
	}
}

// Tick returns the most recent tick the mind learned from.
func (m *Mind) Tick() uint64 { return m.tick }
