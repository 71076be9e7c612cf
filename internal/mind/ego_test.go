package mind

import (
	"reflect"
	"testing"
)

func newTestMind(t *testing.T) *Mind {
	t.Helper()
	m, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestDecideSunnyDefaultMovesRightAndSpeaks(t *testing.T) {
	// Fresh agent, default temperament, empty memory, bright sun,
	// nothing nearby: the mind should set off to the right and say
	// the one-word first-person sentence for moving.
	m := newTestMind(t)
	snap := PerceptionSnapshot{Position: Vec2{X: 400}, Sunlight: 0.9}

	action, utterance := m.Decide(snap)

	if action.Kind != ActionMove || action.Dir != DirRight {
		t.Fatalf("action = %s, want move:right", action)
	}
	if !reflect.DeepEqual([]string(utterance), []string{"tawa"}) {
		t.Errorf("utterance = %q, want [tawa] with no particles", utterance)
	}
}

func TestDecideSpeaksObjectSentenceWhenEating(t *testing.T) {
	m := newTestMind(t)
	snap := PerceptionSnapshot{
		Sunlight: 0.05,
		Objects:  []ObjectState{{Kind: "kili", Distance: 5}},
	}

	action, utterance := m.Decide(snap)
	if action.Kind != ActionEat || action.Target != "kili" {
		t.Fatalf("action = %s, want eat:kili", action)
	}
	if !reflect.DeepEqual([]string(utterance), []string{"moku", "e", "kili"}) {
		t.Errorf("utterance = %q, want [moku e kili]", utterance)
	}
}

func TestDecideHardVetoExcludesAction(t *testing.T) {
	m := newTestMind(t)
	snap := PerceptionSnapshot{Position: Vec2{X: 400}, Sunlight: 0.9}

	// Drive the norm for moving right in this context deep below the
	// veto threshold. The subconscious still ranks it first (bright
	// sun), but the Ego must not even consider it.
	move := Action{Kind: ActionMove, Dir: DirRight}
	for i := 0; i < 60; i++ {
		m.Superego.Update(snap, move, -1)
	}
	if ranked := m.Subconscious.Impulse(snap); ranked[0].Action.Kind != ActionMove {
		t.Fatalf("precondition: impulse should still rank move first, got %s", ranked[0].Action)
	}

	action, _ := m.Decide(snap)
	if action.Kind == ActionMove {
		t.Errorf("vetoed action still chosen: %s", action)
	}
}

func TestDecideFallsBackToWaitWhenAllVetoed(t *testing.T) {
	m := newTestMind(t)
	snap := PerceptionSnapshot{Sunlight: 0.5}

	for _, a := range []Action{
		{Kind: ActionMove, Dir: DirRight},
		{Kind: ActionWait},
		{Kind: ActionEat},
		{Kind: ActionLook},
	} {
		for i := 0; i < 60; i++ {
			m.Superego.Update(snap, a, -1)
		}
	}

	action, utterance := m.Decide(snap)
	if action.Kind != ActionWait {
		t.Errorf("all-vetoed fallback = %s, want wait", action)
	}
	if utterance != nil {
		t.Errorf("all-vetoed fallback spoke %q, want silence", utterance)
	}
}

func TestDecideSilentFallbackOnGrammarError(t *testing.T) {
	m := newTestMind(t)
	// An object word outside the lexicon makes the triple
	// unspeakable; the action must still go through, silently.
	snap := PerceptionSnapshot{
		Sunlight: 0.05,
		Objects:  []ObjectState{{Kind: "banana", Distance: 5}},
	}

	action, utterance := m.Decide(snap)
	if action.Kind != ActionEat {
		t.Fatalf("action = %s, want eat despite unspeakable target", action)
	}
	if utterance != nil {
		t.Errorf("utterance = %q, want silence on grammar error", utterance)
	}
}

func TestTemperamentShiftsArbitration(t *testing.T) {
	// A timid, dutiful agent in the dark prefers staying put over the
	// residual movement impulse; a bold extravert keeps moving.
	timidOpts := DefaultOptions()
	timidOpts.Baseline.Extraversion = 0.0
	timidOpts.Baseline.Conscientiousness = 1.0
	timidOpts.Baseline.Neuroticism = 1.0
	timidOpts.PersonalityWeight = 1.0
	timid, err := New(timidOpts)
	if err != nil {
		t.Fatal(err)
	}

	boldOpts := DefaultOptions()
	boldOpts.Baseline.Extraversion = 1.0
	boldOpts.Baseline.Neuroticism = 0.0
	boldOpts.PersonalityWeight = 1.0
	bold, err := New(boldOpts)
	if err != nil {
		t.Fatal(err)
	}

	dark := PerceptionSnapshot{Sunlight: 0.0}
	timidAction, _ := timid.Decide(dark)
	boldAction, _ := bold.Decide(dark)

	if timidAction.Kind != ActionWait {
		t.Errorf("timid agent in the dark chose %s, want wait", timidAction)
	}
	if boldAction.Kind != ActionMove {
		t.Errorf("bold agent in the dark chose %s, want move", boldAction)
	}
}
