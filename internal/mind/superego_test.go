package mind

import "testing"

func TestUpdateConvergesTowardReward(t *testing.T) {
	s := NewSuperego(0.2)
	snap := snapWithSunlight(0.8)
	action := Action{Kind: ActionMove, Dir: DirRight}

	prev := 0.0
	for i := 0; i < 100; i++ {
		s.Update(snap, action, 1)
		rule := s.Rules()[action.ID()]
		if rule.Weight < prev {
			t.Fatalf("weight regressed at step %d: %v < %v", i, rule.Weight, prev)
		}
		if rule.Weight > 1 {
			t.Fatalf("weight overshot 1 at step %d: %v", i, rule.Weight)
		}
		prev = rule.Weight
	}
	if prev < 0.99 {
		t.Errorf("weight after 100 updates = %v, want near 1", prev)
	}
}

func TestConfidenceSaturates(t *testing.T) {
	s := NewSuperego(0.2)
	snap := snapWithSunlight(0.5)
	action := Action{Kind: ActionWait}

	prev := 0.0
	for i := 0; i < 200; i++ {
		s.Update(snap, action, 0.5)
		rule := s.Rules()[action.ID()]
		if rule.Confidence < prev || rule.Confidence > 1 {
			t.Fatalf("confidence not monotone-saturating at step %d: %v (prev %v)", i, rule.Confidence, prev)
		}
		prev = rule.Confidence
	}
	if prev < 0.99 {
		t.Errorf("confidence after 200 observations = %v, want near 1", prev)
	}
	if obs := s.Rules()[action.ID()].Observations; obs != 200 {
		t.Errorf("observations = %d, want 200", obs)
	}
}

func TestScoreIsZeroForUnseenAction(t *testing.T) {
	s := NewSuperego(0.2)
	if got := s.Score(snapWithSunlight(0.5), Action{Kind: ActionEat}); got != 0 {
		t.Errorf("score for unseen action = %v, want 0", got)
	}
}

func TestScoreIsContextSensitive(t *testing.T) {
	s := NewSuperego(0.3)
	dark := snapWithSunlight(0.1)
	bright := snapWithSunlight(0.9)
	action := Action{Kind: ActionMove, Dir: DirRight}

	for i := 0; i < 50; i++ {
		s.Update(dark, action, -1)
	}

	darkScore := s.Score(dark, action)
	brightScore := s.Score(bright, action)
	if darkScore >= 0 {
		t.Errorf("dark score = %v, want negative after punishment", darkScore)
	}
	// The bright context shares only the general rule, so the
	// punishment bleeds over less strongly.
	if brightScore <= darkScore {
		t.Errorf("bright score %v should be above dark score %v", brightScore, darkScore)
	}
}

func TestRestoreRoundTripsRules(t *testing.T) {
	s := NewSuperego(0.2)
	snap := snapWithSunlight(0.7)
	for i := 0; i < 10; i++ {
		s.Update(snap, Action{Kind: ActionMove, Dir: DirRight}, 1)
		s.Update(snap, Action{Kind: ActionLook}, -0.5)
	}

	saved := s.Rules()
	s2 := NewSuperego(0.2)
	s2.Restore(saved)

	if got := s2.Score(snap, Action{Kind: ActionMove, Dir: DirRight}); got != s.Score(snap, Action{Kind: ActionMove, Dir: DirRight}) {
		t.Errorf("restored score differs: %v", got)
	}
}
