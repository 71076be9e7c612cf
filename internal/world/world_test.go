package world

import (
	"math"
	"testing"

	"github.com/talgya/kama-sona/internal/mind"
)

func TestSunlightOscillatesInRange(t *testing.T) {
	env := NewEnvironment(DefaultGenConfig())
	for i := 0; i < 1000; i++ {
		env.Advance(0.5)
		if env.Sunlight < 0 || env.Sunlight > 1 {
			t.Fatalf("sunlight %v out of [0, 1] at t=%v", env.Sunlight, env.Time)
		}
	}
	// Over a full period the sun must both rise and set.
	env2 := NewEnvironment(DefaultGenConfig())
	lo, hi := 1.0, 0.0
	for i := 0; i < 200; i++ {
		env2.Advance(0.5)
		lo = math.Min(lo, env2.Sunlight)
		hi = math.Max(hi, env2.Sunlight)
	}
	if hi < 0.9 || lo > 0.1 {
		t.Errorf("sunlight range [%v, %v], want near-full oscillation", lo, hi)
	}
}

func TestGravityPullsMovableObjectsToGround(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 42
	env := NewEnvironment(cfg)

	var rock *Object
	for _, obj := range env.Objects {
		if obj.Movable {
			rock = obj
		}
	}
	if rock == nil || rock.Y <= 0 {
		t.Fatal("expected an airborne movable object in a fresh world")
	}

	for i := 0; i < 600; i++ {
		env.Advance(0.1)
	}
	if rock.Y != 0 || rock.VY != 0 {
		t.Errorf("rock at y=%v vy=%v after settling, want resting on ground", rock.Y, rock.VY)
	}
}

func TestGenerationIsDeterministicPerSeed(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 7
	a := NewEnvironment(cfg)
	b := NewEnvironment(cfg)

	if len(a.Objects) != len(b.Objects) {
		t.Fatalf("object counts differ: %d vs %d", len(a.Objects), len(b.Objects))
	}
	for i := range a.Objects {
		if a.Objects[i].X != b.Objects[i].X || a.Objects[i].Kind != b.Objects[i].Kind {
			t.Errorf("object %d differs: %+v vs %+v", i, a.Objects[i], b.Objects[i])
		}
	}

	fruit := 0
	for _, obj := range a.Objects {
		if obj.Kind == "kili" {
			fruit++
		}
	}
	if fruit != cfg.Fruit {
		t.Errorf("fruit count = %d, want %d", fruit, cfg.Fruit)
	}
}

func TestAdapterMoveClampsToBounds(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 7
	env := NewEnvironment(cfg)
	ad := NewAdapter(env)

	for i := 0; i < 1000; i++ {
		if _, err := ad.Apply(mind.Action{Kind: mind.ActionMove, Dir: mind.DirRight}); err != nil {
			t.Fatalf("move failed: %v", err)
		}
	}
	if max := env.Width - ad.Radius; ad.X != max {
		t.Errorf("x = %v after walking right forever, want clamped at %v", ad.X, max)
	}
}

func TestAdapterMoveRewardTracksSunlight(t *testing.T) {
	env := NewEnvironment(DefaultGenConfig())
	env.Sunlight = 0.73
	ad := NewAdapter(env)

	reward, err := ad.Apply(mind.Action{Kind: mind.ActionMove, Dir: mind.DirRight})
	if err != nil {
		t.Fatal(err)
	}
	if reward != 0.73 {
		t.Errorf("move reward = %v, want sunlight 0.73", reward)
	}
}

func TestAdapterEatConsumesReachableFruit(t *testing.T) {
	env := &Environment{Width: 800, Height: 600}
	env.Objects = append(env.Objects, &Object{Kind: "kili", X: 405, Y: 0})
	ad := NewAdapter(env) // body at x=400

	reward, err := ad.Apply(mind.Action{Kind: mind.ActionEat, Target: "kili"})
	if err != nil {
		t.Fatalf("eat failed: %v", err)
	}
	if reward != EatReward {
		t.Errorf("eat reward = %v, want %v", reward, EatReward)
	}
	if len(env.Objects) != 0 {
		t.Errorf("fruit not consumed: %d objects remain", len(env.Objects))
	}

	// Second bite: nothing left, the world rejects the action.
	if _, err := ad.Apply(mind.Action{Kind: mind.ActionEat, Target: "kili"}); err == nil {
		t.Error("eat with nothing in reach should fail")
	}
}

func TestPerceiveReportsDistances(t *testing.T) {
	env := &Environment{Width: 800, Height: 600, Sunlight: 0.4}
	env.Objects = append(env.Objects,
		&Object{Kind: "kili", X: 410, Y: 0},
		&Object{Kind: "tomo", X: 100, Y: 0},
	)
	ad := NewAdapter(env)
	ad.PerceptionRadius = 50

	snap := ad.Perceive()
	if snap.Sunlight != 0.4 {
		t.Errorf("sunlight = %v, want 0.4", snap.Sunlight)
	}
	if len(snap.Objects) != 1 {
		t.Fatalf("perceived %d objects, want 1 within radius", len(snap.Objects))
	}
	if snap.Objects[0].Kind != "kili" || snap.Objects[0].Distance != 10 {
		t.Errorf("perceived %+v, want kili at distance 10", snap.Objects[0])
	}
}
