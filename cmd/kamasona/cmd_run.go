package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/talgya/kama-sona/internal/config"
	"github.com/talgya/kama-sona/internal/engine"
	"github.com/talgya/kama-sona/internal/mind"
	"github.com/talgya/kama-sona/internal/persistence"
	"github.com/talgya/kama-sona/internal/world"
)

func newRunCmd() *cobra.Command {
	var ticks uint64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return runSimulation(configPath, ticks)
		},
	}
	cmd.Flags().Uint64Var(&ticks, "ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
	return cmd
}

func runSimulation(configPath string, maxTicks uint64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	slog.Info("kama sona", "version", version)

	// ── Database ──────────────────────────────────────────────────────
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		os.MkdirAll(dir, 0o755)
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── World (always regenerated — deterministic from seed) ──────────
	genCfg := world.DefaultGenConfig()
	genCfg.Seed = cfg.Seed
	env := world.NewEnvironment(genCfg)
	adapter := world.NewAdapter(env)
	slog.Info("world ready", "width", env.Width, "objects", len(env.Objects), "seed", cfg.Seed)

	// ── Mind: resume or birth ─────────────────────────────────────────
	opts := cfg.MindOptions()
	var startTick uint64

	if db.HasMind() {
		baseline, err := db.SavedBaseline()
		if err != nil {
			return fmt.Errorf("load baseline: %w", err)
		}
		opts.Baseline = baseline
	}

	agentMind, err := mind.New(opts)
	if err != nil {
		return err
	}

	if db.HasMind() {
		st, err := db.LoadMind()
		if err != nil {
			return fmt.Errorf("load mind: %w", err)
		}
		agentMind.Restore(st)
		startTick = st.Tick
		slog.Info("mind restored",
			"tick", startTick,
			"sim_time", engine.SimTime(startTick),
			"mood", fmt.Sprintf("%.3f", st.Mood),
			"experiences", len(st.Experiences),
			"rules", len(st.Norms),
		)
	} else {
		slog.Info("new mind born", "baseline", fmt.Sprintf("%+v", opts.Baseline))
	}

	agentID, err := db.AgentID()
	if err != nil {
		return fmt.Errorf("agent identity: %w", err)
	}
	slog.Info("agent", "id", agentID)

	// ── Engine ────────────────────────────────────────────────────────
	eng := engine.New()
	eng.Tick = startTick
	eng.Interval = cfg.TickInterval

	dt := cfg.TickInterval.Seconds()
	eng.OnTick = func(tick uint64) {
		env.Advance(dt)
		res := agentMind.Step(adapter, tick)

		if res.Utterance != nil {
			slog.Info("toki",
				"tick", tick,
				"says", res.Utterance.String(),
				"action", res.Action.ID(),
				"reward", fmt.Sprintf("%.3f", res.Reward),
				"mood", fmt.Sprintf("%.3f", res.Mood),
			)
		} else {
			slog.Info("silent",
				"tick", tick,
				"action", res.Action.ID(),
				"reward", fmt.Sprintf("%.3f", res.Reward),
			)
		}

		if maxTicks > 0 && tick >= startTick+maxTicks {
			eng.Stop()
		}
	}
	eng.OnMinute = func(tick uint64) {
		if err := db.SaveMind(agentMind.State()); err != nil {
			slog.Error("periodic save failed", "error", err)
		}
		slog.Info("minute report",
			"tick", tick,
			"sim_time", engine.SimTime(tick),
			"mood", fmt.Sprintf("%.3f", agentMind.Emotion.Current()),
			"experiences", agentMind.Subconscious.Len(),
		)
	}

	// ── Start ─────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	fmt.Printf("\nkama sona: one soul awake in a %gx%g world.\n", env.Width, env.Height)
	if startTick > 0 {
		fmt.Printf("Resuming from tick %d (%s)\n", startTick, engine.SimTime(startTick))
	}
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	eng.Run()

	// Final save on shutdown.
	slog.Info("final save...")
	if err := db.SaveMind(agentMind.State()); err != nil {
		slog.Error("final save failed", "error", err)
	}

	fmt.Println("Simulation stopped. Mind state saved.")
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
