// Package config provides configuration loading for kama-sona.
// It layers YAML files and environment variables over defaults, and
// rejects invalid values before the simulation constructs anything.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/talgya/kama-sona/internal/grammar"
	"github.com/talgya/kama-sona/internal/mind"
	"github.com/talgya/kama-sona/internal/personality"
)

// Config holds all simulation settings.
type Config struct {
	// Mind tuning.
	MemoryCapacity       int     `yaml:"memory_capacity"`
	DriftRate            float64 `yaml:"drift_rate"`
	MaxDrift             float64 `yaml:"max_drift"`
	EmotionLearningRate  float64 `yaml:"emotion_learning_rate"`
	SuperegoLearningRate float64 `yaml:"superego_learning_rate"`
	HardVetoThreshold    float64 `yaml:"hard_veto_threshold"`
	FailurePenalty       float64 `yaml:"failure_penalty"`

	// Arbitration weights.
	NormWeight        float64 `yaml:"norm_weight"`
	PersonalityWeight float64 `yaml:"personality_weight"`
	MoodWeight        float64 `yaml:"mood_weight"`

	// Temperament at birth.
	Baseline personality.TraitVector `yaml:"baseline"`

	// Lexicon extensions beyond the root vocabulary.
	ExtraSubjects []string `yaml:"extra_subjects,omitempty"`
	ExtraVerbs    []string `yaml:"extra_verbs,omitempty"`
	ExtraObjects  []string `yaml:"extra_objects,omitempty"`

	// World and runtime.
	Seed         int64         `yaml:"seed"`
	TickInterval time.Duration `yaml:"tick_interval"`
	DBPath       string        `yaml:"db_path"`
	LogLevel     string        `yaml:"log_level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		MemoryCapacity:       512,
		DriftRate:            0.02,
		MaxDrift:             0.15,
		EmotionLearningRate:  0.1,
		SuperegoLearningRate: 0.2,
		HardVetoThreshold:    -0.5,
		FailurePenalty:       -0.1,
		NormWeight:           0.5,
		PersonalityWeight:    0.5,
		MoodWeight:           0.5,
		Baseline:             personality.DefaultTraits(),
		Seed:                 42,
		TickInterval:         250 * time.Millisecond,
		DBPath:               "data/kamasona.db",
		LogLevel:             "info",
	}
}

// LoadFromFile loads configuration from a YAML file over defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Load loads defaults, an optional config file, and environment
// overrides, in that order. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		var err error
		cfg, err = LoadFromFile(path)
		if err != nil {
			return nil, err
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// Validate checks the configuration. Any error here is fatal before
// the first tick runs.
func (c *Config) Validate() error {
	if c.MemoryCapacity <= 0 {
		return fmt.Errorf("memory_capacity must be positive, got %d", c.MemoryCapacity)
	}
	for name, v := range map[string]float64{
		"drift_rate":             c.DriftRate,
		"max_drift":              c.MaxDrift,
		"emotion_learning_rate":  c.EmotionLearningRate,
		"superego_learning_rate": c.SuperegoLearningRate,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %v", name, v)
		}
	}
	if !c.Baseline.InRange() {
		return fmt.Errorf("baseline traits must be in [0, 1], got %+v", c.Baseline)
	}
	if c.TickInterval < 0 {
		return fmt.Errorf("tick_interval must be non-negative, got %v", c.TickInterval)
	}
	return nil
}

// MindOptions converts the config into the mind's option set,
// including the extended lexicon.
func (c *Config) MindOptions() mind.Options {
	lex := grammar.DefaultLexicon()
	lex.Extend(c.ExtraSubjects, c.ExtraVerbs, c.ExtraObjects)

	return mind.Options{
		MemoryCapacity:       c.MemoryCapacity,
		DriftRate:            c.DriftRate,
		MaxDrift:             c.MaxDrift,
		Baseline:             c.Baseline,
		EmotionLearningRate:  c.EmotionLearningRate,
		SuperegoLearningRate: c.SuperegoLearningRate,
		HardVetoThreshold:    c.HardVetoThreshold,
		NormWeight:           c.NormWeight,
		PersonalityWeight:    c.PersonalityWeight,
		MoodWeight:           c.MoodWeight,
		FailurePenalty:       c.FailurePenalty,
		Lexicon:              lex,
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KAMASONA_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("KAMASONA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("KAMASONA_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := os.Getenv("KAMASONA_MEMORY_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MemoryCapacity = n
		}
	}
	if v := os.Getenv("KAMASONA_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TickInterval = d
		}
	}
}
