package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Config is the full session and process configuration. Zero-valued fields
// in a loaded file keep their defaults.
type Config struct {
	Sim    SimConfig    `json:"sim"`
	Motion MotionConfig `json:"motion"`
	Ghost  GhostConfig  `json:"ghost"`
	Canvas CanvasConfig `json:"canvas"`
	Match  MatchConfig  `json:"match"`
	Log    LogConfig    `json:"log"`
}

// SimConfig sets the tick rate, RNG seed and content paths.
type SimConfig struct {
	TicksPerSecond int    `json:"ticks_per_second"`
	Seed           int64  `json:"seed"` // 0 = seed from the clock
	Level          string `json:"level"`
	GlyphDir       string `json:"glyph_dir"`
}

// MotionConfig holds agent speeds and trigger sizes.
type MotionConfig struct {
	PlayerSpeed   float64 `json:"player_speed"`   // tiles per second
	GhostSpeed    float64 `json:"ghost_speed"`    // tiles per second
	TriggerRadius float64 `json:"trigger_radius"` // ghost contact radius, tiles
	CoinRadius    float64 `json:"coin_radius"`    // coin pickup half-extent, tiles
}

// GhostConfig tunes the ghost behaviour policies.
type GhostConfig struct {
	AmbushLead     int     `json:"ambush_lead"`
	StalkRadius    float64 `json:"stalk_radius"`
	WanderRange    int     `json:"wander_range"`
	WanderPatience int     `json:"wander_patience"`
	PathBudget     int     `json:"path_budget"`
}

// CanvasConfig describes the drawing canvas and its normalized output.
type CanvasConfig struct {
	Resolution       int     `json:"resolution"`
	OutputResolution int     `json:"output_resolution"`
	BrushRadius      int     `json:"brush_radius"`
	Padding          int     `json:"padding"`
	Threshold        float64 `json:"threshold"`
}

// MatchConfig holds the recognition threshold.
type MatchConfig struct {
	Threshold float64 `json:"threshold"`
}

// LogConfig selects log sinks, level and file rotation.
type LogConfig struct {
	File       string `json:"file"`
	Level      string `json:"level"`
	Stderr     bool   `json:"stderr"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Sim: SimConfig{TicksPerSecond: 50},
		Motion: MotionConfig{
			PlayerSpeed:   5,
			GhostSpeed:    4,
			TriggerRadius: 0.45,
			CoinRadius:    0.3,
		},
		Ghost: GhostConfig{
			AmbushLead:     4,
			StalkRadius:    5,
			WanderRange:    8,
			WanderPatience: 24,
			PathBudget:     2048,
		},
		Canvas: CanvasConfig{
			Resolution:       256,
			OutputResolution: 32,
			BrushRadius:      6,
			Padding:          2,
			Threshold:        0.1,
		},
		Match: MatchConfig{Threshold: 0.25},
		Log: LogConfig{
			File:       "glyphmaze.log",
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Load reads a JSON config file over the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(buf, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "invalid JSON in config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Sim.TicksPerSecond <= 0:
		return errors.New("sim.ticks_per_second must be positive")
	case c.Motion.PlayerSpeed <= 0:
		return errors.New("motion.player_speed must be positive")
	case c.Motion.GhostSpeed <= 0:
		return errors.New("motion.ghost_speed must be positive")
	case c.Motion.TriggerRadius <= 0:
		return errors.New("motion.trigger_radius must be positive")
	case c.Motion.CoinRadius <= 0 || c.Motion.CoinRadius > 0.5:
		return errors.New("motion.coin_radius must be in (0, 0.5]")
	case c.Canvas.Resolution <= 0 || c.Canvas.OutputResolution <= 0:
		return errors.New("canvas resolutions must be positive")
	case c.Canvas.BrushRadius < 0 || c.Canvas.Padding < 0:
		return errors.New("canvas brush_radius and padding must not be negative")
	case c.Match.Threshold < 0 || c.Match.Threshold > 1:
		return errors.Errorf("match.threshold %.2f outside [0, 1]", c.Match.Threshold)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("log.level %q must be debug, info, warn or error", c.Log.Level)
	}
	return nil
}

// Dt returns the fixed simulation timestep in seconds.
func (c Config) Dt() float64 {
	return 1 / float64(c.Sim.TicksPerSecond)
}
