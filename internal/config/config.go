// Package config loads the game's YAML configuration. Defaults are applied
// first, then the file, then SEMINARBOT_* environment variables (optionally
// seeded from a .env file).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"seminarbot/internal/audio"
	"seminarbot/internal/controller"
)

var ErrInvalid = errors.New("invalid config")

const (
	EnvConfig    = "SEMINARBOT_CONFIG"
	EnvLevel     = "SEMINARBOT_LEVEL"
	EnvLogLevel  = "SEMINARBOT_LOG_LEVEL"
	EnvSentryDSN = "SEMINARBOT_SENTRY_DSN"
)

type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Level       string            `yaml:"level"`
	Materials   string            `yaml:"materials"`
	LogLevel    string            `yaml:"log_level"`
	SentryDSN   string            `yaml:"sentry_dsn"`
	Controller  controller.Config `yaml:"controller"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Interaction InteractionConfig `yaml:"interaction"`
	Doors       DoorConfig        `yaml:"doors"`
	Audio       AudioConfig       `yaml:"audio"`
}

type WindowConfig struct {
	Width     int32   `yaml:"width"`
	Height    int32   `yaml:"height"`
	Title     string  `yaml:"title"`
	TargetFPS int32   `yaml:"target_fps"`
	FOV       float32 `yaml:"fov"`
}

type PhysicsConfig struct {
	Radius float32 `yaml:"radius"`
}

type InteractionConfig struct {
	DoorDistance float32 `yaml:"door_distance"`
	ItemDistance float32 `yaml:"item_distance"`
}

type DoorConfig struct {
	SwingAngle float32 `yaml:"swing_angle"` // degrees
	NoticeMs   int     `yaml:"notice_ms"`
}

func (d DoorConfig) NoticeDuration() time.Duration {
	return time.Duration(d.NoticeMs) * time.Millisecond
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	// Cues is keyed by cue name, e.g. "door_open".
	Cues map[string]CueConfig `yaml:"cues"`
}

type CueConfig struct {
	Path   string  `yaml:"path"`
	Volume float32 `yaml:"volume"` // percent
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Seminar Bot",
			TargetFPS: 60,
			FOV:       70,
		},
		Level:      "assets/levels/seminar.json",
		Materials:  "assets/materials.json",
		LogLevel:   "info",
		Controller: controller.DefaultConfig(),
		Physics:    PhysicsConfig{Radius: 0.3},
		Interaction: InteractionConfig{
			DoorDistance: 1,
			ItemDistance: 0.5,
		},
		Doors: DoorConfig{SwingAngle: 160, NoticeMs: 2000},
		// No sounds ship with the game; enable audio and list cues to hear any.
		Audio: AudioConfig{Cues: map[string]CueConfig{}},
	}
}

// LoadEnv reads .env style files into the process environment. Missing
// files are not an error; variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load returns the defaults overlaid with the file at path (if any) and the
// environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := decode(b, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}
	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func decode(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvLevel); v != "" {
		c.Level = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvSentryDSN); v != "" {
		c.SentryDSN = v
	}
}

func (c Config) Validate() error {
	if err := c.Controller.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FOV <= 0 || c.Window.FOV >= 180:
		return fmt.Errorf("%w: window.fov must be in (0,180), got %v", ErrInvalid, c.Window.FOV)
	case c.Level == "":
		return fmt.Errorf("%w: level path is empty", ErrInvalid)
	case c.Physics.Radius <= 0:
		return fmt.Errorf("%w: physics.radius must be positive, got %v", ErrInvalid, c.Physics.Radius)
	case c.Interaction.DoorDistance < 0 || c.Interaction.ItemDistance < 0:
		return fmt.Errorf("%w: interaction distances must not be negative", ErrInvalid)
	case c.Doors.SwingAngle <= 0 || c.Doors.SwingAngle > 360:
		return fmt.Errorf("%w: doors.swing_angle must be in (0,360], got %v", ErrInvalid, c.Doors.SwingAngle)
	case c.Doors.NoticeMs < 0:
		return fmt.Errorf("%w: doors.notice_ms must not be negative", ErrInvalid)
	}
	for name, cue := range c.Audio.Cues {
		if _, ok := audio.ParseCue(name); !ok {
			return fmt.Errorf("%w: unknown audio cue %q", ErrInvalid, name)
		}
		if cue.Volume < 0 || cue.Volume > 100 {
			return fmt.Errorf("%w: audio cue %q volume must be in [0,100], got %v", ErrInvalid, name, cue.Volume)
		}
	}
	return nil
}

// Logger builds the process logger at the configured level.
func (c Config) Logger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	return log
}
