package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"

	"seminarbot/internal/config"
	"seminarbot/internal/game"
	"seminarbot/internal/level"
)

const defaultConfigPath = "seminarbot.yaml"

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", "", "path to the YAML config (default $"+config.EnvConfig+" or "+defaultConfigPath+")")
	levelPath := flag.String("level", "", "level file, overrides the config")
	debug := flag.Bool("debug", false, "start with the debug overlay and debug logging")
	flag.Parse()

	boot := logrus.New()
	if err := config.LoadEnv(); err != nil {
		boot.WithError(err).Fatal("could not read .env")
	}

	cfg, err := config.Load(resolveConfigPath(*configPath))
	if err != nil {
		boot.WithError(err).Fatal("could not load config")
	}
	if *levelPath != "" {
		cfg.Level = *levelPath
	}
	if *debug {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	log := cfg.Logger(os.Stderr)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			log.WithError(err).Warn("sentry disabled")
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	lvl, err := level.Load(cfg.Level)
	if err != nil {
		fatal(log, err, "could not load level")
	}

	g, err := game.New(cfg, lvl, log)
	if err != nil {
		fatal(log, err, "could not start game")
	}
	defer g.Close()
	g.DebugMode = *debug

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("game loop panic: %v", r)
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("level", lvl.Name)
			})
			hub.Recover(r)
			hub.Flush(5 * time.Second)
			panic(r)
		}
	}()

	log.WithField("level", cfg.Level).Info("starting")
	g.Run()
}

// resolveConfigPath prefers the flag, then the environment, then the
// default file if it exists. An empty result means built-in defaults.
func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(config.EnvConfig); v != "" {
		return v
	}
	if _, err := os.Stat(defaultConfigPath); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return defaultConfigPath
}

// fatal reports err to Sentry (when configured) and exits.
func fatal(log logrus.FieldLogger, err error, msg string) {
	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
	log.WithError(err).Fatal(msg)
}
