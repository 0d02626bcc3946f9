package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// env bundles what every command needs: the engine config, the optional
// high-score store and a logger.
type env struct {
	cfg    config.FlappyConfig
	store  *storage.Store // Nil when the database could not be opened
	logger *log.Logger
	closer io.Closer
}

// newEnv loads the config and opens the store. Store failures are logged
// and the game continues with in-memory high scores.
func newEnv(logOut io.Writer) (*env, error) {
	e := &env{}

	if logOut == nil {
		f, err := openLogFile(flagLogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
			logOut = io.Discard
		} else {
			logOut = f
			e.closer = f
		}
	}
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	e.logger = log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		e.Close()
		return nil, err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			e.Close()
			return nil, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyFlappyPreset(&cfg, preset)
	}
	e.cfg = cfg

	store, err := storage.Open(flagDBPath)
	if err != nil {
		e.logger.Warn("high scores will not persist", "db", flagDBPath, "error", err)
	} else {
		e.store = store
	}

	return e, nil
}

// Close releases the store and the log file.
func (e *env) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Warn("cannot close database", "error", err)
		}
		e.store = nil
	}
	if e.closer != nil {
		_ = e.closer.Close()
		e.closer = nil
	}
}

// create builds a mode and the runtime config that binds its high-score key.
func (e *env) create(mode string, cfg config.FlappyConfig, width, height int) (registry.Game, core.RuntimeConfig, error) {
	game, err := registry.Create(mode, cfg)
	if err != nil {
		return nil, core.RuntimeConfig{}, err
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if e.store != nil {
		rc.HighScores = storage.NewHighScore(e.store, mode, e.logger)
	}
	return game, rc, nil
}

// sound opens the audio device, falling back to silence.
func (e *env) sound() *audio.SoundManager {
	sm := audio.NewSoundManager(0.5)
	if err := sm.Initialize(); err != nil {
		e.logger.Warn("audio unavailable, playing silently", "error", err)
	}
	return sm
}

func openLogFile(path string) (*os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	def := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return def.ScreenW, def.ScreenH
}

func requireMode(mode string) error {
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'flappy list' to see available modes", mode)
	}
	return nil
}
