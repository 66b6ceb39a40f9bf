package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/blocky/internal/core"
	"github.com/vovakirdan/blocky/internal/storage"
)

// runtimeConfig combines the global flags with the terminal size. Unknown
// sizes fall back to core defaults.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	} else {
		logger.Debug("terminal size unknown", "error", err)
	}
	return cfg.WithDefaults()
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	logger.Debug("opened scores database", "path", flagDBPath)
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing scores database", "error", err)
	}
}
