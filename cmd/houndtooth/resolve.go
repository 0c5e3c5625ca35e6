package main

import (
	"fmt"
	"os"

	"houndtooth/internal/config"
	"houndtooth/internal/log"
	"houndtooth/internal/weave"
)

const (
	separator = "="
	// commentPattern drops blank lines and lines starting with '#' in
	// config files.
	commentPattern = `\s*(#.*)?`
)

// resolveSpec loads the defaults, then the config file (when set), then args,
// and resolves the weave parameters from the result.
func resolveSpec(configPath string, args []string) (weave.Spec, error) {
	logger := log.WithComponent("config")

	store := config.NewStore()
	if err := store.Parse(weave.DefaultEntries(), separator); err != nil {
		return weave.Spec{}, err
	}

	if configPath != "" {
		if err := loadFile(store, configPath); err != nil {
			return weave.Spec{}, err
		}
		logger.Debug().Str("path", configPath).Msg("config file applied")
	}

	if err := store.Parse(args, separator); err != nil {
		return weave.Spec{}, err
	}

	for _, key := range store.Keys() {
		v, _ := store.String(key)
		logger.Trace().Str("key", key).Str("value", v).Msg("entry")
	}
	return weave.FromStore(store)
}

func loadFile(store *config.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	defer f.Close()

	if err := store.SetSkipPattern(commentPattern); err != nil {
		return err
	}
	defer store.ClearSkipPattern()

	if err := store.ParseReader(f, separator); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}
