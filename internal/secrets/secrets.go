// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads per-machine settings that should stay out of the
// config file from a directory of plain-text files. The filename is the
// key and the trimmed contents are the value.
//
// Known keys: search-engine-id.
package secrets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// SearchEngineID is the file holding the cx identifier.
const SearchEngineID = "search-engine-id"

// Store maps key names to values.
type Store map[string]string

// Load reads every regular, non-hidden file in dir. A missing directory
// yields an empty Store. Unreadable files are logged and skipped.
func Load(ctx context.Context, dir string) (Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	log := zerolog.Ctx(ctx)
	s := make(Store)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("secret", name).Msg("Could not read secret")
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}
	return s, nil
}

// Get returns override when it is set, otherwise the stored value for key.
func (s Store) Get(key, override string) string {
	if override != "" {
		return override
	}
	return s[key]
}

// Keys returns the stored key names without their values.
func (s Store) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}
