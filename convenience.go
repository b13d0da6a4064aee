// File: lixenwraith/confstore/convenience.go
package confstore

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Quick creates a Store from an application config with a single call: the
// file's .dist variant is loaded first, then the file itself and any extra
// files are merged on top. Missing override files are not an error as long
// as the .dist file loads.
func Quick(logger *zap.Logger, appConfig string, extra ...string) (*Store, error) {
	store := New(WithLogger(logger), WithFilename(appConfig))
	if !store.LoadAppConfigs() {
		return store, fmt.Errorf("%w: %s", ErrLoadFailed, appConfig+DistSuffix)
	}

	for _, path := range append([]string{appConfig}, extra...) {
		if !store.LoadAdditionalFile(path) {
			store.logger.Info("override config not applied", zap.String("file", path))
		}
	}
	return store, nil
}

// MustQuick is like Quick but panics on error
func MustQuick(logger *zap.Logger, appConfig string, extra ...string) *Store {
	store, err := Quick(logger, appConfig, extra...)
	if err != nil {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return store
}

// Clone creates an independent copy of the store sharing its logger and converter.
func (s *Store) Clone() *Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := &Store{
		options:   make(map[string]string, len(s.options)),
		filename:  s.filename,
		logger:    s.logger,
		converter: s.converter,
	}
	for name, value := range s.options {
		clone.options[name] = value
	}
	return clone
}

// Debug returns a formatted string showing the filename and all options.
func (s *Store) Debug() string {
	options := s.Snapshot()
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Configuration Debug Info:\n")
	b.WriteString(fmt.Sprintf("File: %s\n", s.Filename()))
	b.WriteString(fmt.Sprintf("Config path: %s\n", s.ConfigPath()))
	b.WriteString(fmt.Sprintf("Options (%d):\n", len(names)))
	for _, name := range names {
		b.WriteString(fmt.Sprintf("  %s = %q\n", name, options[name]))
	}
	return b.String()
}
