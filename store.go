// FILE: lixenwraith/confstore/store.go
package confstore

import (
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// DefaultConfigPath is the directory configuration files are expected in.
const DefaultConfigPath = "configs/"

// DistSuffix is appended to the primary filename by LoadAppConfigs.
const DistSuffix = ".dist"

// appConfigNames are the base names of recognised application config files.
var appConfigNames = []string{"authserver.conf", "worldserver.conf"}

// Getter is the read surface of a Store handed to consumers.
type Getter interface {
	String(name, def string) string
	Bool(name string, def bool) bool
	Int(name string, def int) int
	Int64(name string, def int64) int64
	Float64(name string, def float64) float64
	KeysByPrefix(prefix string) []string
}

// Store holds configuration options as raw strings keyed by option name.
// A single mutex guards the options map and the filename; every public
// operation holds it for its full duration.
type Store struct {
	mu       sync.Mutex
	options  map[string]string
	filename string

	logger    *zap.Logger
	converter Converter
}

// StoreOption configures a Store at construction time.
type StoreOption func(*Store)

// WithLogger sets the logger diagnostics are written to. A nil logger is ignored.
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithConverter replaces the string-to-type converter used by typed lookups.
func WithConverter(c Converter) StoreOption {
	return func(s *Store) {
		if c != nil {
			s.converter = c
		}
	}
}

// WithFilename presets the primary configuration filename.
func WithFilename(path string) StoreOption {
	return func(s *Store) {
		s.filename = path
	}
}

// New creates an empty Store.
func New(opts ...StoreOption) *Store {
	s := &Store{
		options:   make(map[string]string),
		logger:    zap.NewNop(),
		converter: NewConverter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Configure records the primary configuration filename.
func (s *Store) Configure(path string) {
	s.mu.Lock()
	s.filename = path
	s.mu.Unlock()

	if !IsAppConfig(path) {
		s.logger.Debug("configured file is not a recognised application config",
			zap.String("file", path))
	}
}

// Filename returns the path set by Configure.
func (s *Store) Filename() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filename
}

// ConfigPath returns the directory configuration files live in. It is a
// constant and does not depend on loaded state.
func (s *Store) ConfigPath() string {
	return DefaultConfigPath
}

// Logger returns the logger the store reports diagnostics to.
func (s *Store) Logger() *zap.Logger {
	return s.logger
}

// KeysByPrefix returns every option name starting with prefix, in no
// particular order.
func (s *Store) KeysByPrefix(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0)
	for name := range s.options {
		if strings.HasPrefix(name, prefix) {
			keys = append(keys, name)
		}
	}
	return keys
}

// Has reports whether an option is present.
func (s *Store) Has(name string) bool {
	_, ok := s.lookup(name)
	return ok
}

// Len returns the number of stored options.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.options)
}

// Snapshot returns a copy of all stored options.
func (s *Store) Snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]string, len(s.options))
	for name, value := range s.options {
		out[name] = value
	}
	return out
}

// lookup returns the raw value for name.
func (s *Store) lookup(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.options[name]
	return value, ok
}

// addKey merges one option into the live map. Caller must hold s.mu.
// With replace unset an existing value is kept and the conflict logged.
func (s *Store) addKey(name, value string, replace bool) {
	if existing, ok := s.options[name]; ok && !replace {
		s.logger.Warn("option already exists, keeping current value",
			zap.String("option", name),
			zap.String("value", existing))
		return
	}
	s.options[name] = value
}

// IsAppConfig reports whether fileName names one of the application
// config files, with or without the .dist suffix.
func IsAppConfig(fileName string) bool {
	base := strings.TrimSuffix(filepath.Base(fileName), DistSuffix)
	for _, name := range appConfigNames {
		if strings.HasSuffix(base, name) {
			return true
		}
	}
	return false
}
