// FILE: lixenwraith/confstore/loader.go
package confstore

import (
	"go.uber.org/zap"
)

// LoadInitial clears every stored option and loads path. On failure the
// store is left empty and false is returned; callers must check the result.
func (s *Store) LoadInitial(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.options)
	return s.loadFile(path)
}

// LoadAdditionalFile merges path into the current options. Options from path
// replace existing ones with the same name. On failure the current options
// are kept and false is returned.
func (s *Store) LoadAdditionalFile(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadFile(path)
}

// LoadAppConfigs performs an initial load of the configured filename with
// the .dist suffix appended.
func (s *Store) LoadAppConfigs() bool {
	return s.LoadInitial(s.Filename() + DistSuffix)
}

// loadFile parses path into a temporary map and merges it only when the
// whole file parsed. Caller must hold s.mu.
func (s *Store) loadFile(path string) bool {
	parsed, err := ParseFile(path, s.logger)
	if err != nil {
		s.logger.Error("failed to load config file",
			zap.String("file", path),
			zap.Error(err))
		return false
	}

	for name, value := range parsed {
		s.addKey(name, value, true)
	}

	s.logger.Debug("config file loaded",
		zap.String("file", path),
		zap.Int("options", len(parsed)))
	return true
}
