// FILE: lixenwraith/confstore/store_test.go
package confstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newObservedStore returns a store whose log entries at warn level and
// above are captured.
func newObservedStore(opts ...StoreOption) (*Store, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return New(append([]StoreOption{WithLogger(zap.New(core))}, opts...)...), logs
}

// writeConfig writes content to name under dir and returns the path.
func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// storeWith returns a store holding exactly options.
func storeWith(options map[string]string, opts ...StoreOption) *Store {
	s := New(opts...)
	for name, value := range options {
		s.addKey(name, value, true)
	}
	return s
}

func TestStoreCreation(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		s := New()
		require.NotNil(t, s)
		assert.NotNil(t, s.options)
		assert.NotNil(t, s.Logger())
		assert.NotNil(t, s.converter)
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, "", s.Filename())
	})

	t.Run("Options", func(t *testing.T) {
		logger := zap.NewExample()
		s := New(WithLogger(logger), WithFilename("worldserver.conf"), WithLogger(nil), WithConverter(nil))
		assert.Same(t, logger, s.Logger())
		assert.NotNil(t, s.converter)
		assert.Equal(t, "worldserver.conf", s.Filename())
	})
}

func TestConfigureAndPaths(t *testing.T) {
	s := New()
	s.Configure("etc/worldserver.conf")
	assert.Equal(t, "etc/worldserver.conf", s.Filename())
	assert.Equal(t, "configs/", s.ConfigPath())

	require.True(t, s.LoadInitial(writeConfig(t, t.TempDir(), "a.conf", "x = 1\n")))
	assert.Equal(t, DefaultConfigPath, s.ConfigPath(), "config path is independent of loaded state")
}

func TestAddKey(t *testing.T) {
	t.Run("ReplaceOverwrites", func(t *testing.T) {
		s, logs := newObservedStore()
		s.addKey("name", "first", true)
		s.addKey("name", "second", true)
		assert.Equal(t, map[string]string{"name": "second"}, s.Snapshot())
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("NoReplaceKeepsExisting", func(t *testing.T) {
		s, logs := newObservedStore()
		s.addKey("name", "first", false)
		s.addKey("name", "second", false)
		assert.Equal(t, map[string]string{"name": "first"}, s.Snapshot())
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "first", logs.All()[0].ContextMap()["value"])
	})
}

func TestKeysByPrefix(t *testing.T) {
	s := storeWith(map[string]string{
		"db.host": "x",
		"db.port": "5",
		"other":   "y",
		"dbx":     "z",
	})

	t.Run("Prefix", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"db.host", "db.port"}, s.KeysByPrefix("db."))
	})

	t.Run("NotAPattern", func(t *testing.T) {
		assert.Empty(t, s.KeysByPrefix("db*"))
		assert.Empty(t, s.KeysByPrefix(".host"))
	})

	t.Run("EmptyPrefixReturnsAll", func(t *testing.T) {
		assert.Len(t, s.KeysByPrefix(""), 4)
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		assert.Empty(t, s.KeysByPrefix("DB."))
	})

	t.Run("EmptyStore", func(t *testing.T) {
		keys := New().KeysByPrefix("db.")
		assert.NotNil(t, keys)
		assert.Empty(t, keys)
	})
}

func TestSnapshotIsCopy(t *testing.T) {
	s := storeWith(map[string]string{"a": "1"})
	snap := s.Snapshot()
	snap["a"] = "changed"
	snap["b"] = "added"

	assert.Equal(t, map[string]string{"a": "1"}, s.Snapshot())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("b"))
	assert.Equal(t, 1, s.Len())
}

func TestIsAppConfig(t *testing.T) {
	tests := []struct {
		name string
		file string
		want bool
	}{
		{"WorldServer", "worldserver.conf", true},
		{"AuthServer", "authserver.conf", true},
		{"DistSuffix", "worldserver.conf.dist", true},
		{"WithDirectory", "/etc/app/configs/authserver.conf", true},
		{"Prefixed", "my-worldserver.conf", true},
		{"SharesCharacters", "a.conf", false},
		{"OtherConfig", "modules.conf", false},
		{"DirectoryOnly", "worldserver.conf/other.conf", false},
		{"Empty", "", false},
		{"WrongExtension", "worldserver.ini", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAppConfig(tt.file))
		})
	}
}
