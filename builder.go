// File: lixenwraith/confstore/builder.go
package confstore

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrLoadFailed is returned by Build when a configuration file failed to load.
	ErrLoadFailed = errors.New("config load failed")
	// ErrMissingOption is returned by Require when options are absent.
	ErrMissingOption = errors.New("missing required option")
)

// ValidatorFunc defines the signature for a function that can validate a Store.
// It receives the fully loaded *Store and should return an error if validation fails.
type ValidatorFunc func(s *Store) error

// Builder provides a fluent interface for building a loaded Store
type Builder struct {
	opts            []StoreOption
	file            string
	dist            bool
	additionalFiles []string
	validators      []ValidatorFunc
}

// NewBuilder creates a new store builder
func NewBuilder() *Builder {
	return &Builder{
		validators: make([]ValidatorFunc, 0),
	}
}

// WithLogger sets the logger of the built store
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.opts = append(b.opts, WithLogger(logger))
	return b
}

// WithConverter sets the converter of the built store
func (b *Builder) WithConverter(c Converter) *Builder {
	b.opts = append(b.opts, WithConverter(c))
	return b
}

// WithFile sets the primary configuration file, loaded with LoadInitial
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	b.dist = false
	return b
}

// WithAppConfig sets the primary configuration file and loads it through
// LoadAppConfigs, i.e. from path + ".dist"
func (b *Builder) WithAppConfig(path string) *Builder {
	b.file = path
	b.dist = true
	return b
}

// WithAdditionalFiles appends files merged after the primary file, in order.
// Later files override earlier ones.
func (b *Builder) WithAdditionalFiles(paths ...string) *Builder {
	b.additionalFiles = append(b.additionalFiles, paths...)
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Store and loads every configured file. Load failures
// do not stop later files from loading; they are joined and returned
// wrapped in ErrLoadFailed together with the partially loaded store.
func (b *Builder) Build() (*Store, error) {
	store := New(append([]StoreOption{WithFilename(b.file)}, b.opts...)...)

	var loadErrors []error
	if b.file != "" {
		var loaded bool
		primary := b.file
		if b.dist {
			primary += DistSuffix
			loaded = store.LoadAppConfigs()
		} else {
			loaded = store.LoadInitial(primary)
		}
		if !loaded {
			loadErrors = append(loadErrors, fmt.Errorf("%w: %s", ErrLoadFailed, primary))
		}
	}

	for _, path := range b.additionalFiles {
		if !store.LoadAdditionalFile(path) {
			loadErrors = append(loadErrors, fmt.Errorf("%w: %s", ErrLoadFailed, path))
		}
	}

	if len(loadErrors) > 0 {
		return store, errors.Join(loadErrors...)
	}

	for _, validator := range b.validators {
		if err := validator(store); err != nil {
			return store, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return store, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Store {
	store, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return store
}

// Require returns a validator checking that all named options are present.
func Require(names ...string) ValidatorFunc {
	return func(s *Store) error {
		var missing []string
		for _, name := range names {
			if !s.Has(name) {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %s", ErrMissingOption, strings.Join(missing, ", "))
		}
		return nil
	}
}
