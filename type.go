// File: lixenwraith/confstore/type.go
package confstore

import (
	"reflect"
	"time"

	"go.uber.org/zap"
)

// Value is the set of types an option can be read as.
type Value interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Option returns the option name converted to T, or def when it is missing
// or cannot be converted. Both cases are logged.
func Option[T Value](s *Store, name string, def T) T {
	return GetOption(s, name, def, true)
}

// GetOption returns the option name converted to T, falling back to def
// when the option is missing or its value does not convert. logOnFailure
// controls whether the fallback is logged.
//
// String types are returned as stored. Boolean types fall back through the
// literal "1"/"0" form of def and are parsed with ParseBool.
func GetOption[T Value](s *Store, name string, def T, logOnFailure bool) T {
	switch reflect.TypeOf(def).Kind() {
	case reflect.String:
		raw := s.stringOption(name, s.converter.Format(def), logOnFailure)
		var out T
		reflect.ValueOf(&out).Elem().SetString(raw)
		return out
	case reflect.Bool:
		return boolOption(s, name, def, logOnFailure)
	}

	raw, ok := s.lookup(name)
	if !ok {
		if logOnFailure {
			s.logMissing(name, s.converter.Format(def))
		}
		return def
	}

	var out T
	if err := s.converter.Convert(raw, &out); err != nil {
		if logOnFailure {
			s.logBadValue(name, raw, s.converter.Format(def), err)
		}
		return def
	}
	return out
}

func boolOption[T Value](s *Store, name string, def T, logOnFailure bool) T {
	defBool := reflect.ValueOf(def).Bool()
	defRaw := "0"
	if defBool {
		defRaw = "1"
	}

	raw := s.stringOption(name, defRaw, logOnFailure)
	parsed, err := ParseBool(raw)
	if err != nil {
		if logOnFailure {
			s.logBadValue(name, raw, s.converter.Format(defBool), err)
		}
		return def
	}

	var out T
	reflect.ValueOf(&out).Elem().SetBool(parsed)
	return out
}

// stringOption returns the raw value of name, or def when it is missing.
func (s *Store) stringOption(name, def string, logOnFailure bool) string {
	raw, ok := s.lookup(name)
	if !ok {
		if logOnFailure {
			s.logMissing(name, def)
		}
		return def
	}
	return raw
}

func (s *Store) logMissing(name, def string) {
	s.logger.Error("missing option in config, using default",
		zap.String("option", name),
		zap.String("default", def),
		zap.String("suggested", name+" = "+def))
}

func (s *Store) logBadValue(name, raw, def string, err error) {
	s.logger.Error("bad value defined for option, using default",
		zap.String("option", name),
		zap.String("value", raw),
		zap.String("default", def),
		zap.Error(err))
}

// String retrieves a string option.
func (s *Store) String(name, def string) string {
	return Option(s, name, def)
}

// Bool retrieves a boolean option.
func (s *Store) Bool(name string, def bool) bool {
	return Option(s, name, def)
}

// Int retrieves an int option.
func (s *Store) Int(name string, def int) int {
	return Option(s, name, def)
}

// Int64 retrieves an int64 option.
func (s *Store) Int64(name string, def int64) int64 {
	return Option(s, name, def)
}

// Uint32 retrieves a uint32 option.
func (s *Store) Uint32(name string, def uint32) uint32 {
	return Option(s, name, def)
}

// Float64 retrieves a float64 option.
func (s *Store) Float64(name string, def float64) float64 {
	return Option(s, name, def)
}

// Duration retrieves a duration option written in time.ParseDuration syntax.
func (s *Store) Duration(name string, def time.Duration) time.Duration {
	return Option(s, name, def)
}
