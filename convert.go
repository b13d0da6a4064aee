// FILE: lixenwraith/confstore/convert.go
package confstore

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Converter turns raw option strings into typed values and formats typed
// values back into strings for diagnostics.
type Converter interface {
	// Convert parses raw into the value pointed to by target.
	Convert(raw string, target any) error
	// Format returns the canonical string form of v.
	Format(v any) string
}

// decodeConverter converts through mapstructure's weakly typed decoding.
type decodeConverter struct{}

// NewConverter returns the default Converter. Integers are decimal unless
// written with an explicit 0x, 0o or 0b prefix, so "010" is ten. Out-of-range
// values fail. Durations use time.ParseDuration syntax and booleans accept
// the tokens understood by ParseBool.
func NewConverter() Converter {
	return decodeConverter{}
}

func (decodeConverter) Convert(raw string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("convert target must be non-nil pointer, got %T", target)
	}

	kind := rv.Elem().Kind()
	if kind == reflect.String {
		rv.Elem().SetString(raw)
		return nil
	}

	// Weak decoding turns "" into a zero value; an empty option is never a number or a flag
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("cannot convert empty string to %s", rv.Elem().Type())
	}

	if kind == reflect.Bool {
		b, err := ParseBool(raw)
		if err != nil {
			return err
		}
		rv.Elem().SetBool(b)
		return nil
	}

	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToIntegerHookFunc(),
	)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		DecodeHook:       hook,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(strings.TrimSpace(raw)); err != nil {
		return fmt.Errorf("cannot convert %q to %s: %w", raw, rv.Elem().Type(), err)
	}
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// stringToIntegerHookFunc parses integer options as decimal. Weak decoding
// alone would read a leading zero as octal and accept digit separators.
func stringToIntegerHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t == durationType {
			return data, nil
		}

		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			digits, base := integerBase(data.(string))
			return strconv.ParseInt(digits, base, t.Bits())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			digits, base := integerBase(data.(string))
			return strconv.ParseUint(digits, base, t.Bits())
		}
		return data, nil
	}
}

// integerBase strips an explicit 0x, 0o or 0b prefix from str and returns
// the remaining signed digits with their base. Anything else is base 10.
func integerBase(str string) (string, int) {
	str = strings.TrimSpace(str)
	sign := ""
	if str != "" && (str[0] == '+' || str[0] == '-') {
		sign, str = str[:1], str[1:]
	}
	if len(str) > 2 && str[0] == '0' && str[2] != '+' && str[2] != '-' {
		switch str[1] {
		case 'x', 'X':
			return sign + str[2:], 16
		case 'o', 'O':
			return sign + str[2:], 8
		case 'b', 'B':
			return sign + str[2:], 2
		}
	}
	return sign + str, 10
}

func (decodeConverter) Format(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ParseBool parses common boolean tokens, case-insensitively:
// 1/0, true/false, t/f, yes/no, y/n, on/off.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return false, fmt.Errorf("cannot convert string %q to bool", s)
}
