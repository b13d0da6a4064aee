// FILE: lixenwraith/confstore/decode.go
package confstore

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DecodeTagName is the struct tag Decode matches option names against.
const DecodeTagName = "conf"

// Decode copies every option whose name starts with prefix into target, a
// pointer to a struct or map. The prefix is stripped from option names
// before they are matched against `conf` struct tags, so with prefix "db."
// the option "db.host" fills the field tagged `conf:"host"`. Values are
// converted with weak typing; durations, comma separated slices, IPs,
// CIDRs and URLs are understood.
func (s *Store) Decode(prefix string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	section := make(map[string]any)
	s.mu.Lock()
	for name, value := range s.options {
		if key, ok := strings.CutPrefix(name, prefix); ok && key != "" {
			section[key] = value
		}
	}
	s.mu.Unlock()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          DecodeTagName,
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(section); err != nil {
		return fmt.Errorf("decode failed for prefix %q: %w", prefix, err)
	}
	return nil
}

// decodeHook returns the composite decode hook for option values.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToBoolHookFunc(),
		stringToNetIPHookFunc(),
		stringToNetIPNetHookFunc(),
		stringToURLHookFunc(),

		mapstructure.StringToTimeDurationHookFunc(),
		stringToIntegerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// stringToBoolHookFunc applies ParseBool so struct fields accept the same
// tokens as Store.Bool.
func stringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		return ParseBool(data.(string))
	}
}

// Option values are single lines of up to MaxLineSize bytes. The caps
// below reject anything longer than the textual form of the target before
// handing it to the net and url parsers.
const (
	maxIPLength   = len("ffff:ffff:ffff:ffff:ffff:ffff:255.255.255.255")
	maxCIDRLength = maxIPLength + len("/128")
	maxURLLength  = 2048
)

var (
	ipType    = reflect.TypeOf(net.IP{})
	ipNetType = reflect.TypeOf(net.IPNet{})
	urlType   = reflect.TypeOf(url.URL{})
)

// stringTarget reports whether a string is being decoded into want or *want.
func stringTarget(f, t, want reflect.Type) (ptr, ok bool) {
	if f.Kind() != reflect.String {
		return false, false
	}
	if t.Kind() == reflect.Ptr {
		return true, t.Elem() == want
	}
	return false, t == want
}

// stringToNetIPHookFunc decodes options such as "bind.address = 10.0.0.1".
func stringToNetIPHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if ptr, ok := stringTarget(f, t, ipType); !ok || ptr {
			return data, nil
		}

		str := data.(string)
		if len(str) > maxIPLength {
			return nil, fmt.Errorf("IP option too long: %d bytes", len(str))
		}
		ip := net.ParseIP(str)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address %q", str)
		}
		return ip, nil
	}
}

// stringToNetIPNetHookFunc decodes CIDR options into net.IPNet or *net.IPNet.
func stringToNetIPNetHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		ptr, ok := stringTarget(f, t, ipNetType)
		if !ok {
			return data, nil
		}

		str := data.(string)
		if len(str) > maxCIDRLength {
			return nil, fmt.Errorf("CIDR option too long: %d bytes", len(str))
		}
		_, ipnet, err := net.ParseCIDR(str)
		if err != nil {
			return nil, fmt.Errorf("invalid CIDR %q: %w", str, err)
		}
		if ptr {
			return ipnet, nil
		}
		return *ipnet, nil
	}
}

// stringToURLHookFunc decodes URL options into url.URL or *url.URL.
func stringToURLHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		ptr, ok := stringTarget(f, t, urlType)
		if !ok {
			return data, nil
		}

		str := data.(string)
		if len(str) > maxURLLength {
			return nil, fmt.Errorf("URL option too long: %d bytes", len(str))
		}
		u, err := url.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("invalid URL %q: %w", str, err)
		}
		if ptr {
			return u, nil
		}
		return *u, nil
	}
}
