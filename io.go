// File: lixenwraith/confstore/io.go
package confstore

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding used by Export.
type Format string

const (
	FormatConf Format = "conf"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatConf, FormatTOML, FormatYAML, FormatJSON:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown export format %q", name)
}

// Export writes the current options to w in the given format. Options are
// exported flat, keyed by their full names. The conf format reproduces
// key = value lines sorted by name.
func (s *Store) Export(w io.Writer, format Format) error {
	options := s.Snapshot()

	switch format {
	case FormatConf, "":
		names := make([]string, 0, len(options))
		for name := range options {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, err := fmt.Fprintf(w, "%s = %s\n", name, quoteValue(options[name])); err != nil {
				return fmt.Errorf("failed to write option %q: %w", name, err)
			}
		}
		return nil

	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(options); err != nil {
			return fmt.Errorf("failed to marshal options to TOML: %w", err)
		}
		return nil

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(options); err != nil {
			return fmt.Errorf("failed to marshal options to YAML: %w", err)
		}
		return encoder.Close()

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(options); err != nil {
			return fmt.Errorf("failed to marshal options to JSON: %w", err)
		}
		return nil
	}

	return fmt.Errorf("unknown export format %q", format)
}

// quoteValue quotes values that would be rejected or trimmed when read back.
func quoteValue(v string) string {
	if v == "" || v != strings.TrimSpace(v) {
		return `"` + v + `"`
	}
	return v
}
