// FILE: lixenwraith/confstore/parser.go
package confstore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// MaxLineSize bounds a single configuration line. Longer lines fail the file
// with ErrReadFailure.
const MaxLineSize = 1 << 20

var (
	// ErrFileUnavailable is returned when a configuration file cannot be opened.
	ErrFileUnavailable = errors.New("config file unavailable")
	// ErrReadFailure is returned when reading a file fails before end of file.
	ErrReadFailure = errors.New("config file read failure")
	// ErrEmptyFile is returned when a file yields no usable options.
	ErrEmptyFile = errors.New("config file has no options")
)

// ParseError describes a structural failure while parsing a configuration file.
type ParseError struct {
	Path string
	Line int // 0 when the failure is not tied to a line
	Err  error
	// Cause is the underlying I/O error, if any.
	Cause error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v: '%s'", e.Err, e.Path)
	if e.Line > 0 {
		msg = fmt.Sprintf("%s line %d", msg, e.Line)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is/As.
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// ParseFile reads a key = value file into a fresh map. Malformed and
// duplicate lines are logged and skipped; only an unreadable or empty file
// returns an error. A nil logger discards warnings.
func ParseFile(path string, logger *zap.Logger) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: ErrFileUnavailable, Cause: err}
	}
	defer file.Close()

	return Parse(file, path, logger)
}

// Parse reads key = value lines from r. name identifies the input in errors
// and log entries.
func Parse(r io.Reader, name string, logger *zap.Logger) (map[string]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	options := make(map[string]string)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), MaxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		key, value, kind := parseLine(scanner.Text())
		switch kind {
		case lineSkip:
			continue
		case lineMalformed:
			logger.Warn("malformed config line, skipping",
				zap.String("file", name),
				zap.Int("line", lineNumber))
			continue
		}

		// First occurrence within one file wins
		if _, exists := options[key]; exists {
			logger.Warn("duplicate option in config file, skipping",
				zap.String("file", name),
				zap.Int("line", lineNumber),
				zap.String("option", key))
			continue
		}

		options[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Path: name, Line: lineNumber + 1, Err: ErrReadFailure, Cause: err}
	}

	if len(options) == 0 {
		return nil, &ParseError{Path: name, Err: ErrEmptyFile}
	}

	return options, nil
}

type lineKind int

const (
	lineSkip lineKind = iota // blank, comment or section header
	lineOption
	lineMalformed
)

// parseLine classifies one raw line and, for option lines, returns the
// trimmed key and the trimmed value with every quote character removed.
func parseLine(raw string) (key, value string, kind lineKind) {
	line := strings.TrimSpace(raw)
	if line == "" || line[0] == '#' || line[0] == '[' {
		return "", "", lineSkip
	}

	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}

	before, after, found := strings.Cut(line, "=")
	key = strings.TrimSpace(before)
	value = strings.TrimSpace(after)
	if !found || key == "" || value == "" {
		return "", "", lineMalformed
	}

	return key, strings.ReplaceAll(value, `"`, ""), lineOption
}
