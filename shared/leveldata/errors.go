package leveldata

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed marks level text or TMX data that cannot be turned into a grid.
	ErrMalformed = errors.New("malformed level")
	// ErrNoPlayerStart marks a level with no player start marker.
	ErrNoPlayerStart = errors.New("no player start")
)

// ConfigError is a load-time level error. It is fatal to startup.
type ConfigError struct {
	Source string // file name or level name
	Line   int    // 1-based; 0 when the error is not tied to a line
	Msg    string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %v", e.Source, e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Source, e.Msg, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func malformed(src string, line int, format string, args ...any) *ConfigError {
	return &ConfigError{Source: src, Line: line, Msg: fmt.Sprintf(format, args...), Err: ErrMalformed}
}
