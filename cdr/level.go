package cdr

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinLevel is the lowest accepted compression level. It matches nothing,
	// so every pixel becomes its own record.
	MinLevel = -1
	// MaxLevel is the highest accepted compression level, just above the
	// largest possible RGB distance.
	MaxLevel = 442
)

// Level is a parsed compression level. A level outside [MinLevel, MaxLevel]
// is still usable: Warning is set and Threshold keeps the given value.
type Level struct {
	Threshold int
	Warning   error
}

// ParseLevel parses a compression level. Only a non-integer is an error.
func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Level{}, fmt.Errorf("%w: %q", ErrLevelNotInteger, s)
	}

	lvl := Level{Threshold: n}
	if n < MinLevel || n > MaxLevel {
		lvl.Warning = fmt.Errorf("%w: %d not in [%d, %d]", ErrLevelOutOfRange, n, MinLevel, MaxLevel)
	}
	return lvl, nil
}
