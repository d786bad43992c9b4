package util

import (
	"fmt"
	"strings"
	"time"
)

// Duration is a time.Duration that marshals to and from its string
// form, so config files can say "5s" or "1m30s".
type Duration time.Duration

// UnmarshalText ...
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration: cannot parse %q: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText ...
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std ...
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
