package springs

import "strconv"

// Config holds the tunables for the springs solver.
type Config struct {
	// Unfold is how many copies of each record part 2 joins together.
	Unfold int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Unfold: 5}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["unfold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Unfold = parsed
		}
	}
	return c
}
