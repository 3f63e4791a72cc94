package platform

import "strconv"

// Config holds the tunables for the platform solver.
type Config struct {
	// Cycles is the number of spin cycles part 2 runs.
	Cycles int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Cycles: 1_000_000_000}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cycles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Cycles = parsed
		}
	}
	return c
}
