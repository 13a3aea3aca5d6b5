package cascade

import "strconv"

// Config controls grid parsing, random generation and evaluation.
type Config struct {
	// Width and Height size randomly generated grids.
	Width  int
	Height int

	Seed    int64
	Density float64

	// Marker is the byte that denotes a present cell in text input.
	Marker byte
	// Strict rejects ragged input instead of padding short rows.
	Strict bool
	// Workers > 1 evaluates row bands concurrently.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   128,
		Height:  128,
		Seed:    1337,
		Density: 0.62,
		Marker:  DefaultMarker,
		Workers: 1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["marker"]; ok && len(v) == 1 {
		c.Marker = v[0]
	}
	if v, ok := cfg["strict"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Strict = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}
