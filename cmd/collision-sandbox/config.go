package main

import (
	"os"

	"github.com/lixenwraith/voidfront/toml"
)

// Config is the sandbox's tunable parameters, loaded from a TOML file so
// grid geometry and field density can be tweaked without a rebuild.
// Grounded on input/keyconfig.go's toml.Unmarshal usage.
type Config struct {
	CellSize  int     `toml:"cell_size"`
	CellCount int     `toml:"cell_count"`
	BodyCount int     `toml:"body_count"`
	Seed      int64   `toml:"seed"`
	Radius    float64 `toml:"radius"`
	Field     string  `toml:"field"` // "poisson" or "cluster"
	TickHz    float64 `toml:"tick_hz"`
}

func defaultConfig() Config {
	return Config{
		CellSize:  256,
		CellCount: 64,
		BodyCount: 300,
		Seed:      1,
		Radius:    6,
		Field:     "cluster",
		TickHz:    20,
	}
}

// loadConfig reads path if present, overlaying its fields onto the
// defaults. A missing file is not an error; an unparsable one is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
