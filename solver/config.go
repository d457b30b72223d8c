package solver

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// Config holds a run's mesh, timing, and dispatch configuration, read from
// a JSON run-configuration file.
type Config struct {
	Ni    int     `json:"ni"`
	Nj    int     `json:"nj"`
	Dx    float64 `json:"dx"`
	Dy    float64 `json:"dy"`
	Order int     `json:"order"`

	CFL      float64 `json:"cfl"`
	TFinal   float64 `json:"tfinal"`
	OutEvery int     `json:"outEvery"`

	Mode    string `json:"mode"`
	DirOut  string `json:"dirout"`
	Periodc bool   `json:"periodic"`
}

// ParseMode maps a config Mode string to a Mode value.
func (c Config) ParseMode() (Mode, error) {
	switch c.Mode {
	case "", "cpu":
		return ModeCPU, nil
	case "omp":
		return ModeOMP, nil
	case "gpu":
		return ModeGPU, nil
	default:
		return ModeCPU, chk.Err("unknown execution mode %q", c.Mode)
	}
}

// LoadConfig reads and validates a JSON run-configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, chk.Err("cannot read config file %q: %v", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, chk.Err("cannot parse config file %q: %v", path, err)
	}
	if cfg.Dx == 0 && cfg.Dy != 0 {
		cfg.Dx = cfg.Dy
	}
	if cfg.Dy == 0 && cfg.Dx != 0 {
		cfg.Dy = cfg.Dx
	}
	return cfg, nil
}
