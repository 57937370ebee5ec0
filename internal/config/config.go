package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"
)

// Error is the class of every configuration error.
var Error = errs.Class("config")

type Config struct {
	Log      Log      `toml:"log"`
	Dispatch Dispatch `toml:"dispatch"`
}

type Log struct {
	Debug bool `toml:"debug"`
}

// Dispatch configures the dispatcher comparison.
type Dispatch struct {
	Tasks            int      `toml:"tasks"`
	PoolSize         int      `toml:"pool_size"`
	MinSleep         Duration `toml:"min_sleep"`
	MaxSleep         Duration `toml:"max_sleep"`
	Timeout          Duration `toml:"timeout"`
	ProcessRemaining bool     `toml:"process_remaining"`
}

// Duration decodes TOML strings such as "250ms" or "1m30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() Config {
	return Config{
		Dispatch: Dispatch{
			Tasks:            10,
			PoolSize:         64,
			MinSleep:         Duration{100 * time.Millisecond},
			MaxSleep:         Duration{500 * time.Millisecond},
			ProcessRemaining: true,
		},
	}
}

func (d Dispatch) Validate() error {
	switch {
	case d.Tasks < 1:
		return Error.New("tasks must be positive, got %d", d.Tasks)
	case d.PoolSize < 1:
		return Error.New("pool_size must be positive, got %d", d.PoolSize)
	case d.MinSleep.Duration < 0:
		return Error.New("min_sleep must not be negative, got %s", d.MinSleep)
	case d.MaxSleep.Duration < d.MinSleep.Duration:
		return Error.New("max_sleep %s is below min_sleep %s", d.MaxSleep, d.MinSleep)
	case d.Timeout.Duration < 0:
		return Error.New("timeout must not be negative, got %s", d.Timeout)
	}
	return nil
}

// Parse decodes input over Default. Unknown keys are rejected.
func Parse(input string) (Config, error) {
	cfg := Default()

	md, err := toml.Decode(input, &cfg)
	if err != nil {
		return Config{}, Error.Wrap(err)
	}

	if unknown := md.Undecoded(); len(unknown) > 0 {
		return Config{}, Error.New("unknown keys %v", unknown)
	}

	if err := cfg.Dispatch.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path. An empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, Error.Wrap(err)
	}

	return Parse(string(raw))
}
