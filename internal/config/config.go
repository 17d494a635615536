// Package config loads the benchmark configuration.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding configuration keys,
// e.g. TSTBENCH_BENCH_RUNS.
const EnvPrefix = "TSTBENCH"

// Config holds all configuration for the benchmark tool.
type Config struct {
	Words  WordsConfig  `mapstructure:"words"`
	Bench  BenchConfig  `mapstructure:"bench"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// WordsConfig describes the word list.
type WordsConfig struct {
	Path      string `mapstructure:"path"`
	KeepEmpty bool   `mapstructure:"keep_empty"`
}

// BenchConfig holds benchmark parameters.
type BenchConfig struct {
	Sizes     []int `mapstructure:"sizes"`
	Runs      int   `mapstructure:"runs"`
	ProbeSize int   `mapstructure:"probe_size"`
	HoldOut   int   `mapstructure:"hold_out"`
	Seed      int64 `mapstructure:"seed"`
}

// OutputConfig selects where results go.
type OutputConfig struct {
	CSV      string `mapstructure:"csv"`
	Language string `mapstructure:"language"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level   string `mapstructure:"level"`
	NoColor bool   `mapstructure:"no_color"`
}

// Load reads configuration from defaults, the optional file at configPath,
// environment variables and flags, later sources overriding earlier ones.
// flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"words":      "words.path",
	"keep-empty": "words.keep_empty",
	"sizes":      "bench.sizes",
	"runs":       "bench.runs",
	"probe":      "bench.probe_size",
	"hold-out":   "bench.hold_out",
	"seed":       "bench.seed",
	"csv":        "output.csv",
	"lang":       "output.language",
	"log-level":  "log.level",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag %s", name)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("words.path", "data/search_trees/corncob_lowercase.txt")
	v.SetDefault("words.keep_empty", false)

	v.SetDefault("bench.sizes", []int{100, 500, 1000, 5000, 10000, 20000, 30000, 40000, 50000})
	v.SetDefault("bench.runs", 300)
	v.SetDefault("bench.probe_size", 20)
	v.SetDefault("bench.hold_out", 100)
	v.SetDefault("bench.seed", 0)

	v.SetDefault("output.csv", "")
	v.SetDefault("output.language", "en")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.no_color", false)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Words.Path == "" {
		return errors.New("word list path is required")
	}
	if len(c.Bench.Sizes) == 0 {
		return errors.New("at least one tree size is required")
	}
	for _, s := range c.Bench.Sizes {
		if s <= 0 {
			return errors.Errorf("invalid tree size: %d", s)
		}
	}
	if c.Bench.Runs <= 0 {
		return errors.Errorf("invalid number of runs: %d", c.Bench.Runs)
	}
	if c.Bench.ProbeSize <= 0 {
		return errors.Errorf("invalid probe size: %d", c.Bench.ProbeSize)
	}
	if c.Bench.HoldOut < 0 {
		return errors.Errorf("invalid hold-out: %d", c.Bench.HoldOut)
	}
	return nil
}
