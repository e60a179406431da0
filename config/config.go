// Package config loads the configuration of the pfold command from flags,
// environment variables and defaults.
package config

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/exascience/pfold"
)

const (
	// EnvVarPrefix prefixes the environment variables, e.g. PFOLD_WORKERS.
	EnvVarPrefix = "pfold"

	KeyLength  = "length"
	KeyInitial = "initial"
	KeyWorkers = "workers"
	KeyVerbose = "verbose"
)

// Configuration describes a parallel sum over the sequence [0, Length).
type Configuration struct {
	Length  int   `mapstructure:"length"`
	Initial int64 `mapstructure:"initial"`
	// Workers is the worker count hint. 0 selects pfold.DefaultWorkers.
	Workers int  `mapstructure:"workers"`
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfiguration sums the first 100 natural numbers with as many
// workers as the host has logical CPUs.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Length:  100,
		Initial: 0,
		Workers: pfold.HardwareConcurrency(),
	}
}

func (cfg *Configuration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Length, validation.Min(0)),
		validation.Field(&cfg.Workers, validation.Min(0)),
	)
}

// RegisterFlags adds the command line flags of the configuration to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	d := DefaultConfiguration()
	flags.Int(KeyLength, d.Length, "number of elements of the sequence [0, length)")
	flags.Int64(KeyInitial, d.Initial, "initial value of the sum")
	flags.Int(KeyWorkers, d.Workers, "worker count hint (0 selects the default)")
	flags.BoolP(KeyVerbose, "v", d.Verbose, "log partitioning decisions")
}

// Load reads the configuration from viperSession. Explicitly set flags take
// precedence over environment variables, which take precedence over
// DefaultConfiguration. flags may be nil.
func Load(viperSession *viper.Viper, flags *pflag.FlagSet) (cfg *Configuration, err error) {
	var defaults map[string]interface{}
	if err = mapstructure.Decode(DefaultConfiguration(), &defaults); err != nil {
		return
	}
	for key, value := range defaults {
		viperSession.SetDefault(key, value)
	}
	viperSession.SetEnvPrefix(EnvVarPrefix)
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperSession.AutomaticEnv()
	if flags != nil {
		if err = viperSession.BindPFlags(flags); err != nil {
			return
		}
	}
	cfg = &Configuration{}
	if err = viperSession.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct, %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", pfold.ErrInvalid, err)
	}
	return
}
