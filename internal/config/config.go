package config

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	defaults = map[string]interface{}{
		"verbose":           false,
		"validators":        5,
		"rounds":            5,
		"seed":              int64(0),
		"max_block_tx":      5,
		"stake_min":         10.0,
		"stake_max":         1000.0,
		"rounds_per_second": 1.0,
	}
)

func init() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
}

// Config holds the simulation parameters. Seed 0 means seed from the wall
// clock; any other value makes the whole run reproducible.
type Config struct {
	Validators      int
	Rounds          uint64
	Seed            int64
	MaxBlockTx      int
	StakeMin        float64
	StakeMax        float64
	RoundsPerSecond float64
}

func GetConfig() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetConfigName("stakesim")
	viper.AddConfigPath("$HOME/.stakesim")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("STAKESIM")
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "reading config file")
		}
		// Config file not found; defaults and flags apply
	}

	c := &Config{
		Validators:      viper.GetInt("validators"),
		Rounds:          viper.GetUint64("rounds"),
		Seed:            viper.GetInt64("seed"),
		MaxBlockTx:      viper.GetInt("max_block_tx"),
		StakeMin:        viper.GetFloat64("stake_min"),
		StakeMax:        viper.GetFloat64("stake_max"),
		RoundsPerSecond: viper.GetFloat64("rounds_per_second"),
	}

	if c.Validators <= 0 {
		return nil, errors.New("validators must be positive")
	}
	if c.StakeMin < 0 || c.StakeMax < c.StakeMin {
		return nil, errors.New("stake range is invalid")
	}

	if viper.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.WithField("level", "debug").Debug("setting log level")
	}

	return c, nil
}
