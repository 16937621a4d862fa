package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config resolves per run from flags, SKOOMA_* environment variables, and
// an optional YAML config file, in that precedence order.
type config struct {
	Schema      string `mapstructure:"schema"`
	JSONDriver  string `mapstructure:"json_driver"`
	Language    string `mapstructure:"language"`
	Quiet       bool   `mapstructure:"quiet"`
	DetectTimes bool   `mapstructure:"detect_times"`
	Delimiter   string `mapstructure:"delimiter"`
}

func loadConfig(cmd *cobra.Command, path string) (*config, error) {
	v := viper.New()
	v.SetEnvPrefix("skooma")
	v.AutomaticEnv()

	v.SetDefault("json_driver", "encoding/json")
	v.SetDefault("language", "en")
	v.SetDefault("delimiter", ",")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	binds := map[string]string{
		"schema":       "schema",
		"json_driver":  "json-driver",
		"language":     "language",
		"quiet":        "quiet",
		"detect_times": "detect-times",
		"delimiter":    "delimiter",
	}
	for key, flag := range binds {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
