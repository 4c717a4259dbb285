package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config holds the resolved settings of a build.
// Precedence: flag, CSV2SLIDES_* environment variable, config file, default.
type config struct {
	CSVInput      string `mapstructure:"csv_input"`
	CSVRaw        string `mapstructure:"csv_raw"`
	Semantics     string `mapstructure:"semantics"`
	Slides        string `mapstructure:"slides"`
	Template      string `mapstructure:"template"`
	SkipFramework bool   `mapstructure:"skip-framework"`
	FrameworkRepo string `mapstructure:"framework-repo"`
	FrameworkRev  string `mapstructure:"framework-rev"`
	LogLevel      string `mapstructure:"log-level"`
}

func loadConfig(cmd *cobra.Command) (*config, error) {
	v := viper.New()

	v.SetEnvPrefix("CSV2SLIDES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("csv2slides")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
