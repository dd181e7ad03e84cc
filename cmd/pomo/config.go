package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hammamikhairi/pomo/internal/display"
	"github.com/hammamikhairi/pomo/internal/domain"
	"github.com/hammamikhairi/pomo/internal/timer"
)

const (
	defaultTickInterval    = display.DefaultTickInterval
	defaultCountdownLength = timer.DefaultDuration
	defaultLogLevel        = "normal"
)

// appConfig holds the settings that can come from the config file or
// POMO_* environment variables. Flags override them in main.
type appConfig struct {
	TickInterval    time.Duration `mapstructure:"tick-interval"`
	DefaultDuration time.Duration `mapstructure:"default-duration"`
	Mute            bool          `mapstructure:"mute"`
	LogLevel        string        `mapstructure:"log-level"`
	LogFile         string        `mapstructure:"log-file"`
	ConfigPath      string        `mapstructure:"-"`
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("POMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("tick-interval", defaultTickInterval)
	v.SetDefault("default-duration", defaultCountdownLength)
	v.SetDefault("mute", false)
	v.SetDefault("log-level", defaultLogLevel)
	v.SetDefault("log-file", filepath.Join(home, ".local", "state", "pomo", "pomo.log"))

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "pomo", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.TickInterval <= 0 {
		return cfg, fmt.Errorf("invalid tick-interval: %s", cfg.TickInterval)
	}
	if cfg.DefaultDuration <= 0 {
		return cfg, fmt.Errorf("invalid default-duration: %s", cfg.DefaultDuration)
	}

	// Expand ~ in log-file
	if strings.HasPrefix(cfg.LogFile, "~/") {
		cfg.LogFile = filepath.Join(home, cfg.LogFile[2:])
	}

	return cfg, nil
}

// parseSeconds reads the countdown length from the positional arguments.
// Zero is returned as-is; the countdown substitutes its default.
func parseSeconds(args []string) (time.Duration, error) {
	if len(args) == 0 {
		return 0, domain.ErrMissingDuration
	}
	secs, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, 64)
	if err != nil || secs > uint64(math.MaxInt64/int64(time.Second)) {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDuration, args[0])
	}
	return time.Duration(secs) * time.Second, nil
}
