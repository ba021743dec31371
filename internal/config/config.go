package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/anchore/go-semver/internal"
)

type CliOnlyOptions struct {
	ConfigPath string
	Verbosity  int
}

type Application struct {
	ConfigPath string
	Quiet      bool    `mapstructure:"quiet"`
	Log        Logging `mapstructure:"log"`
	CliOptions CliOnlyOptions
}

type Logging struct {
	Structured   bool `mapstructure:"structured"`
	LevelOpt     logrus.Level
	Level        string `mapstructure:"level"`
	FileLocation string `mapstructure:"file"`
}

func setNonCliDefaultValues(v *viper.Viper) {
	v.SetDefault("quiet", false)
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.structured", false)
}

func LoadApplicationConfig(v *viper.Viper, cliOpts CliOnlyOptions) (*Application, error) {
	// the user may not have a config, and this is OK, we can use the default config + default cobra cli values instead
	setNonCliDefaultValues(v)
	_ = readConfig(v, cliOpts.ConfigPath)

	config := &Application{
		CliOptions: cliOpts,
	}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	config.ConfigPath = v.ConfigFileUsed()

	if err := config.Build(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (cfg *Application) Build() error {
	if cfg.Quiet {
		// TODO: this is bad: quiet option trumps all other logging options
		// we should be able to quiet the console logging and leave file logging alone...
		cfg.Log.LevelOpt = logrus.PanicLevel
		return nil
	}

	if cfg.Log.Level != "" {
		if cfg.CliOptions.Verbosity > 0 {
			return fmt.Errorf("cannot explicitly set log level (cfg file or env var) and use -v flag together")
		}

		levelOpt, err := logrus.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("bad log level value '%s': %+v", cfg.Log.Level, err)
		}
		cfg.Log.LevelOpt = levelOpt
		return nil
	}

	// set the log level implicitly from the -v count
	switch v := cfg.CliOptions.Verbosity; {
	case v == 1:
		cfg.Log.LevelOpt = logrus.InfoLevel
	case v >= 2:
		cfg.Log.LevelOpt = logrus.DebugLevel
	default:
		cfg.Log.LevelOpt = logrus.ErrorLevel
	}

	return nil
}

func readConfig(v *viper.Viper, configPath string) error {
	v.AutomaticEnv()
	v.SetEnvPrefix(internal.ApplicationName)
	// allow for nested options to be specified via environment variables
	// e.g. log.level = SEMVER_LOG_LEVEL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// use explicitly the given user config
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err == nil {
			return nil
		}
		// don't fall through to other options if this fails
		return fmt.Errorf("unable to read config: %v", configPath)
	}

	// start searching for valid configs in order...

	// 1. look for .<appname>.yaml (in the current directory)
	v.AddConfigPath(".")
	v.SetConfigName("." + internal.ApplicationName)
	if err := v.ReadInConfig(); err == nil {
		return nil
	}

	// 2. look for <appname>/config.yaml (in the user's XDG config directory)
	v.AddConfigPath(path.Join(xdg.ConfigHome, internal.ApplicationName))
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err == nil {
		return nil
	}

	// 3. look for .<appname>.yaml (in the user's home directory)
	v.AddConfigPath(xdg.Home)
	v.SetConfigName("." + internal.ApplicationName)
	if err := v.ReadInConfig(); err == nil {
		return nil
	}

	return fmt.Errorf("application config not found")
}
