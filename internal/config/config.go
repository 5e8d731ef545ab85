package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/monitor-cli/internal/model"
)

const (
	// AppName names the per-user config directory.
	AppName = "monitor-cli"

	// EnvPrefix prefixes environment variables read by Load.
	EnvPrefix = "MONITOR_CLI"

	// DefaultBus is the I2C bus ddcutil talks to when nothing else is configured.
	DefaultBus = 6

	// DefaultDdcutil is the ddcutil executable looked up on PATH.
	DefaultDdcutil = "ddcutil"
)

// Flag and config keys.
const (
	KeyBus     = "bus"
	KeyDdcutil = "ddcutil"
)

// configFileNames are tried in order inside the config directory.
var configFileNames = []string{"config.yaml", "config.yml", "config.json", "config.jsonc"}

// Config is the resolved startup configuration.
type Config struct {
	// Bus is the I2C bus number passed to ddcutil as --bus=<N>.
	Bus int `mapstructure:"bus"`

	// Ddcutil is the executable name or path of ddcutil.
	Ddcutil string `mapstructure:"ddcutil"`
}

// DefaultConfig returns the configuration used when no source overrides it.
func DefaultConfig() Config {
	return Config{Bus: DefaultBus, Ddcutil: DefaultDdcutil}
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	if c.Bus < 0 {
		return model.NewCLIError(model.ExitConfigError,
			fmt.Sprintf("invalid bus %d: must be zero or greater", c.Bus))
	}
	if strings.TrimSpace(c.Ddcutil) == "" {
		return model.NewCLIError(model.ExitConfigError, "ddcutil binary must not be empty")
	}
	return nil
}

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	// ConfigFilePath is an explicit config file. It must exist.
	ConfigFilePath string

	// ConfigDirPath overrides the directory searched for a default config
	// file. Empty means $XDG_CONFIG_HOME/monitor-cli.
	ConfigDirPath string

	// Flags holds the --bus and --ddcutil flags, if any. Only flags the
	// user actually set take precedence over other sources.
	Flags *pflag.FlagSet
}

// Load resolves the configuration and returns it together with the path
// of the config file that was read (empty if none).
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(KeyBus, defaults.Bus)
	v.SetDefault(KeyDdcutil, defaults.Ddcutil)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for _, key := range []string{KeyBus, KeyDdcutil} {
			if f := opts.Flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, "", fmt.Errorf("failed to bind flag --%s: %w", key, err)
				}
			}
		}
	}

	path, err := findConfigFile(opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		values, err := readConfigFile(path)
		if err != nil {
			return nil, "", model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("failed to load config file %s", path), err)
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, "", model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("failed to merge config file %s", path), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", model.WrapCLIError(model.ExitConfigError, "failed to parse configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, path, nil
}

// findConfigFile returns the config file to read, or "" when there is none.
func findConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if _, err := os.Stat(opts.ConfigFilePath); err != nil {
			return "", model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("config file not found: %s", opts.ConfigFilePath), err)
		}
		return opts.ConfigFilePath, nil
	}

	dir := opts.ConfigDirPath
	if dir == "" {
		userDir, err := os.UserConfigDir()
		if err != nil {
			// No HOME or XDG_CONFIG_HOME: run on defaults.
			return "", nil
		}
		dir = filepath.Join(userDir, AppName)
	}

	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

// readConfigFile decodes a YAML or JSON(C) file into a generic map
// suitable for viper.MergeConfigMap.
func readConfigFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	values := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	case ".json", ".jsonc":
		// Strip comments and trailing commas before handing off to encoding/json.
		if err := json.Unmarshal(jsonc.ToJSON(data), &values); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (valid: .yaml, .yml, .json, .jsonc)", ext)
	}

	// An empty YAML document decodes to a nil map.
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}
