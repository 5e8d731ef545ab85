// Package config loads the startup configuration of the monitor-cli tool.
//
// Values are layered with github.com/spf13/viper, highest precedence first:
//
//   - command-line flags (--bus, --ddcutil)
//   - environment variables (MONITOR_CLI_BUS, MONITOR_CLI_DDCUTIL)
//   - a config file (YAML, or JSON with comments)
//   - built-in defaults (bus 6, binary "ddcutil")
//
// The config file is either given explicitly or looked up as
// $XDG_CONFIG_HOME/monitor-cli/config.{yaml,yml,json,jsonc}. A missing
// default file is not an error. JSONC is supported via github.com/tidwall/jsonc.
package config
