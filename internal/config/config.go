package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Interactive modes accepted by the INTERACTIVE setting.
const (
	InteractiveAuto  = "auto"
	InteractiveOn    = "true"
	InteractiveOff   = "false"
	defaultPrompt    = "> "
	defaultLogLevel  = "warn"
	defaultLogFormat = "pretty"
)

// Config holds all application configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	Prompt    string
	// Interactive decides whether the banner and prompt are printed.
	// "auto" defers to whether stdin is a terminal.
	Interactive string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_format", defaultLogFormat)
	v.SetDefault("prompt", defaultPrompt)
	v.SetDefault("interactive", InteractiveAuto)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		LogLevel:    strings.ToLower(v.GetString("log_level")),
		LogFormat:   strings.ToLower(v.GetString("log_format")),
		Prompt:      v.GetString("prompt"),
		Interactive: parseInteractive(v.GetString("interactive")),
	}
}

// parseInteractive normalizes the INTERACTIVE setting, falling back to auto
// for anything it does not recognize.
func parseInteractive(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case InteractiveOn, "1", "yes":
		return InteractiveOn
	case InteractiveOff, "0", "no":
		return InteractiveOff
	default:
		return InteractiveAuto
	}
}

// IsInteractive resolves the Interactive setting against whether the input
// is attached to a terminal.
func (c *Config) IsInteractive(isTerminal bool) bool {
	switch c.Interactive {
	case InteractiveOn:
		return true
	case InteractiveOff:
		return false
	default:
		return isTerminal
	}
}
