package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cccteam/consolesession/apiclient"
	"github.com/go-playground/errors/v5"
	"github.com/spf13/viper"
)

// Config is the configuration of the console binary.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Tokens  TokensConfig  `mapstructure:"tokens"`
	Server  ServerConfig  `mapstructure:"server"`
	Session SessionConfig `mapstructure:"session"`
}

// APIConfig locates the console API.
type APIConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	DedupeRefresh bool          `mapstructure:"dedupe_refresh"`
}

// TokensConfig selects where the token pair is kept. An ephemeral store
// forgets the session when the process exits.
type TokensConfig struct {
	Path      string `mapstructure:"path"`
	Ephemeral bool   `mapstructure:"ephemeral"`
}

// ServerConfig configures the web console listener.
type ServerConfig struct {
	Addr          string `mapstructure:"addr"`
	SecureCookies bool   `mapstructure:"secure_cookies"`
	HashKey       string `mapstructure:"hash_key"`
	BlockKey      string `mapstructure:"block_key"`
}

// SessionConfig holds the session timers.
type SessionConfig struct {
	RefreshInterval   time.Duration `mapstructure:"refresh_interval"`
	InactivityTimeout time.Duration `mapstructure:"inactivity_timeout"`
}

const envPrefix = "CONSOLE"

// LoadConfig reads configPath, or console.yaml from the user config
// directory when configPath is empty, and overlays CONSOLE_* environment
// variables. A missing default config file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("console")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "consolesession"))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "viper.Viper.ReadInConfig()")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "viper.Viper.Unmarshal()")
	}

	if strings.HasPrefix(cfg.Tokens.Path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "os.UserHomeDir()")
		}
		cfg.Tokens.Path = filepath.Join(home, cfg.Tokens.Path[2:])
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", apiclient.DefaultBaseURL)
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.dedupe_refresh", false)

	v.SetDefault("tokens.path", defaultTokenPath())
	v.SetDefault("tokens.ephemeral", false)

	v.SetDefault("server.addr", "localhost:8080")
	v.SetDefault("server.secure_cookies", false)
	v.SetDefault("server.hash_key", "")
	v.SetDefault("server.block_key", "")

	v.SetDefault("session.refresh_interval", 15*time.Minute)
	v.SetDefault("session.inactivity_timeout", 60*time.Minute)
}

func defaultTokenPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tokens.json"
	}

	return filepath.Join(dir, "consolesession", "tokens.json")
}
