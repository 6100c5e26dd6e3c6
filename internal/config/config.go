// Package config loads the demo site configuration from the environment, an
// optional .env file and an optional YAML file.
//
// Every key has a default declared in a `default` struct tag, and nested
// keys map to upper-case environment variables: log.level is LOG_LEVEL,
// server.addr is SERVER_ADDR.
package config

import (
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/pthm/hxdrop/internal/logger"
)

// Config holds all configuration for the demo site.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server ServerConfig `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Site holds presentation settings.
	Site SiteConfig `mapstructure:"site"`
}

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `mapstructure:"addr" default:":8080"`
	// Key signs widget state tokens. Empty means a random key per process.
	Key string `mapstructure:"key" default:""`
}

// SiteConfig holds presentation settings.
type SiteConfig struct {
	// Theme is the default theme when the visitor has no theme cookie.
	Theme string `mapstructure:"theme" default:"light"`
}

// Load reads configuration. dir is searched for a .env file; file, if not
// empty, is a YAML config file whose values sit between the defaults and
// the environment.
func Load(dir, file string) (*Config, error) {
	envPath := dir + "/.env"
	if dir == "." || dir == "" {
		envPath = ".env"
	}
	// A missing .env is normal outside development.
	_ = godotenv.Load(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindValues walks the struct and registers every mapstructure key with its
// `default` tag value.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set, even when empty, so AutomaticEnv sees the key.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
