package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// ConfigFileEnv points at an optional yaml/toml/json file; env vars still win over it.
const ConfigFileEnv = "FIELDMAP_CONFIG"

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string

	CacheDriver     string // memory | sqlite | none
	CachePath       string
	MappingCacheTTL time.Duration
	LearnedCacheTTL time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "127.0.0.1")
	v.SetDefault("PORT", 8082)
	v.SetDefault("ALLOW_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_UPLOAD_MB", 32)
	v.SetDefault("LOG_FILE", "logs/fieldmap-service.log")
	v.SetDefault("CACHE_DRIVER", "memory")
	v.SetDefault("CACHE_PATH", "data/fieldmap-cache.db")
	v.SetDefault("MAPPING_CACHE_TTL", "60m")
	v.SetDefault("LEARNED_CACHE_TTL", "24h")
}

// Load: дефолты -> файл из FIELDMAP_CONFIG (если задан) -> переменные окружения.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Host:            v.GetString("HOST"),
		Port:            v.GetInt("PORT"),
		AllowOrigins:    splitList(v.GetString("ALLOW_ORIGINS")),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		MaxUploadMB:     v.GetInt("MAX_UPLOAD_MB"),
		LogFile:         v.GetString("LOG_FILE"),
		CacheDriver:     strings.ToLower(v.GetString("CACHE_DRIVER")),
		CachePath:       v.GetString("CACHE_PATH"),
		MappingCacheTTL: v.GetDuration("MAPPING_CACHE_TTL"),
		LearnedCacheTTL: v.GetDuration("LEARNED_CACHE_TTL"),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.Newf("invalid PORT %d", cfg.Port)
	}
	if cfg.MaxUploadMB <= 0 {
		return Config{}, errors.Newf("invalid MAX_UPLOAD_MB %d", cfg.MaxUploadMB)
	}
	switch cfg.CacheDriver {
	case "memory", "sqlite", "none":
	default:
		return Config{}, errors.Newf("invalid CACHE_DRIVER %q", cfg.CacheDriver)
	}
	return cfg, nil
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func (c Config) MaxUploadBytes() int64 { return int64(c.MaxUploadMB) << 20 }

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
