package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sethvargo/go-envconfig"

	"configecho/internal/domain/settings"
)

const (
	KeyDatabaseURL = "DATABASE_URL"
	KeyPort        = "PORT"

	DefaultPort = "8080"
)

type ServerConfig struct {
	LogLevel     string        `env:"LOG_LEVEL, default=info"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT, default=5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT, default=5s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT, default=60s"`
}

type Config struct {
	Settings settings.Settings
	Server   ServerConfig
}

func Load(ctx context.Context) (Config, error) {
	var srv ServerConfig
	if err := envconfig.Process(ctx, &srv); err != nil {
		return Config{}, fmt.Errorf("server config: %w", err)
	}

	return Config{
		Settings: settings.Settings{
			DatabaseURL: lookup(KeyDatabaseURL),
			Port:        lookup(KeyPort),
		},
		Server: srv,
	}, nil
}

// ListenAddr falls back to DefaultPort when PORT is absent or not a valid
// TCP port. The second return reports whether the fallback was used.
func (c Config) ListenAddr() (string, bool) {
	if n, err := strconv.Atoi(c.Settings.Port.OrElse("")); err == nil && n > 0 && n <= 65535 {
		return ":" + strconv.Itoa(n), false
	}
	return ":" + DefaultPort, true
}

func lookup(key string) settings.Value {
	v, ok := os.LookupEnv(key)
	if !ok {
		return settings.Value{}
	}
	return settings.Some(v)
}
