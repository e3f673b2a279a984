package config

import (
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Draft store kinds
const (
	DraftStoreMemory = "memory"
	DraftStoreRedis  = "redis"
)

// Config настройки сервиса, читаются из окружения
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Drafts  DraftsConfig
	Redis   RedisConfig
}

// ServerConfig настройки HTTP
type ServerConfig struct {
	Host            string        `env:"HOST"`
	Port            int           `env:"PORT" envDefault:"8080"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	SubmitRPS       float64       `env:"SUBMIT_RPS" envDefault:"5"`
	SubmitBurst     int           `env:"SUBMIT_BURST" envDefault:"10"`
}

// LoggingConfig настройки логов
type LoggingConfig struct {
	Level           string `env:"LOG_LEVEL" envDefault:"info"`
	Format          string `env:"LOG_FORMAT" envDefault:"text"` // "text" или "json"
	LogentriesToken string `env:"LOGENTRIES_TOKEN"`
}

// DraftsConfig где живут черновики создаваемых игр
type DraftsConfig struct {
	Store string        `env:"DRAFT_STORE" envDefault:"memory"`
	TTL   time.Duration `env:"DRAFT_TTL" envDefault:"1h"`
}

// RedisConfig подключение к redis для черновиков
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASS"`
}

// Load читает конфиг из окружения и проверяет его
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "env parse error")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения, которые env не может проверить сам
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.Errorf("invalid port %d", c.Server.Port)
	}

	switch c.Drafts.Store {
	case DraftStoreMemory, DraftStoreRedis:
	default:
		return errors.Errorf("unknown draft store %q", c.Drafts.Store)
	}

	if c.Drafts.TTL <= 0 {
		return errors.Errorf("draft ttl must be positive, got %s", c.Drafts.TTL)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return errors.Errorf("unknown log format %q", c.Logging.Format)
	}

	if c.Server.SubmitRPS <= 0 || c.Server.SubmitBurst <= 0 {
		return errors.New("submit rate limit must be positive")
	}

	return nil
}

// Addr адрес в формате host:port
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
