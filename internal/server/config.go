package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goto/salt/config"

	"github.com/Dafi-web/events-sub000/core/comment"
	"github.com/Dafi-web/events-sub000/internal/store"
	"github.com/Dafi-web/events-sub000/internal/store/redis"
	"github.com/Dafi-web/events-sub000/jobs"
	"github.com/Dafi-web/events-sub000/pkg/opentelemetry"
	"github.com/Dafi-web/events-sub000/plugins/notifiers"
)

const (
	ViewStorePostgres = "postgres"
	ViewStoreRedis    = "redis"
)

type Auth struct {
	UserIDHeader string `mapstructure:"user_id_header" default:"X-User-Id"`
	RoleHeader   string `mapstructure:"role_header" default:"X-User-Role"`
}

type Session struct {
	Header string `mapstructure:"header" default:"X-Session-Token"`
}

type View struct {
	Store     string        `mapstructure:"store" default:"postgres" validate:"oneof=postgres redis"`
	MarkerTTL time.Duration `mapstructure:"marker_ttl" default:"24h"`
}

// Content locates the tables owned by the content modules. Tables maps a
// content type to a table name, optionally schema qualified.
type Content struct {
	Tables   map[string]string `mapstructure:"tables"`
	IDColumn string            `mapstructure:"id_column" default:"id"`
	CacheTTL time.Duration     `mapstructure:"cache_ttl" default:"1m"`
}

type Config struct {
	Port      int                    `mapstructure:"port" default:"8080"`
	LogLevel  string                 `mapstructure:"log_level" default:"info"`
	DB        store.Config           `mapstructure:"db"`
	Redis     redis.Config           `mapstructure:"redis"`
	View      View                   `mapstructure:"view"`
	Comment   comment.Config         `mapstructure:"comment"`
	Content   Content                `mapstructure:"content"`
	Auth      Auth                   `mapstructure:"auth"`
	Session   Session                `mapstructure:"session"`
	Notifier  notifiers.Config       `mapstructure:"notifier"`
	Jobs      map[jobs.Type]jobs.Job `mapstructure:"jobs"`
	Telemetry opentelemetry.Config   `mapstructure:"telemetry"`
}

func LoadConfig(configFile string) (Config, error) {
	var cfg Config
	loader := config.NewLoader(config.WithFile(configFile))

	if err := loader.Load(&cfg); err != nil {
		if !errors.As(err, &config.ConfigFileNotFoundError{}) {
			return Config{}, err
		}
		fmt.Println(err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.View.Store == ViewStoreRedis && len(c.Redis.Addrs) == 0 {
		return errors.New("invalid config: redis.addrs is required when view.store is redis")
	}
	return nil
}
