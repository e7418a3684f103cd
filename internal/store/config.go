package store

import (
	"fmt"
	"net/url"
	"time"
)

type Config struct {
	Host            string        `mapstructure:"host" default:"localhost"`
	User            string        `mapstructure:"user" default:"postgres"`
	Password        string        `mapstructure:"password" default:""`
	Name            string        `mapstructure:"name" default:"engagement"`
	Port            string        `mapstructure:"port" default:"5432"`
	SslMode         string        `mapstructure:"sslmode" default:"disable"`
	LogLevel        string        `mapstructure:"log_level" default:"warn"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" default:"10"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" default:"50"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" default:"30m"`
	Tracing         bool          `mapstructure:"tracing" default:"false"`
}

// DSN returns the postgres connection url for the config.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:   c.Name,
	}
	q := u.Query()
	q.Set("sslmode", c.SslMode)
	u.RawQuery = q.Encode()
	return u.String()
}
