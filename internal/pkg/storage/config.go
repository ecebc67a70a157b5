package storage

import (
	"context"
	"net"
	"net/url"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", "localhost"),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", "postgres"),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "loramint"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

// ConnStr returns a postgres:// URL, which keeps empty values and values with spaces or quotes intact.
func (c Config) ConnStr() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.user, c.password),
		Host:     net.JoinHostPort(c.host, c.port),
		Path:     "/" + c.dbname,
		RawQuery: url.Values{"sslmode": {c.sslmode}}.Encode(),
	}
	return u.String()
}
