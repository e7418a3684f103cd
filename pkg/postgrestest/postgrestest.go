// Package postgrestest spins up a disposable postgres container for
// repository integration tests.
package postgrestest

import (
	"context"
	"fmt"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/Dafi-web/events-sub000/internal/store"
	"github.com/Dafi-web/events-sub000/internal/store/postgres"
	"github.com/Dafi-web/events-sub000/pkg/log"
)

const (
	pgUser     = "test_user"
	pgPassword = "test_pass"
	pgDBName   = "test_db"
)

// ContentTables are created alongside the migrated schema so content
// existence checks have something to look at. In production these tables
// belong to the content modules.
var ContentTables = []string{"events", "news", "directory_listings"}

func NewTestStore(logger log.Logger) (*postgres.Store, *dockertest.Pool, *dockertest.Resource, error) {
	ctx := context.Background()

	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not create dockertest pool: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "14",
		Env: []string{
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_DB=" + pgDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not start postgres container: %w", err)
	}

	if err := resource.Expire(300); err != nil {
		return nil, nil, nil, err
	}

	cfg := &store.Config{
		Host:     "localhost",
		User:     pgUser,
		Password: pgPassword,
		Name:     pgDBName,
		Port:     resource.GetPort("5432/tcp"),
		SslMode:  "disable",
		LogLevel: "silent",
	}

	var st *postgres.Store
	pool.MaxWait = 120 * time.Second
	if err := pool.Retry(func() error {
		st, err = postgres.NewStore(cfg)
		return err
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("could not connect to postgres container: %w", err)
	}
	logger.Info(ctx, "connected to test postgres", "port", cfg.Port)

	if err := st.Migrate(); err != nil {
		return nil, nil, nil, fmt.Errorf("could not migrate test database: %w", err)
	}

	for _, table := range ContentTables {
		if err := st.DB().Exec(fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (id text PRIMARY KEY)", table)).Error; err != nil {
			return nil, nil, nil, fmt.Errorf("could not create content table %q: %w", table, err)
		}
	}

	return st, pool, resource, nil
}

func PurgeTestDocker(pool *dockertest.Pool, resource *dockertest.Resource) error {
	if err := pool.Purge(resource); err != nil {
		return fmt.Errorf("could not purge resource: %w", err)
	}
	return nil
}
