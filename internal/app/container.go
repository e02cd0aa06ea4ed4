package app

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"panduan-karier/internal/config"
	"panduan-karier/internal/database"
	"panduan-karier/internal/database/migration"
	dbpostgres "panduan-karier/internal/database/postgres"
	"panduan-karier/internal/database/seeder"
	"panduan-karier/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Redis  *cache.Redis
}

// NewContainer connects the infrastructure, then brings the schema and the
// reference catalogs up to date before anything serves traffic.
func NewContainer(cfg config.Config) (*Container, error) {
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	setupCtx, cancelSetup := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancelSetup()

	mig := migration.Runner{Dir: migrationsDir()}
	if err := mig.Run(setupCtx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	seed := seeder.Runner{Seeders: seeder.Defaults()}
	if err := seed.Run(setupCtx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  cache.NewRedis(log.Default()),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

func migrationsDir() string {
	if dir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")); dir != "" {
		return dir
	}
	return "migrations"
}
