package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/joinrss-backend/internal/adapter/postgres"
	memberrepo "github.com/heartmarshall/joinrss-backend/internal/adapter/postgres/member"
	sessionrepo "github.com/heartmarshall/joinrss-backend/internal/adapter/postgres/session"
	userrepo "github.com/heartmarshall/joinrss-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/joinrss-backend/internal/auth"
	"github.com/heartmarshall/joinrss-backend/internal/config"
	authsvc "github.com/heartmarshall/joinrss-backend/internal/service/auth"
	membersvc "github.com/heartmarshall/joinrss-backend/internal/service/member"
	usersvc "github.com/heartmarshall/joinrss-backend/internal/service/user"
	"github.com/heartmarshall/joinrss-backend/migrations"
)

// Container holds the wired services shared by the HTTP server and joinctl.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Pool    *pgxpool.Pool
	Schema  *postgres.SchemaChecker
	Auth    *authsvc.Service
	Users   *usersvc.Service
	Members *membersvc.Service
}

// NewContainer wires repositories and services on top of an open pool.
func NewContainer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*Container, error) {
	schema, err := postgres.NewSchemaChecker(pool, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("app.NewContainer: %w", err)
	}

	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	sessions := sessionrepo.New(pool)
	members := memberrepo.New(pool)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Pool:    pool,
		Schema:  schema,
		Auth:    authsvc.NewService(logger, users, sessions, jwt, cfg.Auth),
		Users:   usersvc.NewService(logger, users, cfg.Auth.BcryptCost),
		Members: membersvc.NewService(logger, members, tx, cfg.Export),
	}, nil
}

// Open connects to the database and wires the container. Call Close when done.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	c, err := NewContainer(cfg, logger, pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the database pool.
func (c *Container) Close() {
	c.Pool.Close()
}
