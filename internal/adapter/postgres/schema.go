package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// SchemaChecker compares the applied goose version with the newest
// migration shipped in the binary.
type SchemaChecker struct {
	provider *goose.Provider
	latest   int64
}

// NewSchemaChecker builds a checker over pool. The returned checker shares the
// pool's connections and does not own them.
func NewSchemaChecker(pool *pgxpool.Pool, migrations fs.FS) (*SchemaChecker, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, stdlib.OpenDBFromPool(pool), migrations)
	if err != nil {
		return nil, fmt.Errorf("postgres.NewSchemaChecker: %w", err)
	}

	var latest int64
	for _, src := range provider.ListSources() {
		latest = max(latest, src.Version)
	}
	return &SchemaChecker{provider: provider, latest: latest}, nil
}

// SchemaVersion returns the applied and the newest known migration versions.
func (c *SchemaChecker) SchemaVersion(ctx context.Context) (current, latest int64, err error) {
	current, err = c.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, c.latest, fmt.Errorf("postgres.SchemaVersion: %w", err)
	}
	return current, c.latest, nil
}
