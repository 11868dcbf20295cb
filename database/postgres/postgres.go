package postgres

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const ConnMaxLifetime = 600 * time.Second

// New prepares a connection pool for dsn. No connection is made until the
// pool is first used, so an unreachable server does not block startup.
func New(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(ConnMaxLifetime)

	return db, nil
}
