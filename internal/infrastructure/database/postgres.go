package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgreSQLClient direct connection for the zones reference table
type PostgreSQLClient struct {
	DB *sql.DB
}

// NewPostgreSQLClient opens and pings a lib/pq connection
func NewPostgreSQLClient(ctx context.Context, dsn string) (*PostgreSQLClient, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is not configured")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL connection: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// Close closes the connection pool
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck pings the database
func (pc *PostgreSQLClient) HealthCheck() error {
	if pc.DB == nil {
		return fmt.Errorf("postgres client is not initialized")
	}
	return pc.DB.Ping()
}
