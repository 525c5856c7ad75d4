package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Conn is the subset of a PostgreSQL session the repository needs.
type Conn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close(ctx context.Context) error
}

// Connector opens a session for a single load. The caller closes it.
type Connector interface {
	Connect(ctx context.Context) (Conn, error)
}

// DialConnector opens a fresh connection on every call.
type DialConnector struct {
	connString string
}

// NewDialConnector creates a connector that dials connString per load
func NewDialConnector(connString string) *DialConnector {
	return &DialConnector{connString: connString}
}

func (d *DialConnector) Connect(ctx context.Context) (Conn, error) {
	conn, err := pgx.Connect(ctx, d.connString)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to connect: %w", err)
	}
	return conn, nil
}

// PoolConnector hands out pooled connections; Close releases them back to the pool.
type PoolConnector struct {
	pool *pgxpool.Pool
}

// NewPoolConnector creates a connector backed by pool
func NewPoolConnector(pool *pgxpool.Pool) *PoolConnector {
	return &PoolConnector{pool: pool}
}

func (p *PoolConnector) Connect(ctx context.Context) (Conn, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to acquire connection: %w", err)
	}
	return pooledConn{conn}, nil
}

type pooledConn struct {
	*pgxpool.Conn
}

func (c pooledConn) Close(context.Context) error {
	c.Release()
	return nil
}
