package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGSink persists computed histogram/growth curves into a Postgres
// "pangenome_runs" table, additive to the TSV writers (SPEC_FULL §3): a
// pipeline that runs this tool repeatedly gets a queryable history instead
// of only files on disk.
type PGSink struct {
	pool *pgxpool.Pool
}

// NewPGSink opens a connection pool against dsn and ensures the
// pangenome_runs table exists.
func NewPGSink(ctx context.Context, dsn string) (*PGSink, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("sink: parsing persist DSN: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("sink: creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("sink: database unreachable: %w", err)
	}

	s := &PGSink{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("sink: migration failed: %w", err)
	}
	return s, nil
}

// Close releases the connection pool.
func (s *PGSink) Close() {
	s.pool.Close()
}

func (s *PGSink) migrate(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS pangenome_runs (
	invocation_id   TEXT PRIMARY KEY,
	subcommand      TEXT NOT NULL,
	count_type      TEXT NOT NULL,
	coverage        JSONB NOT NULL,
	quorum          JSONB NOT NULL,
	values          JSONB NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL
)`
	_, err := s.pool.Exec(ctx, ddl)
	return err
}

// Run is one upserted row: a growth or histogram curve keyed by the
// invocation that produced it.
type Run struct {
	InvocationID string
	Subcommand   string
	CountType    string
	Coverage     []int
	Quorum       []float64
	Values       [][]float64
	CreatedAt    time.Time
}

// Upsert persists r, overwriting any prior row for the same invocation id.
func (s *PGSink) Upsert(ctx context.Context, r Run) error {
	coverageJSON, err := json.Marshal(r.Coverage)
	if err != nil {
		return fmt.Errorf("sink: marshaling coverage: %w", err)
	}
	quorumJSON, err := json.Marshal(r.Quorum)
	if err != nil {
		return fmt.Errorf("sink: marshaling quorum: %w", err)
	}
	valuesJSON, err := json.Marshal(r.Values)
	if err != nil {
		return fmt.Errorf("sink: marshaling values: %w", err)
	}

	const q = `
INSERT INTO pangenome_runs (invocation_id, subcommand, count_type, coverage, quorum, values, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (invocation_id) DO UPDATE SET
	subcommand = EXCLUDED.subcommand,
	count_type = EXCLUDED.count_type,
	coverage   = EXCLUDED.coverage,
	quorum     = EXCLUDED.quorum,
	values     = EXCLUDED.values,
	created_at = EXCLUDED.created_at
`
	_, err = s.pool.Exec(ctx, q, r.InvocationID, r.Subcommand, r.CountType, coverageJSON, quorumJSON, valuesJSON, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("sink: upserting run %s: %w", r.InvocationID, err)
	}
	return nil
}
