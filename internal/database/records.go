package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JonMunkholm/fakerecords/internal/core"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DefaultTable is the export table used when none is configured.
const DefaultTable = "fake_records"

// DBTX is the subset of pgx used by RecordStore.
// Satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error)
}

// columns is the COPY column order; rowsFor must match it.
var columns = []string{
	"id", "name", "address", "phone", "region",
	"seed", "error_rate", "requested_by", "exported_at",
}

// Batch is one view being exported.
type Batch struct {
	Seed        int64
	Region      core.RegionFilter
	ErrorRate   int
	Records     []core.Record
	RequestedBy string // client IP; falls back to core.ClientInfoFrom(ctx)
}

// RecordStore writes record views into a single table.
type RecordStore struct {
	db    DBTX
	table pgx.Identifier
	now   func() time.Time
}

// NewRecordStore creates a store writing to table (DefaultTable if empty).
func NewRecordStore(db DBTX, table string) *RecordStore {
	if table == "" {
		table = DefaultTable
	}
	return &RecordStore{
		db:    db,
		table: pgx.Identifier{table},
		now:   time.Now,
	}
}

// Table returns the sanitized table name.
func (s *RecordStore) Table() string {
	return s.table.Sanitize()
}

// EnsureSchema creates the export table if it does not exist.
// Rows get a surrogate key: cached baselines keep their ids, so the same
// record id appears once per exported view.
func (s *RecordStore) EnsureSchema(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	row_id       bigserial PRIMARY KEY,
	id           uuid NOT NULL,
	name         text NOT NULL,
	address      text NOT NULL,
	phone        text NOT NULL,
	region       text NOT NULL,
	seed         bigint NOT NULL,
	error_rate   smallint NOT NULL,
	requested_by text NOT NULL DEFAULT '',
	exported_at  timestamptz NOT NULL DEFAULT now()
)`, s.Table())

	if _, err := s.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("create table %s: %w", s.Table(), err)
	}

	index := pgx.Identifier{s.table[len(s.table)-1] + "_id_idx"}.Sanitize()
	if _, err := s.db.Exec(ctx, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (id)", index, s.Table())); err != nil {
		return fmt.Errorf("create index on %s: %w", s.Table(), err)
	}
	return nil
}

// Insert bulk-loads batch with COPY and returns the number of rows written.
func (s *RecordStore) Insert(ctx context.Context, batch Batch) (int64, error) {
	if len(batch.Records) == 0 {
		return 0, nil
	}

	if batch.RequestedBy == "" {
		batch.RequestedBy = core.ClientInfoFrom(ctx).IP
	}

	start := s.now()
	n, err := s.db.CopyFrom(ctx, s.table, columns, pgx.CopyFromRows(rowsFor(batch, start)))
	if err != nil {
		return 0, fmt.Errorf("copy into %s: %w", s.Table(), err)
	}

	slog.Info("records exported to database",
		"table", s.Table(),
		"rows", n,
		"seed", batch.Seed,
		"region", batch.Region.String(),
		"error_rate", batch.ErrorRate,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return n, nil
}

// rowsFor converts a batch into COPY rows in columns order.
func rowsFor(batch Batch, exportedAt time.Time) [][]any {
	rows := make([][]any, len(batch.Records))
	for i, rec := range batch.Records {
		rows[i] = []any{
			pgtype.UUID{Bytes: rec.ID, Valid: true},
			rec.Name,
			rec.Address,
			rec.Phone,
			string(rec.Region),
			batch.Seed,
			int16(batch.ErrorRate),
			batch.RequestedBy,
			exportedAt,
		}
	}
	return rows
}
