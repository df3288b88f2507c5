package schemasync

import (
	"context"
	"fmt"
	"time"

	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

// TimestampLayout formats generated_at_utc.
const TimestampLayout = "2006-01-02T15:04:05Z"

// Syncer builds schema records from a Querier.
// Thread-Safety: NOT safe for concurrent use on the same instance.
type Syncer struct {
	querier  Querier
	logger   erpbrain.Logger
	throttle time.Duration
	now      func() time.Time
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithThrottle sets the pause between per-table fetches.
func WithThrottle(d time.Duration) Option {
	return func(s *Syncer) { s.throttle = d }
}

// WithClock replaces time.Now for generated_at_utc.
func WithClock(now func() time.Time) Option {
	return func(s *Syncer) { s.now = now }
}

// NewSyncer creates a Syncer. Panics if querier or logger is nil.
func NewSyncer(querier Querier, logger erpbrain.Logger, opts ...Option) *Syncer {
	if querier == nil {
		panic("querier cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	s := &Syncer{
		querier:  querier,
		logger:   logger,
		throttle: erpbrain.DefaultTableThrottle,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TableNames returns the tables of owner, at most limit when limit > 0.
func (s *Syncer) TableNames(ctx context.Context, owner string, limit int) ([]string, error) {
	if err := ValidateOwner(owner); err != nil {
		return nil, err
	}

	rows, err := s.querier.Query(ctx, TableListSQL(owner, limit))
	if err != nil {
		return nil, fmt.Errorf("list tables of %s: %w", owner, err)
	}

	names := make([]string, 0, len(rows))
	for i, row := range rows {
		name, ok := row["TABLE_NAME"].(string)
		if !ok {
			return nil, fmt.Errorf("%w: row %d of the table list has no TABLE_NAME", erpbrain.ErrQueryFailed, i)
		}
		names = append(names, name)
	}
	return names, nil
}

// Sync fetches columns and constraints of every table of owner. A failed
// table is recorded with its error and the run continues; a failed table
// list aborts the sync.
func (s *Syncer) Sync(ctx context.Context, owner string, limit int) (erpbrain.Schema, error) {
	s.logger.Info("Fetching table list for %s...", owner)
	tables, err := s.TableNames(ctx, owner, limit)
	if err != nil {
		return erpbrain.Schema{}, err
	}
	s.logger.Info("Found %d tables.", len(tables))

	schema := s.newSchema(owner)
	for i, table := range tables {
		s.logger.Info("[%d/%d] Processing %s...", i+1, len(tables), table)

		ts, err := s.fetchTable(ctx, owner, table)
		if err != nil {
			if ctx.Err() != nil {
				return schema, ctx.Err()
			}
			s.logger.Warn("  Error: %v", err)
			ts = erpbrain.TableSchema{Error: err.Error()}
		}
		schema.Tables[table] = ts

		if err := s.pause(ctx); err != nil {
			return schema, err
		}
	}

	return schema, nil
}

// Tables lists the tables of owner without their details. Each table is
// a stub and TotalTables carries the count.
func (s *Syncer) Tables(ctx context.Context, owner string, limit int) (erpbrain.Schema, error) {
	tables, err := s.TableNames(ctx, owner, limit)
	if err != nil {
		return erpbrain.Schema{}, err
	}

	schema := s.newSchema(owner)
	total := len(tables)
	schema.TotalTables = &total
	for _, table := range tables {
		schema.Tables[table] = erpbrain.TableSchema{Stub: true}
	}
	return schema, nil
}

func (s *Syncer) newSchema(owner string) erpbrain.Schema {
	return erpbrain.Schema{
		GeneratedAtUTC: s.now().UTC().Format(TimestampLayout),
		Owner:          owner,
		Tables:         make(map[string]erpbrain.TableSchema),
	}
}

func (s *Syncer) fetchTable(ctx context.Context, owner, table string) (erpbrain.TableSchema, error) {
	columns, err := s.querier.Query(ctx, ColumnsSQL(owner, table))
	if err != nil {
		return erpbrain.TableSchema{}, err
	}
	pkuk, err := s.querier.Query(ctx, PrimaryUniqueSQL(owner, table))
	if err != nil {
		return erpbrain.TableSchema{}, err
	}
	fks, err := s.querier.Query(ctx, ForeignKeysSQL(owner, table))
	if err != nil {
		return erpbrain.TableSchema{}, err
	}

	return erpbrain.TableSchema{
		Columns:     columns,
		Constraints: erpbrain.Constraints{PrimaryUnique: pkuk, ForeignKeys: fks},
	}, nil
}

func (s *Syncer) pause(ctx context.Context) error {
	if s.throttle <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.throttle)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
