package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const recordsTable = "records"

// RecordRepo is a key/value table of JSON documents.
type RecordRepo struct {
	drv *entsql.Driver
	now func() time.Time
}

func (r *RecordRepo) builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *RecordRepo) timestamp() time.Time {
	if r.now != nil {
		return r.now().UTC()
	}
	return time.Now().UTC()
}

// Get returns the document stored under key.
func (r *RecordRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b := r.builder()
	query, args := b.Select("data").
		From(b.Table(recordsTable)).
		Where(entsql.EQ("key", key)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, false, fmt.Errorf("query record %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, false, fmt.Errorf("read record %q: %w", key, err)
		}
		return nil, false, nil
	}
	var data string
	if err := rows.Scan(&data); err != nil {
		return nil, false, fmt.Errorf("scan record %q: %w", key, err)
	}
	return []byte(data), true, nil
}

// Put inserts or replaces the document stored under key.
func (r *RecordRepo) Put(ctx context.Context, key string, data []byte) error {
	query, args := r.builder().Insert(recordsTable).
		Columns("key", "data", "updated_at").
		Values(key, string(data), r.timestamp()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save record %q: %w", key, err)
	}
	return nil
}

// Delete removes the document stored under key. Deleting a missing key is
// not an error.
func (r *RecordRepo) Delete(ctx context.Context, key string) error {
	query, args := r.builder().Delete(recordsTable).
		Where(entsql.EQ("key", key)).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}

// UpdatedAt returns when the document under key was last written.
func (r *RecordRepo) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	b := r.builder()
	query, args := b.Select("updated_at").
		From(b.Table(recordsTable)).
		Where(entsql.EQ("key", key)).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return time.Time{}, false, fmt.Errorf("query record %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		return time.Time{}, false, rows.Err()
	}
	var ts time.Time
	if err := rows.Scan(&ts); err != nil {
		return time.Time{}, false, fmt.Errorf("scan record %q: %w", key, err)
	}
	return ts, true, nil
}
