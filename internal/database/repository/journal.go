package repository

import (
	"context"
	"database/sql"
	"strings"
)

// JournalFilters narrows Recent.
type JournalFilters struct {
	Kind    string
	EntryID string
	Limit   int // <= 0 means no limit
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// JournalRepo handles the transition journal.
type JournalRepo struct {
	db querier
}

func NewJournalRepo(db *sql.DB) *JournalRepo { return &JournalRepo{db: db} }

// WithTx returns a repo whose statements run inside tx.
func WithTx(tx *sql.Tx) *JournalRepo { return &JournalRepo{db: tx} }

func (r *JournalRepo) Append(ctx context.Context, rec Record) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO journal(
	 id, kind, list_id, entry_id, content, source_container, source_index,
	 dest_container, dest_index, revision, created_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`,
		rec.ID, rec.Kind, rec.ListID, rec.EntryID, rec.Content, rec.SourceContainer, rec.SourceIndex,
		rec.DestContainer, rec.DestIndex, int64(rec.Revision))
	return err
}

// Recent returns matching records, newest first.
func (r *JournalRepo) Recent(ctx context.Context, f JournalFilters) ([]Record, error) {
	var where []string
	var args []interface{}

	if f.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, f.Kind)
	}
	if f.EntryID != "" {
		where = append(where, "entry_id = ?")
		args = append(args, f.EntryID)
	}

	query := "SELECT id, kind, list_id, entry_id, content, source_container, source_index, dest_container, dest_index, revision, created_at FROM journal"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY rowid DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Count returns the number of records.
func (r *JournalRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM journal`).Scan(&n)
	return n, err
}

// Clear removes every record. The schema stays intact.
func (r *JournalRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM journal`)
	return err
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var rec Record
	var (
		srcIdx, dstIdx sql.NullInt64
		revision       int64
	)
	if err := rows.Scan(&rec.ID, &rec.Kind, &rec.ListID, &rec.EntryID, &rec.Content,
		&rec.SourceContainer, &srcIdx, &rec.DestContainer, &dstIdx, &revision, &rec.CreatedAt); err != nil {
		return Record{}, err
	}
	if srcIdx.Valid {
		v := int(srcIdx.Int64)
		rec.SourceIndex = &v
	}
	if dstIdx.Valid {
		v := int(dstIdx.Int64)
		rec.DestIndex = &v
	}
	rec.Revision = uint64(revision)
	return rec, nil
}
