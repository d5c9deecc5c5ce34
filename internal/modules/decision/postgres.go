package decision

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository returns a Repository backed by the decisions table.
// The *sql.DB pool is owned by the caller and shared across requests.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// storeErr keeps backend detail printable in logs while callers match only
// the ErrStoreUnavailable sentinel.
func storeErr(op string, err error) error {
	return fmt.Errorf("decision: %s: %w: %v", op, ErrStoreUnavailable, err)
}

func scanDecision(scan func(...interface{}) error) (*Decision, error) {
	d := &Decision{}
	err := scan(&d.ID, &d.Text, &d.Outcome, &d.Success, &d.Category, &d.Owner, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *postgresRepo) List(ctx context.Context, category string) ([]*Decision, error) {
	query := `SELECT id,text,outcome,success,category,owner,created_at FROM decisions`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category=$1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list", err)
	}
	defer rows.Close()

	var decisions []*Decision
	for rows.Next() {
		d, err := scanDecision(rows.Scan)
		if err != nil {
			return nil, storeErr("list", err)
		}
		decisions = append(decisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list", err)
	}
	return decisions, nil
}

func (r *postgresRepo) Create(ctx context.Context, d *Decision) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO decisions (id, text, outcome, success, category, owner, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		d.ID, d.Text, d.Outcome, d.Success, d.Category, d.Owner, d.CreatedAt)
	if err != nil {
		return storeErr("create", err)
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) (int64, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		// a malformed id behaves like a missing record
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM decisions WHERE id=$1`, uid)
	if err != nil {
		return 0, storeErr("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storeErr("delete", err)
	}
	return n, nil
}

func (r *postgresRepo) EditText(ctx context.Context, id, text string) (*Decision, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	row := r.db.QueryRowContext(ctx, `
		UPDATE decisions SET text=$1 WHERE id=$2
		RETURNING id,text,outcome,success,category,owner,created_at`, text, uid)
	d, err := scanDecision(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("edit text", err)
	}
	return d, nil
}

func (r *postgresRepo) EditOutcome(ctx context.Context, id, outcome string, success *bool) (int64, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE decisions SET outcome=$1, success=$2 WHERE id=$3`,
		outcome, success, uid)
	if err != nil {
		return 0, storeErr("edit outcome", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storeErr("edit outcome", err)
	}
	return n, nil
}

func (r *postgresRepo) EditSuccess(ctx context.Context, id string, success bool) (*Decision, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE decisions SET success=$1 WHERE id=$2`, success, uid)
	if err != nil {
		return nil, storeErr("edit success", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, storeErr("edit success", err)
	}
	if n == 0 {
		return nil, nil
	}
	// the update alone does not return the new row, so re-read it
	row := r.db.QueryRowContext(ctx, `
		SELECT id,text,outcome,success,category,owner,created_at
		FROM decisions WHERE id=$1`, uid)
	d, err := scanDecision(row.Scan)
	if err != nil {
		return nil, storeErr("edit success", err)
	}
	return d, nil
}
