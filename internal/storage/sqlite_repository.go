package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Fixed width so that text order in ORDER BY matches time order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenSQLite opens (creating if needed) the database at path and brings
// its schema up to date.
func OpenSQLite(path string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite3 connections do not share PRAGMA state.
	db.SetMaxOpenConns(1)
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateList(ctx context.Context, in List) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO lists (id, name, icon, provider, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		in.ID, in.Name, in.Icon, in.Provider, mustTime(in.CreatedAt),
	)
	return err
}

func (r *SQLiteRepository) GetList(ctx context.Context, id string) (List, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, icon, provider, created_at
		FROM lists WHERE id = ?`, id)
	item, err := scanList(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return List{}, ErrNotFound
		}
		return List{}, err
	}
	return item, nil
}

func (r *SQLiteRepository) UpdateList(ctx context.Context, in List) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE lists SET name = ?, icon = ?, provider = ?
		WHERE id = ?`,
		in.Name, in.Icon, in.Provider, in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteList(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lists WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListLists(ctx context.Context, filter ListFilter) ([]List, error) {
	query := `SELECT id, name, icon, provider, created_at FROM lists`
	args := make([]any, 0, 3)
	if filter.Provider != "" {
		query += ` WHERE provider = ?`
		args = append(args, filter.Provider)
	}
	query += ` ORDER BY created_at ASC, rowid ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]List, 0)
	for rows.Next() {
		item, scanErr := scanList(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CreateTask(ctx context.Context, in Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, list_id, title, notes, priority, completed, favorite, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.ListID, in.Title, in.Notes, in.Priority, boolInt(in.Completed), boolInt(in.Favorite),
		mustTime(in.CreatedAt), nullTime(in.CompletedAt),
	)
	return err
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, list_id, title, notes, priority, completed, favorite, created_at, completed_at
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Task{}, ErrNotFound
		}
		return Task{}, err
	}
	return task, nil
}

func (r *SQLiteRepository) UpdateTask(ctx context.Context, in Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET list_id = ?, title = ?, notes = ?, priority = ?, completed = ?, favorite = ?, completed_at = ?
		WHERE id = ?`,
		in.ListID, in.Title, in.Notes, in.Priority, boolInt(in.Completed), boolInt(in.Favorite),
		nullTime(in.CompletedAt), in.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, listID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND list_id = ?`, id, listID)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) ListTasks(ctx context.Context, filter TaskListFilter) ([]Task, error) {
	query := `SELECT id, list_id, title, notes, priority, completed, favorite, created_at, completed_at FROM tasks`
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 4)
	if filter.ListID != "" {
		clauses = append(clauses, "list_id = ?")
		args = append(args, filter.ListID)
	}
	if filter.Completed != nil {
		clauses = append(clauses, "completed = ?")
		args = append(args, boolInt(*filter.Completed))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at ASC, rowid ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func nullTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.UTC().Format(sqliteTimeLayout)
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseNullableTime(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	tm, err := time.Parse(time.RFC3339Nano, v.String)
	if err != nil {
		return nil, err
	}
	return &tm, nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func applyPagination(args *[]any, limit, offset int) string {
	sql := ""
	if limit > 0 {
		sql += " LIMIT ?"
		*args = append(*args, limit)
	} else if offset > 0 {
		// sqlite only accepts OFFSET after a LIMIT.
		sql += " LIMIT -1"
	}
	if offset > 0 {
		sql += " OFFSET ?"
		*args = append(*args, offset)
	}
	return sql
}

type scanner interface {
	Scan(dest ...any) error
}

func scanList(s scanner) (List, error) {
	var out List
	var created string
	if err := s.Scan(&out.ID, &out.Name, &out.Icon, &out.Provider, &created); err != nil {
		return List{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return List{}, err
	}
	out.CreatedAt = createdAt
	return out, nil
}

func scanTask(s scanner) (Task, error) {
	var out Task
	var completed, favorite int
	var created string
	var completedAt sql.NullString
	if err := s.Scan(&out.ID, &out.ListID, &out.Title, &out.Notes, &out.Priority, &completed, &favorite, &created, &completedAt); err != nil {
		return Task{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Task{}, err
	}
	doneAt, err := parseNullableTime(completedAt)
	if err != nil {
		return Task{}, err
	}
	out.Completed = completed == 1
	out.Favorite = favorite == 1
	out.CreatedAt = createdAt
	out.CompletedAt = doneAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
