package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/todolists/internal/model"
)

// listRow is the stored shape of a todo_lists row.
type listRow struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	CreatedAt int64  `db:"created_at"`
}

func (r listRow) toModel() model.TodoList {
	return model.TodoList{
		ID:        r.ID,
		Title:     r.Title,
		CreatedAt: fromNanos(r.CreatedAt),
	}
}

// CreateList inserts a new list. Generates a UUID if ID is empty.
// A title already in use fails with ErrAlreadyExists.
func (s *SQLiteStore) CreateList(ctx context.Context, list model.TodoList) error {
	if strings.TrimSpace(list.Title) == "" {
		return fmt.Errorf("list title must not be empty")
	}
	if list.ID == "" {
		list.ID = uuid.New().String()
	}
	if list.CreatedAt.IsZero() {
		list.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO todo_lists (id, title, created_at) VALUES (?, ?, ?)",
		list.ID, list.Title, toNanos(list.CreatedAt),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("creating list %q: %w", list.Title, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("creating list: %w", err)
	}
	return nil
}

// UpdateList renames an existing list.
func (s *SQLiteStore) UpdateList(ctx context.Context, list model.TodoList) error {
	if strings.TrimSpace(list.Title) == "" {
		return fmt.Errorf("list title must not be empty")
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE todo_lists SET title = ? WHERE id = ?",
		list.Title, list.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("updating list %s to %q: %w", list.ID, list.Title, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("updating list %s: %w", list.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("list %s: %w", list.ID, ErrNotFound)
	}
	return nil
}

// DeleteList removes a list. Its items are removed by ON DELETE CASCADE.
func (s *SQLiteStore) DeleteList(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM todo_lists WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting list %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("list %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetListByID retrieves a single list by ID.
func (s *SQLiteStore) GetListByID(
	ctx context.Context,
	id string,
) (*model.TodoList, error) {
	var row listRow
	err := s.db.GetContext(ctx, &row,
		"SELECT id, title, created_at FROM todo_lists WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("list %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting list %s: %w", id, err)
	}
	list := row.toModel()
	return &list, nil
}

// GetLists retrieves all lists in creation order.
func (s *SQLiteStore) GetLists(ctx context.Context) ([]model.TodoList, error) {
	var rows []listRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT id, title, created_at FROM todo_lists ORDER BY created_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("querying lists: %w", err)
	}

	lists := make([]model.TodoList, 0, len(rows))
	for _, r := range rows {
		lists = append(lists, r.toModel())
	}
	return lists, nil
}
