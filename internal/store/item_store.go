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

const itemColumns = "id, todo_list_id, title, description, due_date, created_at, updated_at"

// itemRow is the stored shape of a todo_items row.
type itemRow struct {
	ID          string `db:"id"`
	TodoListID  string `db:"todo_list_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	DueDate     int64  `db:"due_date"`
	CreatedAt   int64  `db:"created_at"`
	UpdatedAt   int64  `db:"updated_at"`
}

func (r itemRow) toModel() model.TodoItem {
	return model.TodoItem{
		ID:          r.ID,
		TodoListID:  r.TodoListID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     fromNanos(r.DueDate),
		CreatedAt:   fromNanos(r.CreatedAt),
		UpdatedAt:   fromNanos(r.UpdatedAt),
	}
}

// CreateItem inserts a new item. Generates a UUID if ID is empty.
// An unknown owning list fails with ErrNotFound.
func (s *SQLiteStore) CreateItem(ctx context.Context, item model.TodoItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("item title must not be empty")
	}
	if item.TodoListID == "" {
		return fmt.Errorf("item must belong to a list")
	}
	if !model.DueDateInRange(item.DueDate) {
		return fmt.Errorf("item due date %s out of storable range", item.DueDate)
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = item.CreatedAt
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO todo_items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.TodoListID, item.Title, item.Description,
		toNanos(item.DueDate), toNanos(item.CreatedAt), toNanos(item.UpdatedAt),
	)
	switch {
	case isForeignKeyViolation(err):
		return fmt.Errorf("creating item: list %s: %w", item.TodoListID, ErrNotFound)
	case isUniqueViolation(err):
		return fmt.Errorf("creating item %s: %w", item.ID, ErrAlreadyExists)
	case err != nil:
		return fmt.Errorf("creating item: %w", err)
	}
	return nil
}

// UpdateItem overwrites every mutable column of an existing item.
func (s *SQLiteStore) UpdateItem(ctx context.Context, item model.TodoItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("item title must not be empty")
	}
	if !model.DueDateInRange(item.DueDate) {
		return fmt.Errorf("item due date %s out of storable range", item.DueDate)
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE todo_items SET
			todo_list_id = ?, title = ?, description = ?,
			due_date = ?, updated_at = ?
		WHERE id = ?`,
		item.TodoListID, item.Title, item.Description,
		toNanos(item.DueDate), toNanos(item.UpdatedAt),
		item.ID,
	)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("updating item %s: list %s: %w", item.ID, item.TodoListID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("updating item %s: %w", item.ID, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("item %s: %w", item.ID, ErrNotFound)
	}
	return nil
}

// DeleteItem removes an item by ID.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM todo_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetItemByID retrieves a single item by ID.
func (s *SQLiteStore) GetItemByID(
	ctx context.Context,
	id string,
) (*model.TodoItem, error) {
	var row itemRow
	err := s.db.GetContext(ctx, &row,
		"SELECT "+itemColumns+" FROM todo_items WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting item %s: %w", id, err)
	}
	item := row.toModel()
	return &item, nil
}

// GetItemsByList retrieves a list's items ascending by due date. Items due
// at the same instant keep insertion order.
func (s *SQLiteStore) GetItemsByList(
	ctx context.Context,
	listID string,
) ([]model.TodoItem, error) {
	var rows []itemRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT `+itemColumns+` FROM todo_items
		WHERE todo_list_id = ?
		ORDER BY due_date ASC, seq ASC`, listID)
	if err != nil {
		return nil, fmt.Errorf("querying items for list %s: %w", listID, err)
	}

	items := make([]model.TodoItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toModel())
	}
	return items, nil
}
