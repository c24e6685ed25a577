package store

import (
	"context"
	"errors"

	"github.com/nhle/todolists/internal/model"
)

var (
	// ErrNotFound indicates a referenced list or item does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness constraint rejected the write.
	ErrAlreadyExists = errors.New("record already exists")
)

// Store defines the persistence interface for to-do lists and their items.
// Implementations enforce list title uniqueness and cascade list deletion
// to items.
type Store interface {
	// === List CRUD ===

	CreateList(ctx context.Context, list model.TodoList) error
	UpdateList(ctx context.Context, list model.TodoList) error
	DeleteList(ctx context.Context, id string) error
	GetListByID(ctx context.Context, id string) (*model.TodoList, error)
	GetLists(ctx context.Context) ([]model.TodoList, error)

	// === Item CRUD ===

	CreateItem(ctx context.Context, item model.TodoItem) error
	UpdateItem(ctx context.Context, item model.TodoItem) error
	DeleteItem(ctx context.Context, id string) error
	GetItemByID(ctx context.Context, id string) (*model.TodoItem, error)
	// GetItemsByList returns a list's items ascending by due date,
	// ties in insertion order.
	GetItemsByList(ctx context.Context, listID string) ([]model.TodoItem, error)
}

var _ Store = (*SQLiteStore)(nil)
