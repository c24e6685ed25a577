package todo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/nhle/todolists/internal/model"
	"github.com/nhle/todolists/internal/store"
)

// Lists is the registry of to-do lists.
type Lists struct {
	store  store.Store
	logger *log.Logger
	now    func() time.Time
}

// NewLists returns a registry backed by s. A nil logger discards output.
func NewLists(s store.Store, logger *log.Logger, opts ...Option) *Lists {
	o := applyOptions(opts)
	return &Lists{store: s, logger: orDiscard(logger), now: o.now}
}

// Create persists a new list with a generated ID. A title already used by
// another list fails with ErrDuplicateTitle.
func (l *Lists) Create(ctx context.Context, title string) (*model.TodoList, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	list := model.TodoList{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: l.now().UTC(),
	}
	if err := l.store.CreateList(ctx, list); err != nil {
		return nil, mapListError(err)
	}

	l.logger.Debug("list created", "id", list.ID, "title", list.Title)
	return &list, nil
}

// Rename changes a list's title under the same rules as Create.
func (l *Lists) Rename(ctx context.Context, id, title string) (*model.TodoList, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	list, err := l.store.GetListByID(ctx, id)
	if err != nil {
		return nil, err
	}
	list.Title = title
	if err := l.store.UpdateList(ctx, *list); err != nil {
		return nil, mapListError(err)
	}

	l.logger.Debug("list renamed", "id", id, "title", title)
	return list, nil
}

// Get returns the list with the given ID.
func (l *Lists) Get(ctx context.Context, id string) (*model.TodoList, error) {
	return l.store.GetListByID(ctx, id)
}

// All returns every list in creation order.
func (l *Lists) All(ctx context.Context) ([]model.TodoList, error) {
	return l.store.GetLists(ctx)
}

// Delete removes a list together with all of its items.
func (l *Lists) Delete(ctx context.Context, id string) error {
	if err := l.store.DeleteList(ctx, id); err != nil {
		return err
	}
	l.logger.Debug("list deleted", "id", id)
	return nil
}

func mapListError(err error) error {
	if errors.Is(err, store.ErrAlreadyExists) {
		return fmt.Errorf("%w: %w", duplicateTitleError(), err)
	}
	return err
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
