package todo

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/nhle/todolists/internal/model"
	"github.com/nhle/todolists/internal/store"
)

// Items manages the items belonging to to-do lists.
type Items struct {
	store  store.Store
	logger *log.Logger
	now    func() time.Time
	dueIn  time.Duration
}

// NewItems returns an item store backed by s. A nil logger discards output.
func NewItems(s store.Store, logger *log.Logger, opts ...Option) *Items {
	o := applyOptions(opts)
	return &Items{store: s, logger: orDiscard(logger), now: o.now, dueIn: o.dueIn}
}

// Create adds an item to an existing list. The clock is read once; a missing
// due date becomes that instant plus the default due offset.
func (it *Items) Create(ctx context.Context, n model.NewItem) (*model.TodoItem, error) {
	now := it.now().UTC()

	if err := validateNewItem(n); err != nil {
		return nil, err
	}
	if _, err := it.store.GetListByID(ctx, n.ListID); err != nil {
		return nil, err
	}

	item := n.Build(uuid.New().String(), now, it.dueIn)
	if err := validateDueDate(item.DueDate); err != nil {
		return nil, err
	}
	if err := it.store.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	it.logger.Debug("item created",
		"id", item.ID, "list", item.TodoListID, "due", item.DueDate)
	return &item, nil
}

// Update applies a partial update. No field is re-defaulted.
func (it *Items) Update(ctx context.Context, id string, u model.ItemUpdate) (*model.TodoItem, error) {
	if err := validateItemUpdate(u); err != nil {
		return nil, err
	}

	current, err := it.store.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.IsEmpty() {
		return current, nil
	}

	updated := u.Apply(*current)
	updated.UpdatedAt = it.now().UTC()
	if err := it.store.UpdateItem(ctx, updated); err != nil {
		return nil, err
	}

	it.logger.Debug("item updated", "id", id)
	return &updated, nil
}

// Get returns the item with the given ID.
func (it *Items) Get(ctx context.Context, id string) (*model.TodoItem, error) {
	return it.store.GetItemByID(ctx, id)
}

// Delete removes an item.
func (it *Items) Delete(ctx context.Context, id string) error {
	if err := it.store.DeleteItem(ctx, id); err != nil {
		return err
	}
	it.logger.Debug("item deleted", "id", id)
	return nil
}

// ListByList returns the list's items ascending by due date, ties in
// insertion order.
func (it *Items) ListByList(ctx context.Context, listID string) ([]model.TodoItem, error) {
	if _, err := it.store.GetListByID(ctx, listID); err != nil {
		return nil, err
	}
	return it.store.GetItemsByList(ctx, listID)
}
