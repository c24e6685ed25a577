package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todolists/internal/model"
	"github.com/nhle/todolists/internal/store"
	"github.com/nhle/todolists/tests/testutil"
)

var base = time.Date(2026, 3, 1, 9, 30, 0, 123456789, time.UTC)

func createList(t *testing.T, s store.Store, id, title string) {
	t.Helper()
	require.NoError(t, s.CreateList(context.Background(), model.TodoList{
		ID: id, Title: title, CreatedAt: base,
	}))
}

func createItem(t *testing.T, s store.Store, id, listID, title string, due time.Time) {
	t.Helper()
	require.NoError(t, s.CreateItem(context.Background(), model.TodoItem{
		ID: id, TodoListID: listID, Title: title, DueDate: due, CreatedAt: base,
	}))
}

func TestNewSQLiteStore_FileReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "todo.db")

	s, err := store.NewSQLiteStore(path)
	require.NoError(t, err)
	createList(t, s, "l1", "Shopping List")
	require.NoError(t, s.Close())

	s, err = store.NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	list, err := s.GetListByID(context.Background(), "l1")
	require.NoError(t, err)
	assert.Equal(t, "Shopping List", list.Title)
}

func TestCreateList_DuplicateTitle(t *testing.T) {
	s := testutil.NewTestStore(t)
	createList(t, s, "l1", "Shopping List")

	err := s.CreateList(context.Background(), model.TodoList{ID: "l2", Title: "Shopping List"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// Case-sensitive exact match.
	require.NoError(t, s.CreateList(context.Background(), model.TodoList{ID: "l3", Title: "shopping list"}))
}

func TestCreateList_GeneratesID(t *testing.T) {
	s := testutil.NewTestStore(t)
	require.NoError(t, s.CreateList(context.Background(), model.TodoList{Title: "Work Tasks"}))

	lists, err := s.GetLists(context.Background())
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.NotEmpty(t, lists[0].ID)
	assert.False(t, lists[0].CreatedAt.IsZero())
}

func TestUpdateList(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	createList(t, s, "l1", "Work Tasks")
	createList(t, s, "l2", "Home Tasks")

	require.NoError(t, s.UpdateList(ctx, model.TodoList{ID: "l1", Title: "Office Tasks"}))
	got, err := s.GetListByID(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, "Office Tasks", got.Title)

	err = s.UpdateList(ctx, model.TodoList{ID: "l1", Title: "Home Tasks"})
	assert.ErrorIs(t, err, store.ErrAlreadyExists)

	err = s.UpdateList(ctx, model.TodoList{ID: "missing", Title: "Anything"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetListByID_NotFound(t *testing.T) {
	s := testutil.NewTestStore(t)
	_, err := s.GetListByID(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteList_CascadesToItems(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	createList(t, s, "l1", "Work Tasks")
	createList(t, s, "l2", "Home Tasks")
	createItem(t, s, "i1", "l1", "Task 1", base)
	createItem(t, s, "i2", "l2", "Task 2", base)

	require.NoError(t, s.DeleteList(ctx, "l1"))

	_, err := s.GetItemByID(ctx, "i1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GetItemByID(ctx, "i2")
	assert.NoError(t, err)

	assert.ErrorIs(t, s.DeleteList(ctx, "l1"), store.ErrNotFound)
}

func TestCreateItem_UnknownList(t *testing.T) {
	s := testutil.NewTestStore(t)
	err := s.CreateItem(context.Background(), model.TodoItem{
		TodoListID: "missing", Title: "Task 1", DueDate: base,
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetItemByID_RoundTripsTimes(t *testing.T) {
	s := testutil.NewTestStore(t)
	createList(t, s, "l1", "Work Tasks")
	due := base.Add(7 * 24 * time.Hour)
	createItem(t, s, "i1", "l1", "Task 1", due)

	got, err := s.GetItemByID(context.Background(), "i1")
	require.NoError(t, err)
	assert.True(t, got.DueDate.Equal(due))
	assert.Equal(t, time.UTC, got.DueDate.Location())
	assert.Equal(t, "", got.Description)
	assert.Equal(t, "l1", got.TodoListID)
}

func TestGetItemsByList_OrderedByDueDate(t *testing.T) {
	s := testutil.NewTestStore(t)
	createList(t, s, "l1", "Home Tasks")
	createList(t, s, "l2", "Other")

	createItem(t, s, "late", "l1", "Late", base.Add(48*time.Hour))
	createItem(t, s, "tie-a", "l1", "Tie A", base.Add(24*time.Hour))
	createItem(t, s, "early", "l1", "Early", base.Add(time.Hour))
	createItem(t, s, "tie-b", "l1", "Tie B", base.Add(24*time.Hour))
	createItem(t, s, "elsewhere", "l2", "Elsewhere", base)

	items, err := s.GetItemsByList(context.Background(), "l1")
	require.NoError(t, err)

	var ids []string
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"early", "tie-a", "tie-b", "late"}, ids)
}

func TestUpdateItem(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	createList(t, s, "l1", "Work Tasks")
	createList(t, s, "l2", "Home Tasks")
	createItem(t, s, "i1", "l1", "Task 1", base)

	item, err := s.GetItemByID(ctx, "i1")
	require.NoError(t, err)
	item.TodoListID = "l2"
	item.Description = "moved"
	require.NoError(t, s.UpdateItem(ctx, *item))

	got, err := s.GetItemByID(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "l2", got.TodoListID)
	assert.Equal(t, "moved", got.Description)

	item.TodoListID = "missing"
	assert.ErrorIs(t, s.UpdateItem(ctx, *item), store.ErrNotFound)

	item.ID = "missing"
	item.TodoListID = "l1"
	assert.ErrorIs(t, s.UpdateItem(ctx, *item), store.ErrNotFound)
}

func TestDeleteItem(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	createList(t, s, "l1", "Work Tasks")
	createItem(t, s, "i1", "l1", "Task 1", base)

	require.NoError(t, s.DeleteItem(ctx, "i1"))
	assert.ErrorIs(t, s.DeleteItem(ctx, "i1"), store.ErrNotFound)
}

func TestCreateList_ConcurrentSameTitle(t *testing.T) {
	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "todo.db"))
	require.NoError(t, err)
	defer s.Close()

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			errs[i] = s.CreateList(context.Background(), model.TodoList{Title: "Shopping List"})
		}()
	}
	close(start)
	wg.Wait()

	var created, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, store.ErrAlreadyExists):
			duplicates++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, duplicates)

	lists, err := s.GetLists(context.Background())
	require.NoError(t, err)
	assert.Len(t, lists, 1)
}

func TestCreateItem_RejectsUnstorableDueDate(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	createList(t, s, "l1", "Work Tasks")

	far := time.Date(2300, 1, 1, 0, 0, 0, 0, time.UTC)
	err := s.CreateItem(ctx, model.TodoItem{ID: "i1", TodoListID: "l1", Title: "Task 1", DueDate: far})
	require.Error(t, err)
	_, err = s.GetItemByID(ctx, "i1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	createItem(t, s, "i2", "l1", "Task 2", base)
	item, err := s.GetItemByID(ctx, "i2")
	require.NoError(t, err)
	item.DueDate = far
	require.Error(t, s.UpdateItem(ctx, *item))

	got, err := s.GetItemByID(ctx, "i2")
	require.NoError(t, err)
	assert.True(t, got.DueDate.Equal(base))
}
