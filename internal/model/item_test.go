package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTodoListStringAndURL(t *testing.T) {
	l := TodoList{ID: "abc", Title: "Shopping List"}
	assert.Equal(t, "Shopping List", l.String())
	assert.Equal(t, "/list/abc/", l.URL())
	assert.Equal(t, "abc", l.GetID())
}

func TestTodoItemStringAndURL(t *testing.T) {
	due := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	i := TodoItem{ID: "i1", TodoListID: "l1", Title: "Task 1", DueDate: due}

	assert.Equal(t, "Task 1: due 2026-01-02 03:04:05 +0000 UTC", i.String())
	assert.Equal(t, "/list/l1/item/i1/", i.URL())
}

func TestNewItemBuild(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	got := NewItem{ListID: "l1", Title: "Task 1"}.Build("i1", now, DefaultDueIn)
	assert.Equal(t, now.Add(7*24*time.Hour), got.DueDate)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, now, got.CreatedAt)
	assert.Equal(t, now, got.UpdatedAt)

	due := now.Add(time.Hour)
	got = NewItem{ListID: "l1", Title: "Task 1", DueDate: &due}.Build("i1", now, DefaultDueIn)
	assert.Equal(t, due, got.DueDate)
}

func TestItemUpdateApply(t *testing.T) {
	due := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	item := TodoItem{ID: "i1", TodoListID: "l1", Title: "Task 1", Description: "a", DueDate: due}

	assert.True(t, ItemUpdate{}.IsEmpty())
	assert.Equal(t, item, ItemUpdate{}.Apply(item))

	title := "Task 2"
	got := ItemUpdate{Title: &title}.Apply(item)
	assert.Equal(t, "Task 2", got.Title)
	assert.Equal(t, "a", got.Description)
	assert.Equal(t, due, got.DueDate)
	assert.Equal(t, "Task 1", item.Title)
}

func TestTodoItemIsOverdue(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, TodoItem{DueDate: now.Add(-time.Minute)}.IsOverdue(now))
	assert.False(t, TodoItem{DueDate: now.Add(time.Minute)}.IsOverdue(now))
}

func TestDueDateInRange(t *testing.T) {
	assert.True(t, DueDateInRange(MinDueDate))
	assert.True(t, DueDateInRange(MaxDueDate))
	assert.True(t, DueDateInRange(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, DueDateInRange(MaxDueDate.Add(time.Nanosecond)))
	assert.False(t, DueDateInRange(MinDueDate.Add(-time.Nanosecond)))
	assert.False(t, DueDateInRange(time.Date(2300, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, DueDateInRange(time.Time{}))
}

func TestNewItemBuild_NormalizesDueDate(t *testing.T) {
	now := time.Now()
	zone := time.FixedZone("CEST", 2*60*60)
	due := time.Date(2026, 5, 1, 10, 0, 0, 0, zone)

	got := NewItem{ListID: "l1", Title: "Task 1", DueDate: &due}.Build("i1", now, DefaultDueIn)
	assert.Equal(t, time.UTC, got.DueDate.Location())
	assert.Equal(t, time.UTC, got.CreatedAt.Location())
	assert.Equal(t, "Task 1: due 2026-05-01 08:00:00 +0000 UTC", got.String())

	// Derived from time.Now, but no monotonic reading survives.
	defaulted := NewItem{ListID: "l1", Title: "Task 1"}.Build("i1", now, DefaultDueIn)
	assert.NotContains(t, defaulted.String(), "m=")

	updated := ItemUpdate{DueDate: &due}.Apply(got)
	assert.Equal(t, time.UTC, updated.DueDate.Location())
}
