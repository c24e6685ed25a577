package model

import (
	"fmt"
	"math"
	"time"
)

// DefaultDueIn is how far ahead an item is due when no due date is given.
const DefaultDueIn = 7 * 24 * time.Hour

// Due dates are stored as unix nanoseconds, which bounds them to
// roughly 1677-09-21 through 2262-04-11.
var (
	MinDueDate = time.Unix(0, math.MinInt64).UTC()
	MaxDueDate = time.Unix(0, math.MaxInt64).UTC()
)

// DueDateInRange reports whether t lies within [MinDueDate, MaxDueDate].
func DueDateInRange(t time.Time) bool {
	return !t.Before(MinDueDate) && !t.After(MaxDueDate)
}

// TodoItem is a task owned by exactly one TodoList.
type TodoItem struct {
	ID          string    `json:"id" db:"id"`
	TodoListID  string    `json:"todo_list_id" db:"todo_list_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DueDate     time.Time `json:"due_date" db:"due_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// String formats the item as "<title>: due <due date>".
func (i TodoItem) String() string {
	return fmt.Sprintf("%s: due %s", i.Title, i.DueDate)
}

// URL returns the canonical path of the item's update view.
func (i TodoItem) URL() string {
	return ItemURL(i.TodoListID, i.ID)
}

// ItemURL builds the update path for an item within its owning list.
func ItemURL(listID, itemID string) string {
	return fmt.Sprintf("/list/%s/item/%s/", listID, itemID)
}

// NewItem holds the caller-supplied fields for creating an item.
// A nil DueDate means the default is applied at creation.
type NewItem struct {
	ListID      string
	Title       string
	Description string
	DueDate     *time.Time
}

// Build materializes the item as of now. The due date default is derived
// from now and dueIn, never from a later clock read. Times are normalized
// to UTC without a monotonic reading, matching what the store returns.
func (n NewItem) Build(id string, now time.Time, dueIn time.Duration) TodoItem {
	now = now.UTC()
	due := now.Add(dueIn)
	if n.DueDate != nil {
		due = n.DueDate.UTC()
	}
	return TodoItem{
		ID:          id,
		TodoListID:  n.ListID,
		Title:       n.Title,
		Description: n.Description,
		DueDate:     due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ItemUpdate is a partial update. Nil fields are left unchanged.
type ItemUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	TodoListID  *string
}

// IsEmpty reports whether the update changes nothing.
func (u ItemUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.DueDate == nil && u.TodoListID == nil
}

// Apply returns a copy of item with the update's non-nil fields set.
func (u ItemUpdate) Apply(item TodoItem) TodoItem {
	if u.Title != nil {
		item.Title = *u.Title
	}
	if u.Description != nil {
		item.Description = *u.Description
	}
	if u.DueDate != nil {
		item.DueDate = u.DueDate.UTC()
	}
	if u.TodoListID != nil {
		item.TodoListID = *u.TodoListID
	}
	return item
}
