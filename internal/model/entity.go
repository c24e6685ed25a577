package model

import "time"

// Entity is a persisted record that external routing can address.
// Both TodoList and TodoItem implement it.
type Entity interface {
	GetID() string
	URL() string
	String() string
}

// TodoList implements Entity.

func (l TodoList) GetID() string { return l.ID }

// TodoItem implements Entity.

func (i TodoItem) GetID() string { return i.ID }

// IsOverdue reports whether the item's due date has passed as of now.
func (i TodoItem) IsOverdue(now time.Time) bool {
	return i.DueDate.Before(now)
}
