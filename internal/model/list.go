package model

import (
	"fmt"
	"time"
)

// TodoList is a named container of items. Titles are unique across lists.
type TodoList struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// String returns the list title verbatim.
func (l TodoList) String() string {
	return l.Title
}

// URL returns the canonical path of the list's detail view.
func (l TodoList) URL() string {
	return ListURL(l.ID)
}

// ListURL builds the detail path for the list with the given ID.
func ListURL(listID string) string {
	return fmt.Sprintf("/list/%s/", listID)
}
