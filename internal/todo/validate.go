package todo

import (
	"fmt"
	"strings"
	"time"

	"github.com/nhle/todolists/internal/model"
)

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	return nil
}

func validateDueDate(due time.Time) error {
	if !model.DueDateInRange(due) {
		return &ValidationError{
			Field:  "due_date",
			Reason: fmt.Sprintf("must be between %s and %s", model.MinDueDate.Format(time.RFC3339), model.MaxDueDate.Format(time.RFC3339)),
		}
	}
	return nil
}

func validateNewItem(n model.NewItem) error {
	if strings.TrimSpace(n.ListID) == "" {
		return &ValidationError{Field: "todo_list", Reason: "must not be empty"}
	}
	if err := validateTitle(n.Title); err != nil {
		return err
	}
	if n.DueDate != nil {
		return validateDueDate(*n.DueDate)
	}
	return nil
}

func validateItemUpdate(u model.ItemUpdate) error {
	if u.Title != nil {
		if err := validateTitle(*u.Title); err != nil {
			return err
		}
	}
	if u.TodoListID != nil && strings.TrimSpace(*u.TodoListID) == "" {
		return &ValidationError{Field: "todo_list", Reason: "must not be empty"}
	}
	if u.DueDate != nil {
		return validateDueDate(*u.DueDate)
	}
	return nil
}
