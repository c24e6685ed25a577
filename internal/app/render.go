package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/nhle/todolists/internal/model"
	"github.com/nhle/todolists/internal/theme"
)

// dueSoonWindow is how close a due date must be to be highlighted.
const dueSoonWindow = 24 * time.Hour

// RenderLists renders one line per list with its locator.
func RenderLists(lists []model.TodoList) string {
	if len(lists) == 0 {
		return theme.LocatorStyle.Render("no lists")
	}
	lines := make([]string, 0, len(lists))
	for _, l := range lists {
		lines = append(lines, renderEntityLine(theme.ListTitleStyle.Render(l.String()), l))
	}
	return strings.Join(lines, "\n")
}

// RenderList renders a list header followed by its items in the given order.
func RenderList(list model.TodoList, items []model.TodoItem, now time.Time) string {
	var b strings.Builder
	b.WriteString(renderEntityLine(theme.ListTitleStyle.Render(list.String()), list))
	for _, it := range items {
		b.WriteString("\n")
		b.WriteString(theme.ItemStyle.Render(renderItemLine(it, now)))
	}
	if len(items) == 0 {
		b.WriteString("\n")
		b.WriteString(theme.ItemStyle.Render(theme.LocatorStyle.Render("no items")))
	}
	return b.String()
}

// RenderItem renders a single item's details in a panel.
func RenderItem(item model.TodoItem, now time.Time) string {
	lines := []string{
		renderItemLine(item, now),
		fmt.Sprintf("list:    %s", item.TodoListID),
		fmt.Sprintf("created: %s", item.CreatedAt.Format(time.RFC3339)),
		fmt.Sprintf("updated: %s", item.UpdatedAt.Format(time.RFC3339)),
	}
	if item.Description != "" {
		lines = append(lines, "", item.Description)
	}
	return theme.DetailPanelStyle.Render(strings.Join(lines, "\n"))
}

func renderItemLine(item model.TodoItem, now time.Time) string {
	overdue := item.IsOverdue(now)
	dueSoon := !overdue && item.DueDate.Sub(now) <= dueSoonWindow
	line := theme.DueStyle(overdue, dueSoon).Render(item.String())
	return renderEntityLine(line, item)
}

func renderEntityLine(label string, e model.Entity) string {
	return label + "  " + theme.LocatorStyle.Render(e.URL())
}
