// Package listview implements the client-facing collection view helpers:
// live substring search over a rendered list, stable column sorting with
// numeric/locale-aware comparison, and a debounce utility.
package listview

import (
	"fmt"
	"strings"
)

// Item is one pre-enumerated entry of a rendered list. Text is the full
// visible text of the entry; Visible is toggled by Search.
type Item struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Visible bool   `json:"visible"`
}

// NewItems wraps raw texts as visible items.
func NewItems(texts ...string) []Item {
	items := make([]Item, len(texts))
	for i, t := range texts {
		items[i] = Item{ID: fmt.Sprintf("item-%d", i), Text: t, Visible: true}
	}
	return items
}

// Search toggles visibility of each item by case-insensitive substring
// match against the query and returns the number of visible items. An
// empty query makes every item visible.
//
// Search runs on every keystroke; it is intentionally not debounced (the
// Debounce helper exists but is not wired into this path).
func Search(items []Item, query string) int {
	q := strings.ToLower(query)
	visible := 0
	for i := range items {
		items[i].Visible = strings.Contains(strings.ToLower(items[i].Text), q)
		if items[i].Visible {
			visible++
		}
	}
	return visible
}

// Counter formats the "Showing X of Y results" label.
func Counter(visible, total int) string {
	return fmt.Sprintf("Showing %d of %d results", visible, total)
}
