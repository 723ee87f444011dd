// Package bags holds the transfer objects shared by every control endpoint.
package bags

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ListItemBag is a single selectable item in a list control
type ListItemBag struct {
	Value    string `json:"value" doc:"Stable identifier of the item"`
	Text     string `json:"text" doc:"Display label"`
	Category string `json:"category,omitempty" doc:"Optional grouping label"`
	Disabled bool   `json:"disabled,omitempty" doc:"Item is shown but cannot be selected"`
}

// TreeItemBag is a node in a tree control. Children is nil when the node was not expanded.
type TreeItemBag struct {
	Value        string         `json:"value" doc:"Stable identifier of the node"`
	Text         string         `json:"text" doc:"Display label"`
	IsFolder     bool           `json:"isFolder"`
	IconCssClass string         `json:"iconCssClass,omitempty"`
	IsActive     bool           `json:"isActive"`
	HasChildren  bool           `json:"hasChildren"`
	ChildCount   int            `json:"childCount,omitempty"`
	Children     []*TreeItemBag `json:"children,omitempty"`
}

// SetChildren attaches children and keeps HasChildren/ChildCount consistent with them
func (t *TreeItemBag) SetChildren(children []*TreeItemBag) {
	if children == nil {
		children = []*TreeItemBag{}
	}
	t.Children = children
	t.ChildCount = len(children)
	t.HasChildren = len(children) > 0
}

// Sortable is anything with an explicit order and a display label
type Sortable interface {
	SortOrder() int
	SortText() string
}

// SortByOrderThenText sorts in place by explicit order, then by label using English collation
func SortByOrderThenText[T Sortable](items []T) {
	col := collate.New(language.English, collate.IgnoreCase, collate.Loose)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].SortOrder() != items[j].SortOrder() {
			return items[i].SortOrder() < items[j].SortOrder()
		}
		return col.CompareString(items[i].SortText(), items[j].SortText()) < 0
	})
}

// SortListItems sorts list items by label, case and accent insensitive
func SortListItems(items []ListItemBag) {
	col := collate.New(language.English, collate.IgnoreCase, collate.Loose)
	sort.SliceStable(items, func(i, j int) bool {
		return col.CompareString(items[i].Text, items[j].Text) < 0
	})
}
