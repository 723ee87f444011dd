package bags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sortable struct {
	order int
	text  string
}

func (s sortable) SortOrder() int   { return s.order }
func (s sortable) SortText() string { return s.text }

func TestSortByOrderThenText(t *testing.T) {
	items := []sortable{
		{order: 1, text: "zeta"},
		{order: 0, text: "beta"},
		{order: 0, text: "Alpha"},
		{order: 1, text: "Élan"},
	}

	SortByOrderThenText(items)

	assert.Equal(t, []string{"Alpha", "beta", "Élan", "zeta"}, []string{
		items[0].text, items[1].text, items[2].text, items[3].text,
	})
}

func TestSortListItems(t *testing.T) {
	items := []ListItemBag{{Text: "banana"}, {Text: "Apple"}, {Text: "cherry"}}
	SortListItems(items)
	assert.Equal(t, "Apple", items[0].Text)
	assert.Equal(t, "banana", items[1].Text)
	assert.Equal(t, "cherry", items[2].Text)
}

func TestTreeItemBag_SetChildren(t *testing.T) {
	node := &TreeItemBag{Value: "root"}

	node.SetChildren(nil)
	assert.NotNil(t, node.Children)
	assert.False(t, node.HasChildren)
	assert.Equal(t, 0, node.ChildCount)

	node.SetChildren([]*TreeItemBag{{Value: "a"}, {Value: "b"}})
	assert.True(t, node.HasChildren)
	assert.Equal(t, 2, node.ChildCount)
}
