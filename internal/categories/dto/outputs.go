package dto

import "go-controls/pkg/bags"

// TreeItemsOutput is a list of tree nodes
type TreeItemsOutput struct {
	Body []*bags.TreeItemBag
}

// ListItemsOutput is a plain list of picker items
type ListItemsOutput struct {
	Body []bags.ListItemBag
}
