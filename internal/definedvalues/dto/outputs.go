package dto

import "go-controls/pkg/bags"

// ListItemsOutput is a plain list of picker items
type ListItemsOutput struct {
	Body []bags.ListItemBag
}

// ListItemOutput is a single picker item
type ListItemOutput struct {
	Body bags.ListItemBag
}
