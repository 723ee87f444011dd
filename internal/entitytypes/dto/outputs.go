package dto

import "go-controls/pkg/bags"

// ListItemsOutput is a plain list of picker items
type ListItemsOutput struct {
	Body []bags.ListItemBag
}
