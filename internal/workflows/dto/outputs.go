package dto

import "go-controls/pkg/bags"

type ListItemsOutput struct {
	Body []bags.ListItemBag
}
