package dto

import "go-controls/pkg/bags"

type TreeItemsOutput struct {
	Body []*bags.TreeItemBag
}

type GuidsOutput struct {
	Body []string
}

type ListItemsOutput struct {
	Body []bags.ListItemBag
}

type PageURLBag struct {
	URL string `json:"url"`
}

type PageURLOutput struct {
	Body PageURLBag
}
