package dto

import "go-controls/pkg/bags"

type TreeItemsOutput struct {
	Body []*bags.TreeItemBag
}

// FormattedValue is the template expression of a merge field
type FormattedValue struct {
	Value string `json:"value" example:"{{ Person.Campus.Name }}"`
}

type FormatValueOutput struct {
	Body FormattedValue
}
