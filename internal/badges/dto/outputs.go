package dto

import "go-controls/pkg/bags"

// RenderedBadgeBag is one badge rendered for an entity
type RenderedBadgeBag struct {
	BadgeGuid string `json:"badgeGuid"`
	CssClass  string `json:"cssClass,omitempty"`
	Html      string `json:"html" doc:"Sanitised markup"`
}

// ListItemsOutput is a plain list of picker items
type ListItemsOutput struct {
	Body []bags.ListItemBag
}

// RenderedBadgesOutput lists rendered badges in display order
type RenderedBadgesOutput struct {
	Body []RenderedBadgeBag
}
