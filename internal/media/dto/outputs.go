package dto

import "go-controls/pkg/bags"

type ListItemsOutput struct {
	Body []bags.ListItemBag
}

// MediaTreeBag holds the lists of every picker level and the resolved selection
type MediaTreeBag struct {
	MediaAccount  *bags.ListItemBag  `json:"mediaAccount,omitempty"`
	MediaFolder   *bags.ListItemBag  `json:"mediaFolder,omitempty"`
	MediaElement  *bags.ListItemBag  `json:"mediaElement,omitempty"`
	MediaAccounts []bags.ListItemBag `json:"mediaAccounts"`
	MediaFolders  []bags.ListItemBag `json:"mediaFolders"`
	MediaElements []bags.ListItemBag `json:"mediaElements"`
}

type MediaTreeOutput struct {
	Body MediaTreeBag
}
