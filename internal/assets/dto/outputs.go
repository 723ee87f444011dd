package dto

import (
	"time"

	"go-controls/pkg/bags"
)

// AssetBag describes one file in an asset folder
type AssetBag struct {
	Name        string    `json:"name"`
	Path        string    `json:"path" doc:"Root relative path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType"`
	Modified    time.Time `json:"modified"`
}

type TreeItemsOutput struct {
	Body []*bags.TreeItemBag
}

type AssetsOutput struct {
	Body []AssetBag
}

type AssetOutput struct {
	Body AssetBag
}

// PathBag returns the root relative path of a created or renamed folder
type PathBag struct {
	Path string `json:"path"`
}

type PathOutput struct {
	Body PathBag
}

type EmptyOutput struct{}
