package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	Register(Migration{
		Version:     "005_create_content_indexes",
		Description: "Create indexes for badges, media, pages and workflow types",
		Up:          up005,
		Down:        down005,
	})
}

var contentCollections = []string{
	"badges", "media_accounts", "media_folders", "media_elements",
	"pages", "page_routes", "workflow_types",
}

func up005(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, map[string][]mongo.IndexModel{
		"badges":         {uniqueGuid()},
		"media_accounts": {uniqueGuid(), ascending("is_active", "name")},
		"media_folders":  {uniqueGuid(), ascending("media_account_guid", "name")},
		"media_elements": {uniqueGuid(), ascending("media_folder_guid", "name")},
		"pages":          {uniqueGuid(), ascending("parent_page_guid", "order")},
		"page_routes":    {uniqueGuid(), ascending("page_guid", "route")},
		"workflow_types": {uniqueGuid(), ascending("category_guid", "is_active")},
	})
}

func down005(ctx context.Context, db *mongo.Database) error {
	return dropIndexes(ctx, db, contentCollections...)
}
