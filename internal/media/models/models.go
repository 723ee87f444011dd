package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	MediaAccountsCollection = "media_accounts"
	MediaFoldersCollection  = "media_folders"
	MediaElementsCollection = "media_elements"
)

// MediaAccount is a connection to an external media provider
type MediaAccount struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid     string             `bson:"guid" json:"guid"`
	Name     string             `bson:"name" json:"name"`
	Provider string             `bson:"provider,omitempty" json:"provider,omitempty"`
	IsActive bool               `bson:"is_active" json:"is_active"`
}

// MediaFolder groups media elements inside an account
type MediaFolder struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid             string             `bson:"guid" json:"guid"`
	MediaAccountGuid string             `bson:"media_account_guid" json:"media_account_guid"`
	Name             string             `bson:"name" json:"name"`
}

// MediaElement is one video or audio item
type MediaElement struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Guid            string             `bson:"guid" json:"guid"`
	MediaFolderGuid string             `bson:"media_folder_guid" json:"media_folder_guid"`
	Name            string             `bson:"name" json:"name"`
	DurationSeconds int                `bson:"duration_seconds,omitempty" json:"duration_seconds,omitempty"`
	ThumbnailUrl    string             `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
}
