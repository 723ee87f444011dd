package migrations

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	Register(Migration{
		Version:     "006_seed_entity_types",
		Description: "Seed the entity types the pickers resolve entities through",
		Up:          up006,
		Down:        down006,
	})
}

type seedEntityType struct {
	name, friendlyName, collection, icon string
	common                               bool
}

var seededEntityTypes = []seedEntityType{
	{"Person", "Person", "people", "fa fa-user", true},
	{"Group", "Group", "groups", "fa fa-users", true},
	{"Location", "Location", "locations", "fa fa-map-marker", false},
	{"DefinedValue", "Defined Value", "defined_values", "fa fa-list", false},
	{"FinancialAccount", "Financial Account", "financial_accounts", "fa fa-money", false},
	{"Page", "Page", "pages", "fa fa-file", false},
	{"WorkflowType", "Workflow Type", "workflow_types", "fa fa-cogs", false},
}

// EntityTypeGuid is the stable guid seeded for an entity type name
func EntityTypeGuid(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("go-controls/entitytype/"+name)).String()
}

func up006(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection("entity_types")
	for _, et := range seededEntityTypes {
		doc := bson.M{
			"guid":           EntityTypeGuid(et.name),
			"name":           et.name,
			"friendly_name":  et.friendlyName,
			"collection":     et.collection,
			"icon_css_class": et.icon,
			"is_entity":      true,
			"is_common":      et.common,
		}
		// Leave entity types an administrator already edited alone
		opts := options.Update().SetUpsert(true)
		if _, err := collection.UpdateOne(ctx, bson.M{"name": et.name}, bson.M{"$setOnInsert": doc}, opts); err != nil {
			return err
		}
	}
	return nil
}

func down006(ctx context.Context, db *mongo.Database) error {
	names := make([]string, 0, len(seededEntityTypes))
	for _, et := range seededEntityTypes {
		names = append(names, et.name)
	}
	_, err := db.Collection("entity_types").DeleteMany(ctx, bson.M{"name": bson.M{"$in": names}})
	return err
}
