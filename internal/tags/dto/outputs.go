package dto

// TagBag describes a tag for the entity tag list control
type TagBag struct {
	IdKey           string `json:"idKey" doc:"Guid of the tag"`
	Name            string `json:"name"`
	CategoryGuid    string `json:"categoryGuid,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	IconCssClass    string `json:"iconCssClass,omitempty"`
	IsPersonal      bool   `json:"isPersonal"`
}

// TagsOutput is a list of tags
type TagsOutput struct {
	Body []TagBag
}

// TagOutput is a single tag
type TagOutput struct {
	Body TagBag
}

// EmptyOutput acknowledges a request without a payload
type EmptyOutput struct{}
