package models

type Banner struct {
	Base     `bson:",inline"`
	Title    string `bson:"title" json:"title" validate:"required"`
	ImageURL string `bson:"image_url" json:"image_url"`
	LinkURL  string `bson:"link_url,omitempty" json:"link_url,omitempty"`
	Position int    `bson:"position" json:"position"`
}

type FAQ struct {
	Base     `bson:",inline"`
	Question string `bson:"question" json:"question" validate:"required"`
	Answer   string `bson:"answer" json:"answer" validate:"required"`
	Position int    `bson:"position" json:"position"`
}

type Intro struct {
	Base     `bson:",inline"`
	Title    string `bson:"title" json:"title" validate:"required"`
	Body     string `bson:"body" json:"body"`
	ImageURL string `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Position int    `bson:"position" json:"position"`
}

// Configuration is a single key/value setting document.
type Configuration struct {
	Base  `bson:",inline"`
	Key   string `bson:"key" json:"key" validate:"required"`
	Value string `bson:"value" json:"value"`
}
