package models

// Permission names a module and the three access flags a role holds on it.
type Permission struct {
	Module string `bson:"module" json:"module" validate:"required"`
	Read   bool   `bson:"read" json:"read"`
	Write  bool   `bson:"write" json:"write"`
	Delete bool   `bson:"delete" json:"delete"`
}

type Role struct {
	Base        `bson:",inline"`
	Name        string       `bson:"name" json:"name" validate:"required"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Permissions []Permission `bson:"permissions" json:"permissions"`
}
