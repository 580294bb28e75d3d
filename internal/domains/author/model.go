package author

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is a registered blog writer, stored in the authors collection.
// Authors are created once by registration and never updated or deleted.
type Author struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FirstName string             `json:"fname" bson:"fname"`
	LastName  string             `json:"lname" bson:"lname"`
	Title     string             `json:"title" bson:"title"`
	Email     string             `json:"email" bson:"email"`

	// bcrypt hash; never serialized
	Password string `json:"-" bson:"password"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
