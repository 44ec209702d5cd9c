package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Note statuses form a fixed enum. "Concepts" is the default and is rendered
// as the "To Do" column by the dashboard.
const (
	StatusConcepts   = "Concepts"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// ValidStatus reports whether s is one of the fixed note statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusConcepts, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Note represents a user-owned note. Every note has exactly one owner and is
// only visible to and mutable by that owner.
type Note struct {
	ID          bson.ObjectID `bson:"_id,omitempty"   json:"id"`
	UserID      bson.ObjectID `bson:"user_id"         json:"userId"`
	Title       string        `bson:"title"           json:"title"`
	Content     string        `bson:"content"         json:"content"`
	Subject     string        `bson:"subject"         json:"subject"`
	Tags        []string      `bson:"tags"            json:"tags"`
	ResourceURL string        `bson:"resource_url"    json:"resourceUrl"`
	Status      string        `bson:"status"          json:"status"`
	IsStarred   bool          `bson:"is_starred"      json:"isStarred"`
	CreatedAt   time.Time     `bson:"created_at"      json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updated_at"      json:"updatedAt"`
}
