package document

import "time"

// Meta is document-level metadata. Content never lives here: what a document
// currently says is always read from its version log, so there is no mutable
// content field to drift out of sync.
type Meta struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	OwnerID   string    `json:"ownerId,omitempty" bson:"ownerId,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
