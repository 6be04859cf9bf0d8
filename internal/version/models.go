package version

import "time"

// Version is one immutable full-content snapshot of a document. Records are
// only ever appended to the log; nothing updates or deletes them afterwards.
//
// VersionID is the storage key (unique across all documents); Number is the
// 1-based human-facing ordinal within the document and is gapless per
// document. Content is a full snapshot, not a diff, which keeps rollback a
// plain copy.
type Version struct {
	VersionID  string    `json:"versionId" bson:"versionId"`
	DocumentID string    `json:"documentId" bson:"documentId"`
	Number     int       `json:"versionNumber" bson:"versionNumber"`
	Content    string    `json:"content" bson:"content"`
	AuthorID   string    `json:"authorId" bson:"authorId"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}
