package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SehajBehl/docvault/internal/version"
)

// MongoLog persists version records in a MongoDB collection. The unique
// compound index on (documentId, versionNumber) is what makes Append safe
// across processes: two racing writers that compute the same next number
// collide on insert and the loser recomputes. versionId carries its own
// unique index as the secondary storage key.
type MongoLog struct {
	col *mongo.Collection
}

func NewMongoLog(col *mongo.Collection) *MongoLog {
	_, _ = col.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "documentId", Value: 1}, {Key: "versionNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "versionId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return &MongoLog{col: col}
}

// appendAttempts bounds the recompute-and-retry loop on numbering collisions.
const appendAttempts = 5

func (l *MongoLog) Append(ctx context.Context, documentID, content, authorID string) (*version.Version, error) {
	for attempt := 0; attempt < appendAttempts; attempt++ {
		next, err := l.nextNumber(ctx, documentID)
		if err != nil {
			return nil, fmt.Errorf("%w: read max version number: %v", version.ErrStorage, err)
		}
		v := &version.Version{
			VersionID:  uuid.NewString(),
			DocumentID: documentID,
			Number:     next,
			Content:    content,
			AuthorID:   authorID,
			CreatedAt:  time.Now().UTC(),
		}
		_, err = l.col.InsertOne(ctx, v)
		if err == nil {
			return v, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			// lost the numbering race to a concurrent writer
			continue
		}
		return nil, fmt.Errorf("%w: insert version: %v", version.ErrStorage, err)
	}
	return nil, fmt.Errorf("%w: could not assign a version number for document %s", version.ErrStorage, documentID)
}

func (l *MongoLog) nextNumber(ctx context.Context, documentID string) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "versionNumber", Value: -1}})
	var last version.Version
	err := l.col.FindOne(ctx, bson.M{"documentId": documentID}, opts).Decode(&last)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.Number + 1, nil
}

func (l *MongoLog) GetAll(ctx context.Context, documentID string) ([]*version.Version, error) {
	opts := options.Find().SetSort(bson.D{{Key: "versionNumber", Value: 1}})
	cur, err := l.col.Find(ctx, bson.M{"documentId": documentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find versions: %v", version.ErrStorage, err)
	}
	defer cur.Close(ctx)
	out := []*version.Version{}
	for cur.Next(ctx) {
		var v version.Version
		if err := cur.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: decode version: %v", version.ErrStorage, err)
		}
		out = append(out, &v)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate versions: %v", version.ErrStorage, err)
	}
	return out, nil
}

func (l *MongoLog) GetByVersionID(ctx context.Context, documentID, versionID string) (*version.Version, error) {
	var v version.Version
	err := l.col.FindOne(ctx, bson.M{"documentId": documentID, "versionId": versionID}).Decode(&v)
	if err == mongo.ErrNoDocuments {
		return nil, version.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find version: %v", version.ErrStorage, err)
	}
	return &v, nil
}

func (l *MongoLog) Latest(ctx context.Context, documentID string) (*version.Version, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "versionNumber", Value: -1}})
	var v version.Version
	err := l.col.FindOne(ctx, bson.M{"documentId": documentID}, opts).Decode(&v)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find latest version: %v", version.ErrStorage, err)
	}
	return &v, nil
}
