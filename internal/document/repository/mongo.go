package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/SehajBehl/docvault/internal/document"
)

// MongoRepo stores document metadata in a MongoDB collection, keyed by the
// externally supplied document id.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepo{col: col}
}

func (r *MongoRepo) Upsert(ctx context.Context, meta *document.Meta) (*document.Meta, error) {
	now := time.Now().UTC()
	set := bson.M{"updatedAt": now}
	if meta.Name != "" {
		set["name"] = meta.Name
	}
	if meta.OwnerID != "" {
		set["ownerId"] = meta.OwnerID
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"id": meta.ID, "createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var updated document.Meta
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"id": meta.ID}, update, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoRepo) Get(ctx context.Context, id string) (*document.Meta, error) {
	var meta document.Meta
	err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&meta)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

func (r *MongoRepo) List(ctx context.Context) ([]*document.Meta, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*document.Meta{}
	for cur.Next(ctx) {
		var meta document.Meta
		if err := cur.Decode(&meta); err != nil {
			return nil, err
		}
		out = append(out, &meta)
	}
	return out, cur.Err()
}

func (r *MongoRepo) Touch(ctx context.Context, id string, at time.Time) error {
	update := bson.M{
		"$set":         bson.M{"updatedAt": at},
		"$setOnInsert": bson.M{"id": id, "createdAt": at},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, bson.M{"id": id}, update, opts)
	return err
}
