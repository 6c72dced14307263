package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alcyxob/clipclass/internal/storage"
)

// snapshotDocument is one named blob; _id is the snapshot key.
type snapshotDocument struct {
	Key       string    `bson:"_id"`
	Payload   []byte    `bson:"payload"`
	Size      int       `bson:"size"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoSnapshotStore implements storage.SnapshotStore on a MongoDB collection.
type mongoSnapshotStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoSnapshotStore stores snapshots in db.collectionName. The store owns
// client and disconnects it on Close; pass nil to keep ownership elsewhere.
func NewMongoSnapshotStore(client *mongo.Client, db *mongo.Database, collectionName string) storage.SnapshotStore {
	return &mongoSnapshotStore{
		client:     client,
		collection: db.Collection(collectionName),
	}
}

// Load fetches the blob stored under key.
func (r *mongoSnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	var doc snapshotDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, storage.ErrSnapshotNotFound
		}
		return nil, err
	}
	return doc.Payload, nil
}

// Save upserts the blob under key, replacing any previous version.
func (r *mongoSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	doc := snapshotDocument{
		Key:       key,
		Payload:   data,
		Size:      len(data),
		UpdatedAt: time.Now().UTC(),
	}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (r *mongoSnapshotStore) Close() error {
	if r.client == nil {
		return nil
	}
	return DisconnectDB(r.client)
}

// EnsureSnapshotIndexes creates the indexes used by operators inspecting snapshot history.
func EnsureSnapshotIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "updatedAt", Value: -1}},
		Options: options.Index().SetName("snapshot_updated_at"),
	})
	return err
}
