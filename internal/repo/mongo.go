package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pkordes/servicelog/internal/domain"
)

// MongoSlotCollection is the collection that holds one document per slot.
const MongoSlotCollection = "storage_slots"

// slotDocument is the stored shape of a slot: the key is the document id.
type slotDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// mongoSlotRepo implements SlotRepo for MongoDB.
type mongoSlotRepo struct {
	collection *mongo.Collection
}

// NewMongoSlotRepo constructs a SlotRepo over the given collection.
func NewMongoSlotRepo(collection *mongo.Collection) SlotRepo {
	return &mongoSlotRepo{collection: collection}
}

// ConnectMongo connects to MongoDB at uri and verifies the connection with a ping.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("repo.ConnectMongo: connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("repo.ConnectMongo: ping: %w", err)
	}
	return client, nil
}

func (r *mongoSlotRepo) Get(ctx context.Context, key string) (string, error) {
	var doc slotDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", fmt.Errorf("repo.MongoSlotRepo.Get: %w", domain.ErrNotFound)
		}
		return "", fmt.Errorf("repo.MongoSlotRepo.Get: %w", err)
	}
	return doc.Value, nil
}

func (r *mongoSlotRepo) Put(ctx context.Context, key, value string) error {
	if err := validateKey(key); err != nil {
		return fmt.Errorf("repo.MongoSlotRepo.Put: %w", err)
	}
	doc := slotDocument{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("repo.MongoSlotRepo.Put: %w", err)
	}
	return nil
}
