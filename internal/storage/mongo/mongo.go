package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homzen/internal/models"
	"homzen/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection      = `users`
	propertiesCollection = `properties`
	wishlistCollection   = `wishlist`
	offersCollection     = `offers`
	reviewsCollection    = `reviews`
)

type Storage struct {
	Client *mongo.Client
	Db     *mongo.Database
}

var _ storage.Database = (*Storage)(nil)

func New(ctx context.Context, uri string, dbName string) (*Storage, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &Storage{Client: client, Db: client.Database(dbName)}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// EnsureIndexes creates the unique keys the stores rely on for insert-if-absent
// and the createdAt indexes used by the newest-first listings.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	byCreatedAt := mongo.IndexModel{Keys: bson.D{{Key: `createdAt`, Value: -1}}}

	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: `email`, Value: 1}}, Options: unique},
		},
		propertiesCollection: {
			{Keys: bson.D{{Key: `agentEmail`, Value: 1}}},
			{Keys: bson.D{{Key: `verificationStatus`, Value: 1}, {Key: `createdAt`, Value: -1}}},
			byCreatedAt,
		},
		wishlistCollection: {
			{Keys: bson.D{{Key: `propertyId`, Value: 1}, {Key: `email`, Value: 1}}, Options: unique},
		},
		offersCollection: {
			{Keys: bson.D{{Key: `propertyId`, Value: 1}, {Key: `buyerEmail`, Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: `agentEmail`, Value: 1}}},
		},
		reviewsCollection: {
			{Keys: bson.D{{Key: `propertyId`, Value: 1}}},
			byCreatedAt,
		},
	}

	for name, idx := range indexes {
		if _, err := s.Db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}

	return nil
}

func (s *Storage) collection(name string) *mongo.Collection {
	return s.Db.Collection(name)
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: `createdAt`, Value: -1}})
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) (T, error) {
	var item T

	err := coll.FindOne(ctx, filter).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return item, storage.ErrNotFound
	}

	return item, err
}

// insertOne leaves _id to the driver, which assigns an ObjectID; the
// acknowledgement carries its hex form.
func insertOne(ctx context.Context, coll *mongo.Collection, document interface{}) (models.InsertResult, error) {
	res, err := coll.InsertOne(ctx, document)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.InsertResult{}, storage.ErrAlreadyExists
		}
		return models.InsertResult{}, err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.InsertResult{}, fmt.Errorf("unexpected inserted id %v", res.InsertedID)
	}

	return models.InsertResult{Acknowledged: true, InsertedId: oid.Hex()}, nil
}

func updateResult(res *mongo.UpdateResult, err error) (models.UpdateResult, error) {
	if err != nil {
		return models.UpdateResult{}, err
	}

	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func deleteResult(res *mongo.DeleteResult, err error) (models.DeleteResult, error) {
	if err != nil {
		return models.DeleteResult{}, err
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// objectId parses a hex id. Malformed ids map to the nil ObjectID, which no
// stored document carries, so lookups miss instead of erroring.
func objectId(id string) primitive.ObjectID {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}

	return oid
}

func byId(id string) bson.M {
	return bson.M{`_id`: objectId(id)}
}
