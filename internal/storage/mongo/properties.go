package mongo

import (
	"context"

	"homzen/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *Storage) GetVerifiedProperties(ctx context.Context) ([]models.Property, error) {
	filter := bson.M{`verificationStatus`: models.VerificationVerified}
	return findMany[models.Property](ctx, s.collection(propertiesCollection), filter, newestFirst())
}

func (s *Storage) GetProperties(ctx context.Context) ([]models.Property, error) {
	return findMany[models.Property](ctx, s.collection(propertiesCollection), bson.M{}, newestFirst())
}

func (s *Storage) GetPropertiesByAgent(ctx context.Context, email string) ([]models.Property, error) {
	filter := bson.M{`agentEmail`: email}
	return findMany[models.Property](ctx, s.collection(propertiesCollection), filter, newestFirst())
}

func (s *Storage) GetPropertyById(ctx context.Context, id string) (models.Property, error) {
	return findOne[models.Property](ctx, s.collection(propertiesCollection), byId(id))
}

func (s *Storage) CreateProperty(ctx context.Context, property models.Property) (models.InsertResult, error) {
	property.Id = ``
	return insertOne(ctx, s.collection(propertiesCollection), property)
}

func (s *Storage) UpdateProperty(ctx context.Context, id string, update models.PropertyUpdate) (models.UpdateResult, error) {
	return updateResult(s.collection(propertiesCollection).UpdateOne(ctx, byId(id), bson.M{`$set`: update}))
}

func (s *Storage) UpdateVerificationStatus(ctx context.Context, id string, status string) (models.UpdateResult, error) {
	update := bson.M{`$set`: bson.M{`verificationStatus`: status}}
	return updateResult(s.collection(propertiesCollection).UpdateOne(ctx, byId(id), update))
}

func (s *Storage) DeleteProperty(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteResult(s.collection(propertiesCollection).DeleteOne(ctx, byId(id)))
}

func (s *Storage) DeletePropertiesByAgent(ctx context.Context, email string) (models.DeleteResult, error) {
	return deleteResult(s.collection(propertiesCollection).DeleteMany(ctx, bson.M{`agentEmail`: email}))
}
