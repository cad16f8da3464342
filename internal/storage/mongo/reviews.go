package mongo

import (
	"context"

	"homzen/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *Storage) GetReviews(ctx context.Context) ([]models.Review, error) {
	return findMany[models.Review](ctx, s.collection(reviewsCollection), bson.M{}, newestFirst())
}

func (s *Storage) GetReviewsByProperty(ctx context.Context, propertyId string) ([]models.Review, error) {
	return findMany[models.Review](ctx, s.collection(reviewsCollection), bson.M{`propertyId`: propertyId}, newestFirst())
}

func (s *Storage) GetReviewsByEmail(ctx context.Context, email string) ([]models.Review, error) {
	return findMany[models.Review](ctx, s.collection(reviewsCollection), bson.M{`reviewerEmail`: email}, newestFirst())
}

func (s *Storage) CreateReview(ctx context.Context, review models.Review) (models.InsertResult, error) {
	review.Id = ``
	return insertOne(ctx, s.collection(reviewsCollection), review)
}

func (s *Storage) DeleteReview(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteResult(s.collection(reviewsCollection).DeleteOne(ctx, byId(id)))
}
