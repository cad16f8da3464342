package postgres

import (
	"context"

	"homzen/internal/models"
)

const reviewColumns = `id, property_id, property_title, reviewer_name, reviewer_email, reviewer_image, comment, created_at`

func (s *Storage) GetReviews(ctx context.Context) ([]models.Review, error) {
	return selectMany[models.Review](ctx, s.Db, `SELECT `+reviewColumns+` FROM reviews ORDER BY created_at DESC`)
}

func (s *Storage) GetReviewsByProperty(ctx context.Context, propertyId string) ([]models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE property_id = $1 ORDER BY created_at DESC`
	return selectMany[models.Review](ctx, s.Db, query, propertyId)
}

func (s *Storage) GetReviewsByEmail(ctx context.Context, email string) ([]models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE reviewer_email = $1 ORDER BY created_at DESC`
	return selectMany[models.Review](ctx, s.Db, query, email)
}

func (s *Storage) CreateReview(ctx context.Context, review models.Review) (models.InsertResult, error) {
	review.Id = models.NewId()
	return s.insert(ctx, `reviews`, review.Id, review)
}

func (s *Storage) DeleteReview(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.delete(ctx, `DELETE FROM reviews WHERE id = $1`, id)
}
