package postgres

import (
	"context"

	"homzen/internal/models"
	"homzen/internal/queries"
)

const propertyColumns = `id, title, description, location, image, price, bedrooms, bathrooms, area, agent_name, agent_email, verification_status, created_at`

func (s *Storage) GetVerifiedProperties(ctx context.Context) ([]models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE verification_status = $1 ORDER BY created_at DESC`
	return selectMany[models.Property](ctx, s.Db, query, models.VerificationVerified)
}

func (s *Storage) GetProperties(ctx context.Context) ([]models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at DESC`
	return selectMany[models.Property](ctx, s.Db, query)
}

func (s *Storage) GetPropertiesByAgent(ctx context.Context, email string) ([]models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE agent_email = $1 ORDER BY created_at DESC`
	return selectMany[models.Property](ctx, s.Db, query, email)
}

func (s *Storage) GetPropertyById(ctx context.Context, id string) (models.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	return selectOne[models.Property](ctx, s.Db, query, id)
}

func (s *Storage) CreateProperty(ctx context.Context, property models.Property) (models.InsertResult, error) {
	property.Id = models.NewId()
	return s.insert(ctx, `properties`, property.Id, property)
}

func (s *Storage) UpdateProperty(ctx context.Context, id string, update models.PropertyUpdate) (models.UpdateResult, error) {
	query, args, err := queries.UpdateById(`properties`, update, id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	return s.update(ctx, query, args...)
}

func (s *Storage) UpdateVerificationStatus(ctx context.Context, id string, status string) (models.UpdateResult, error) {
	return s.update(ctx, `UPDATE properties SET verification_status = $1 WHERE id = $2`, status, id)
}

func (s *Storage) DeleteProperty(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.delete(ctx, `DELETE FROM properties WHERE id = $1`, id)
}

func (s *Storage) DeletePropertiesByAgent(ctx context.Context, email string) (models.DeleteResult, error) {
	return s.delete(ctx, `DELETE FROM properties WHERE agent_email = $1`, email)
}
