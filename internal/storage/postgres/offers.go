package postgres

import (
	"context"

	"homzen/internal/models"
)

const offerColumns = `id, property_id, title, location, agent_name, agent_email, buyer_name, buyer_email, amount, status, created_at`

func (s *Storage) GetOffersByAgent(ctx context.Context, email string) ([]models.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE agent_email = $1 ORDER BY created_at DESC`
	return selectMany[models.Offer](ctx, s.Db, query, email)
}

func (s *Storage) GetOffersByBuyer(ctx context.Context, email string) ([]models.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE buyer_email = $1 ORDER BY created_at DESC`
	return selectMany[models.Offer](ctx, s.Db, query, email)
}

func (s *Storage) GetOfferById(ctx context.Context, id string) (models.Offer, error) {
	return selectOne[models.Offer](ctx, s.Db, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)
}

func (s *Storage) CreateOffer(ctx context.Context, offer models.Offer) (models.InsertResult, error) {
	offer.Id = models.NewId()
	return s.insert(ctx, `offers`, offer.Id, offer)
}

func (s *Storage) UpdateOfferStatus(ctx context.Context, id string, status string) (models.UpdateResult, error) {
	return s.update(ctx, `UPDATE offers SET status = $1 WHERE id = $2`, status, id)
}

func (s *Storage) RejectOtherOffers(ctx context.Context, propertyId string, acceptedId string) (models.UpdateResult, error) {
	query := `UPDATE offers SET status = $1 WHERE property_id = $2 AND id <> $3`
	return s.update(ctx, query, models.OfferReject, propertyId, acceptedId)
}

func (s *Storage) DeleteOffer(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.delete(ctx, `DELETE FROM offers WHERE id = $1`, id)
}
