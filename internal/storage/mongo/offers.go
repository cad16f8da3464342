package mongo

import (
	"context"

	"homzen/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *Storage) GetOffersByAgent(ctx context.Context, email string) ([]models.Offer, error) {
	return findMany[models.Offer](ctx, s.collection(offersCollection), bson.M{`agentEmail`: email}, newestFirst())
}

func (s *Storage) GetOffersByBuyer(ctx context.Context, email string) ([]models.Offer, error) {
	return findMany[models.Offer](ctx, s.collection(offersCollection), bson.M{`buyerEmail`: email}, newestFirst())
}

func (s *Storage) GetOfferById(ctx context.Context, id string) (models.Offer, error) {
	return findOne[models.Offer](ctx, s.collection(offersCollection), byId(id))
}

func (s *Storage) CreateOffer(ctx context.Context, offer models.Offer) (models.InsertResult, error) {
	offer.Id = ``
	return insertOne(ctx, s.collection(offersCollection), offer)
}

func (s *Storage) UpdateOfferStatus(ctx context.Context, id string, status string) (models.UpdateResult, error) {
	update := bson.M{`$set`: bson.M{`status`: status}}
	return updateResult(s.collection(offersCollection).UpdateOne(ctx, byId(id), update))
}

func (s *Storage) RejectOtherOffers(ctx context.Context, propertyId string, acceptedId string) (models.UpdateResult, error) {
	filter := bson.M{`propertyId`: propertyId, `_id`: bson.M{`$ne`: objectId(acceptedId)}}
	update := bson.M{`$set`: bson.M{`status`: models.OfferReject}}
	return updateResult(s.collection(offersCollection).UpdateMany(ctx, filter, update))
}

func (s *Storage) DeleteOffer(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteResult(s.collection(offersCollection).DeleteOne(ctx, byId(id)))
}
