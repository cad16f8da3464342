package mongo

import (
	"context"

	"homzen/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *Storage) GetWishlistByEmail(ctx context.Context, email string) ([]models.WishlistItem, error) {
	return findMany[models.WishlistItem](ctx, s.collection(wishlistCollection), bson.M{`email`: email}, newestFirst())
}

func (s *Storage) GetWishlistItemById(ctx context.Context, id string) (models.WishlistItem, error) {
	return findOne[models.WishlistItem](ctx, s.collection(wishlistCollection), byId(id))
}

func (s *Storage) CreateWishlistItem(ctx context.Context, item models.WishlistItem) (models.InsertResult, error) {
	item.Id = ``
	return insertOne(ctx, s.collection(wishlistCollection), item)
}

func (s *Storage) DeleteWishlistItem(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteResult(s.collection(wishlistCollection).DeleteOne(ctx, byId(id)))
}

func (s *Storage) DeleteWishlistItemByProperty(ctx context.Context, propertyId string, email string) (models.DeleteResult, error) {
	filter := bson.M{`propertyId`: propertyId, `email`: email}
	return deleteResult(s.collection(wishlistCollection).DeleteOne(ctx, filter))
}
