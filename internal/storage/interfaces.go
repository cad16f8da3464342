package storage

import (
	"context"
	"errors"

	"homzen/internal/models"
)

var (
	ErrNotFound      = errors.New("document not found")
	ErrAlreadyExists = errors.New("document already exists")
	ErrCacheMiss     = errors.New("cache miss")
	ErrCacheStale    = errors.New("cache invalidated since read")
)

type UserStore interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUserById(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.InsertResult, error)
	UpdateUserStatus(ctx context.Context, id string, update models.UserStatusUpdate) (models.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (models.DeleteResult, error)
}

type PropertyStore interface {
	GetVerifiedProperties(ctx context.Context) ([]models.Property, error)
	GetProperties(ctx context.Context) ([]models.Property, error)
	GetPropertiesByAgent(ctx context.Context, email string) ([]models.Property, error)
	GetPropertyById(ctx context.Context, id string) (models.Property, error)
	CreateProperty(ctx context.Context, property models.Property) (models.InsertResult, error)
	UpdateProperty(ctx context.Context, id string, update models.PropertyUpdate) (models.UpdateResult, error)
	UpdateVerificationStatus(ctx context.Context, id string, status string) (models.UpdateResult, error)
	DeleteProperty(ctx context.Context, id string) (models.DeleteResult, error)
	DeletePropertiesByAgent(ctx context.Context, email string) (models.DeleteResult, error)
}

type WishlistStore interface {
	GetWishlistByEmail(ctx context.Context, email string) ([]models.WishlistItem, error)
	GetWishlistItemById(ctx context.Context, id string) (models.WishlistItem, error)
	CreateWishlistItem(ctx context.Context, item models.WishlistItem) (models.InsertResult, error)
	DeleteWishlistItem(ctx context.Context, id string) (models.DeleteResult, error)
	DeleteWishlistItemByProperty(ctx context.Context, propertyId string, email string) (models.DeleteResult, error)
}

type OfferStore interface {
	GetOffersByAgent(ctx context.Context, email string) ([]models.Offer, error)
	GetOffersByBuyer(ctx context.Context, email string) ([]models.Offer, error)
	GetOfferById(ctx context.Context, id string) (models.Offer, error)
	CreateOffer(ctx context.Context, offer models.Offer) (models.InsertResult, error)
	UpdateOfferStatus(ctx context.Context, id string, status string) (models.UpdateResult, error)
	RejectOtherOffers(ctx context.Context, propertyId string, acceptedId string) (models.UpdateResult, error)
	DeleteOffer(ctx context.Context, id string) (models.DeleteResult, error)
}

type ReviewStore interface {
	GetReviews(ctx context.Context) ([]models.Review, error)
	GetReviewsByProperty(ctx context.Context, propertyId string) ([]models.Review, error)
	GetReviewsByEmail(ctx context.Context, email string) ([]models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (models.InsertResult, error)
	DeleteReview(ctx context.Context, id string) (models.DeleteResult, error)
}

// Database is the full document store used by the handlers.
type Database interface {
	UserStore
	PropertyStore
	WishlistStore
	OfferStore
	ReviewStore
}

// Cache holds the serialized public listing of verified properties.
// Every DeleteVerifiedProperties bumps the generation; a Put carrying an
// older generation than the current one is refused with ErrCacheStale.
type Cache interface {
	GetVerifiedProperties(ctx context.Context) ([]byte, error)
	Generation(ctx context.Context) (int64, error)
	PutVerifiedProperties(ctx context.Context, generation int64, properties []models.Property) error
	DeleteVerifiedProperties(ctx context.Context)
}
