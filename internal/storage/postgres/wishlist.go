package postgres

import (
	"context"

	"homzen/internal/models"
)

const wishlistColumns = `id, property_id, email, title, location, image, price, agent_name, agent_email, created_at`

func (s *Storage) GetWishlistByEmail(ctx context.Context, email string) ([]models.WishlistItem, error) {
	query := `SELECT ` + wishlistColumns + ` FROM wishlist WHERE email = $1 ORDER BY created_at DESC`
	return selectMany[models.WishlistItem](ctx, s.Db, query, email)
}

func (s *Storage) GetWishlistItemById(ctx context.Context, id string) (models.WishlistItem, error) {
	return selectOne[models.WishlistItem](ctx, s.Db, `SELECT `+wishlistColumns+` FROM wishlist WHERE id = $1`, id)
}

func (s *Storage) CreateWishlistItem(ctx context.Context, item models.WishlistItem) (models.InsertResult, error) {
	item.Id = models.NewId()
	return s.insert(ctx, `wishlist`, item.Id, item)
}

func (s *Storage) DeleteWishlistItem(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.delete(ctx, `DELETE FROM wishlist WHERE id = $1`, id)
}

func (s *Storage) DeleteWishlistItemByProperty(ctx context.Context, propertyId string, email string) (models.DeleteResult, error) {
	return s.delete(ctx, `DELETE FROM wishlist WHERE property_id = $1 AND email = $2`, propertyId, email)
}
