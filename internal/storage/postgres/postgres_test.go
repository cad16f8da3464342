package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"homzen/internal/models"
	"homzen/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func newMock(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return &Storage{Db: sqlx.NewDb(mockDB, driverName)}, mock
}

func TestCreateWishlistItem(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO wishlist (id, property_id, email, title, location, image, price, agent_name, agent_email, created_at)`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := s.CreateWishlistItem(context.Background(), models.WishlistItem{PropertyId: "p1", Email: "buyer@homzen.test"})

	assert.NoError(t, err)
	assert.True(t, result.Acknowledged)
	assert.True(t, models.ValidId(result.InsertedId))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWishlistItemDuplicate(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectExec(`INSERT INTO wishlist`).WillReturnError(&pq.Error{Code: uniqueViolation})

	_, err := s.CreateWishlistItem(context.Background(), models.WishlistItem{PropertyId: "p1", Email: "buyer@homzen.test"})

	assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserOtherError(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectExec(`INSERT INTO users`).WillReturnError(errors.New("connection refused"))

	_, err := s.CreateUser(context.Background(), models.User{Email: "a@homzen.test"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestGetPropertyById(t *testing.T) {
	s, mock := newMock(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "location", "image", "price", "bedrooms", "bathrooms", "area", "agent_name", "agent_email", "verification_status", "created_at"}).
		AddRow("p1", "Loft", "", "Dhaka", "", 1200.5, 2, 1, 80.0, "Agent", "agent@homzen.test", models.VerificationVerified, created)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM properties WHERE id = $1`)).WithArgs("p1").WillReturnRows(rows)

	property, err := s.GetPropertyById(context.Background(), "p1")

	assert.NoError(t, err)
	assert.Equal(t, "Loft", property.Title)
	assert.Equal(t, 2, property.Bedrooms)
	assert.Equal(t, created, property.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPropertyByIdNotFound(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(`FROM properties WHERE id`).WithArgs("missing").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.GetPropertyById(context.Background(), "missing")

	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetVerifiedPropertiesEmpty(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE verification_status = $1 ORDER BY created_at DESC`)).
		WithArgs(models.VerificationVerified).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	properties, err := s.GetVerifiedProperties(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, properties)
	assert.Empty(t, properties)
}

func TestRejectOtherOffers(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE offers SET status = $1 WHERE property_id = $2 AND id <> $3`)).
		WithArgs(models.OfferReject, "p1", "o1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	result, err := s.RejectOtherOffers(context.Background(), "p1", "o1")

	assert.NoError(t, err)
	assert.Equal(t, models.UpdateResult{Acknowledged: true, MatchedCount: 2, ModifiedCount: 2}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePropertyPartial(t *testing.T) {
	s, mock := newMock(t)

	title := "Penthouse"
	price := 99000.0

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE properties SET title = $1, price = $2 WHERE id = $3`)).
		WithArgs(title, price, "p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := s.UpdateProperty(context.Background(), "p1", models.PropertyUpdate{Title: &title, Price: &price})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserStatusFraud(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET role = $1, status = $2 WHERE id = $3`)).
		WithArgs(models.RoleFraud, models.RoleFraud, "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := s.UpdateUserStatus(context.Background(), "u1", models.UserStatusUpdate{Role: models.RoleFraud, Status: models.RoleFraud})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePropertiesByAgent(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM properties WHERE agent_email = $1`)).
		WithArgs("agent@homzen.test").
		WillReturnResult(sqlmock.NewResult(0, 3))

	result, err := s.DeletePropertiesByAgent(context.Background(), "agent@homzen.test")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), result.DeletedCount)
}

func TestDeleteWishlistItemMissing(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectExec(`DELETE FROM wishlist WHERE id`).WithArgs("w1").WillReturnResult(sqlmock.NewResult(0, 0))

	result, err := s.DeleteWishlistItem(context.Background(), "w1")

	assert.NoError(t, err)
	assert.Equal(t, models.DeleteResult{Acknowledged: true, DeletedCount: 0}, result)
}
