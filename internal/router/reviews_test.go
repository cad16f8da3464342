package router

import (
	"encoding/json"
	"net/http"
	"testing"

	"homzen/internal/models"
	"homzen/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const reviewId = `65a1f0c2b3d4e5f607182935`

func TestReviewHandlers(t *testing.T) {
	reviews := []models.Review{{Id: reviewId, PropertyId: propertyId, ReviewerEmail: buyerEmail, Comment: "Great view"}}

	testCases := []struct {
		name         string
		method       string
		path         string
		email        string
		body         interface{}
		setup        func(db *mocks.Database)
		expectedCode int
	}{
		{
			name:   "List all reviews",
			method: "GET", path: "/reviews",
			setup: func(db *mocks.Database) {
				db.On("GetReviews", mock.Anything).Return(reviews, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Reviews of a property",
			method: "GET", path: "/reviews/" + propertyId,
			setup: func(db *mocks.Database) {
				db.On("GetReviewsByProperty", mock.Anything, propertyId).Return(reviews, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Reviews by reviewer",
			method: "GET", path: "/reviews/email/" + buyerEmail, email: buyerEmail,
			setup: func(db *mocks.Database) {
				db.On("GetReviewsByEmail", mock.Anything, buyerEmail).Return(reviews, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Create review",
			method: "POST", path: "/reviews", email: buyerEmail,
			body: models.Review{PropertyId: propertyId, Comment: "Great view"},
			setup: func(db *mocks.Database) {
				db.On("CreateReview", mock.Anything, mock.MatchedBy(func(r models.Review) bool {
					return r.ReviewerEmail == buyerEmail && r.Comment == "Great view" && !r.CreatedAt.IsZero()
				})).Return(models.InsertResult{Acknowledged: true, InsertedId: reviewId}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Create review without comment",
			method: "POST", path: "/reviews", email: buyerEmail,
			body:         models.Review{PropertyId: propertyId},
			setup:        func(db *mocks.Database) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Create review without token",
			method: "POST", path: "/reviews",
			body:         models.Review{PropertyId: propertyId, Comment: "Great view"},
			setup:        func(db *mocks.Database) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Delete review",
			method: "DELETE", path: "/reviews/" + reviewId, email: buyerEmail,
			setup: func(db *mocks.Database) {
				db.On("DeleteReview", mock.Anything, reviewId).Return(models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB := new(mocks.Database)
			mockCache := new(mocks.Cache)

			tc.setup(mockDB)

			rr := serve(t, mockDB, mockCache, tc.method, tc.path, tc.email, tc.body)

			assert.Equal(t, tc.expectedCode, rr.Code)

			if tc.expectedCode == http.StatusOK && tc.method == "GET" {
				var got []models.Review
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, reviews, got)
			}

			mockDB.AssertExpectations(t)
		})
	}
}
