package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"homzen/internal/models"
	"homzen/internal/storage"
	"homzen/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOfferStatusHandler(t *testing.T) {
	acked := models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}
	pending := models.Offer{Id: offerId, PropertyId: propertyId, BuyerEmail: buyerEmail, AgentEmail: agentEmail, Status: models.OfferPending}
	accepted := pending
	accepted.Status = models.OfferAccept

	testCases := []struct {
		name         string
		status       string
		setup        func(db *mocks.Database)
		expectedCode int
	}{
		{
			name:   "Accept rejects siblings and clears wishlist entry",
			status: models.OfferAccept,
			setup: func(db *mocks.Database) {
				db.On("GetOfferById", mock.Anything, offerId).Return(pending, nil).Once()
				db.On("UpdateOfferStatus", mock.Anything, offerId, models.OfferAccept).Return(acked, nil).Once()
				db.On("GetOfferById", mock.Anything, offerId).Return(accepted, nil).Once()
				db.On("RejectOtherOffers", mock.Anything, propertyId, offerId).Return(acked, nil).Once()
				db.On("DeleteWishlistItemByProperty", mock.Anything, propertyId, buyerEmail).
					Return(models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Reject only updates the offer",
			status: models.OfferReject,
			setup: func(db *mocks.Database) {
				db.On("GetOfferById", mock.Anything, offerId).Return(pending, nil).Once()
				db.On("UpdateOfferStatus", mock.Anything, offerId, models.OfferReject).Return(acked, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Missing offer",
			status: models.OfferAccept,
			setup: func(db *mocks.Database) {
				db.On("GetOfferById", mock.Anything, offerId).Return(models.Offer{}, storage.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Offer removed before update",
			status: models.OfferAccept,
			setup: func(db *mocks.Database) {
				db.On("GetOfferById", mock.Anything, offerId).Return(pending, nil).Once()
				db.On("UpdateOfferStatus", mock.Anything, offerId, models.OfferAccept).
					Return(models.UpdateResult{Acknowledged: true}, nil).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Offer on another agent's property",
			status: models.OfferAccept,
			setup: func(db *mocks.Database) {
				other := pending
				other.AgentEmail = `rival@homzen.test`
				db.On("GetOfferById", mock.Anything, offerId).Return(other, nil).Once()
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Sibling rejection fails",
			status: models.OfferAccept,
			setup: func(db *mocks.Database) {
				db.On("GetOfferById", mock.Anything, offerId).Return(pending, nil).Once()
				db.On("UpdateOfferStatus", mock.Anything, offerId, models.OfferAccept).Return(acked, nil).Once()
				db.On("GetOfferById", mock.Anything, offerId).Return(accepted, nil).Once()
				db.On("RejectOtherOffers", mock.Anything, propertyId, offerId).
					Return(models.UpdateResult{}, errors.New("database error")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "Empty status",
			status:       ``,
			setup:        func(db *mocks.Database) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB := new(mocks.Database)
			mockCache := new(mocks.Cache)

			expectRole(mockDB, agentEmail, models.RoleAgent)
			tc.setup(mockDB)

			body := models.OfferStatusUpdate{Status: tc.status}
			rr := serve(t, mockDB, mockCache, "PATCH", "/offer/status/"+offerId, agentEmail, body)

			assert.Equal(t, tc.expectedCode, rr.Code)

			if tc.expectedCode == http.StatusOK {
				var result models.UpdateResult
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
				assert.Equal(t, acked, result)
			}

			mockDB.AssertExpectations(t)
			if tc.status != models.OfferAccept {
				mockDB.AssertNotCalled(t, "RejectOtherOffers", mock.Anything, mock.Anything, mock.Anything)
			}
			if tc.expectedCode == http.StatusForbidden {
				mockDB.AssertNotCalled(t, "UpdateOfferStatus", mock.Anything, mock.Anything, mock.Anything)
			}
			if tc.expectedCode != http.StatusOK {
				mockDB.AssertNotCalled(t, "DeleteWishlistItemByProperty", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestOfferCreateHandlerIsIdempotent(t *testing.T) {
	mockDB := new(mocks.Database)
	mockCache := new(mocks.Cache)

	samePair := mock.MatchedBy(func(o models.Offer) bool {
		return o.PropertyId == propertyId && o.BuyerEmail == buyerEmail && o.Status == models.OfferPending
	})
	mockDB.On("CreateOffer", mock.Anything, samePair).Return(models.InsertResult{Acknowledged: true, InsertedId: offerId}, nil).Once()
	mockDB.On("CreateOffer", mock.Anything, samePair).Return(models.InsertResult{}, storage.ErrAlreadyExists).Once()

	body := models.Offer{PropertyId: propertyId, AgentEmail: agentEmail, Amount: 240000, Status: models.OfferAccept}

	rr := serve(t, mockDB, mockCache, "POST", "/offer", buyerEmail, body)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, mockDB, mockCache, "POST", "/offer", buyerEmail, body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"message": "offer already exists", "insertedId": null}`, rr.Body.String())

	mockDB.AssertExpectations(t)
}

func TestGetOffersHandlers(t *testing.T) {
	mockDB := new(mocks.Database)
	mockCache := new(mocks.Cache)

	offers := []models.Offer{{Id: offerId, PropertyId: propertyId, BuyerEmail: buyerEmail, AgentEmail: agentEmail}}

	mockDB.On("GetOffersByBuyer", mock.Anything, buyerEmail).Return(offers, nil).Once()
	rr := serve(t, mockDB, mockCache, "GET", "/offer/"+buyerEmail, buyerEmail, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	expectRole(mockDB, agentEmail, models.RoleAgent)
	mockDB.On("GetOffersByAgent", mock.Anything, agentEmail).Return(offers, nil).Once()
	rr = serve(t, mockDB, mockCache, "GET", "/offer/agent/"+agentEmail, agentEmail, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.Offer
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, offers[0].Id, got[0].Id)

	rr = serve(t, mockDB, mockCache, "GET", "/offer/"+buyerEmail, agentEmail, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	mockDB.AssertExpectations(t)
}

func TestOfferDeleteHandler(t *testing.T) {
	mockDB := new(mocks.Database)
	mockCache := new(mocks.Cache)

	mockDB.On("DeleteOffer", mock.Anything, offerId).Return(models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil).Once()

	rr := serve(t, mockDB, mockCache, "DELETE", "/offer/"+offerId, buyerEmail, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockDB.AssertExpectations(t)
}
