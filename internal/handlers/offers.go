package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"homzen/internal/logger"
	"homzen/internal/models"
	"homzen/internal/storage"

	"github.com/gorilla/mux"
)

// OfferWorkflowStore is what SetOfferStatus needs from the database.
type OfferWorkflowStore interface {
	storage.OfferStore
	storage.WishlistStore
}

func GetAgentOffersHandler(db storage.OfferStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)[`email`]
		if !requireSelf(w, r, email) {
			return
		}

		offers, err := db.GetOffersByAgent(r.Context(), email)
		if err != nil {
			writeStoreError(w, r, err, "offer")
			return
		}

		writeJSON(w, http.StatusOK, offers)
	})
}

func GetBuyerOffersHandler(db storage.OfferStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)[`email`]
		if !requireSelf(w, r, email) {
			return
		}

		offers, err := db.GetOffersByBuyer(r.Context(), email)
		if err != nil {
			writeStoreError(w, r, err, "offer")
			return
		}

		writeJSON(w, http.StatusOK, offers)
	})
}

// OfferCreateHandler records the caller's offer as pending, once per property.
func OfferCreateHandler(db storage.OfferStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var offer models.Offer
		if err := decodeBody(r, &offer); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if offer.PropertyId == `` {
			writeMessage(w, http.StatusBadRequest, "propertyId is required")
			return
		}

		claims, _ := ClaimsFromContext(r.Context())
		offer.BuyerEmail = claims.Email
		if offer.BuyerName == `` {
			offer.BuyerName = claims.Name
		}
		offer.Status = models.OfferPending
		offer.CreatedAt = time.Now().UTC()

		result, err := db.CreateOffer(r.Context(), offer)
		if err != nil {
			writeStoreError(w, r, err, "offer")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// SetOfferStatus writes status to the offer. Accepting an offer also rejects
// every other offer on the same property and drops the buyer's wishlist entry
// for it. The writes are independent: if a later one fails the earlier ones
// stay applied. Only the first write's acknowledgement is returned.
func SetOfferStatus(ctx context.Context, db OfferWorkflowStore, id string, status string) (models.UpdateResult, error) {
	result, err := db.UpdateOfferStatus(ctx, id, status)
	if err != nil {
		return result, fmt.Errorf("set offer status: %w", err)
	}

	if result.MatchedCount == 0 {
		return result, storage.ErrNotFound
	}

	if status != models.OfferAccept {
		return result, nil
	}

	offer, err := db.GetOfferById(ctx, id)
	if err != nil {
		return result, fmt.Errorf("reload accepted offer: %w", err)
	}

	rejected, err := db.RejectOtherOffers(ctx, offer.PropertyId, offer.Id)
	if err != nil {
		return result, fmt.Errorf("reject sibling offers: %w", err)
	}

	removed, err := db.DeleteWishlistItemByProperty(ctx, offer.PropertyId, offer.BuyerEmail)
	if err != nil {
		return result, fmt.Errorf("remove wishlist entry: %w", err)
	}

	logger.Log.Infow("Offer accepted",
		"offer", id,
		"property", offer.PropertyId,
		"rejected", rejected.ModifiedCount,
		"wishlistRemoved", removed.DeletedCount,
	)

	return result, nil
}

func OfferStatusHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathId(w, r)
		if !ok {
			return
		}

		var update models.OfferStatusUpdate
		if err := decodeBody(r, &update); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if update.Status == `` {
			writeMessage(w, http.StatusBadRequest, "status is required")
			return
		}

		offer, err := db.GetOfferById(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "offer")
			return
		}

		// only the listing agent arbitrates offers on the property
		if !requireSelf(w, r, offer.AgentEmail) {
			return
		}

		result, err := SetOfferStatus(r.Context(), db, id, update.Status)
		if err != nil {
			writeStoreError(w, r, err, "offer")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func OfferDeleteHandler(db storage.OfferStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathId(w, r)
		if !ok {
			return
		}

		result, err := db.DeleteOffer(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "offer")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}
