package handlers

import (
	"net/http"
	"time"

	"homzen/internal/models"
	"homzen/internal/storage"

	"github.com/gorilla/mux"
)

func GetReviewsHandler(db storage.ReviewStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reviews, err := db.GetReviews(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "review")
			return
		}

		writeJSON(w, http.StatusOK, reviews)
	})
}

// GetPropertyReviewsHandler lists reviews of the property named by {id}.
func GetPropertyReviewsHandler(db storage.ReviewStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathId(w, r)
		if !ok {
			return
		}

		reviews, err := db.GetReviewsByProperty(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "review")
			return
		}

		writeJSON(w, http.StatusOK, reviews)
	})
}

func GetReviewerReviewsHandler(db storage.ReviewStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reviews, err := db.GetReviewsByEmail(r.Context(), mux.Vars(r)[`email`])
		if err != nil {
			writeStoreError(w, r, err, "review")
			return
		}

		writeJSON(w, http.StatusOK, reviews)
	})
}

func ReviewCreateHandler(db storage.ReviewStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var review models.Review
		if err := decodeBody(r, &review); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if review.PropertyId == `` || review.Comment == `` {
			writeMessage(w, http.StatusBadRequest, "propertyId and comment are required")
			return
		}

		claims, _ := ClaimsFromContext(r.Context())
		review.ReviewerEmail = claims.Email
		if review.ReviewerName == `` {
			review.ReviewerName = claims.Name
		}
		review.CreatedAt = time.Now().UTC()

		result, err := db.CreateReview(r.Context(), review)
		if err != nil {
			writeStoreError(w, r, err, "review")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func ReviewDeleteHandler(db storage.ReviewStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathId(w, r)
		if !ok {
			return
		}

		result, err := db.DeleteReview(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "review")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}
