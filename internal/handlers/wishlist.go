package handlers

import (
	"net/http"
	"time"

	"homzen/internal/models"
	"homzen/internal/storage"

	"github.com/gorilla/mux"
)

func GetWishlistHandler(db storage.WishlistStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)[`email`]
		if !requireSelf(w, r, email) {
			return
		}

		items, err := db.GetWishlistByEmail(r.Context(), email)
		if err != nil {
			writeStoreError(w, r, err, "item")
			return
		}

		writeJSON(w, http.StatusOK, items)
	})
}

func GetWishlistItemHandler(db storage.WishlistStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathId(w, r)
		if !ok {
			return
		}

		item, err := db.GetWishlistItemById(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "item")
			return
		}

		writeJSON(w, http.StatusOK, item)
	})
}

// WishlistCreateHandler adds a property to the caller's wishlist, once per property.
func WishlistCreateHandler(db storage.WishlistStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var item models.WishlistItem
		if err := decodeBody(r, &item); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if item.PropertyId == `` {
			writeMessage(w, http.StatusBadRequest, "propertyId is required")
			return
		}

		claims, _ := ClaimsFromContext(r.Context())
		item.Email = claims.Email
		item.CreatedAt = time.Now().UTC()

		result, err := db.CreateWishlistItem(r.Context(), item)
		if err != nil {
			writeStoreError(w, r, err, "item")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func WishlistDeleteHandler(db storage.WishlistStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathId(w, r)
		if !ok {
			return
		}

		result, err := db.DeleteWishlistItem(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "item")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}
