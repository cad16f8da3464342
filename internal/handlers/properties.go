package handlers

import (
	"errors"
	"net/http"
	"time"

	"homzen/internal/logger"
	"homzen/internal/models"
	"homzen/internal/storage"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slices"
)

var verificationStatuses = []string{
	models.VerificationPending,
	models.VerificationVerified,
	models.VerificationRejected,
}

// GetVerifiedPropertiesHandler serves the public listing, from cache when possible.
func GetVerifiedPropertiesHandler(db storage.PropertyStore, cache storage.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if data, err := cache.GetVerifiedProperties(r.Context()); err == nil {
			writeRawJSON(w, data)
			return
		}

		// read before the store so an invalidation racing this request wins
		generation, genErr := cache.Generation(r.Context())

		properties, err := db.GetVerifiedProperties(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "property")
			return
		}

		if genErr == nil {
			err = cache.PutVerifiedProperties(r.Context(), generation, properties)
		} else {
			err = genErr
		}

		switch {
		case errors.Is(err, storage.ErrCacheStale):
			logger.Log.Debugw("Skipped caching stale verified properties", "generation", generation)
		case err != nil:
			logger.Log.Warnw("Failed to cache verified properties", "err", err)
		}

		writeJSON(w, http.StatusOK, properties)
	})
}

func GetAllPropertiesHandler(db storage.PropertyStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		properties, err := db.GetProperties(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "property")
			return
		}

		writeJSON(w, http.StatusOK, properties)
	})
}

func GetAgentPropertiesHandler(db storage.PropertyStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)[`email`]
		if !requireSelf(w, r, email) {
			return
		}

		properties, err := db.GetPropertiesByAgent(r.Context(), email)
		if err != nil {
			writeStoreError(w, r, err, "property")
			return
		}

		writeJSON(w, http.StatusOK, properties)
	})
}

func GetPropertyHandler(db storage.PropertyStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathId(w, r)
		if !ok {
			return
		}

		property, err := db.GetPropertyById(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "property")
			return
		}

		writeJSON(w, http.StatusOK, property)
	})
}

// PropertyCreateHandler stores a new listing as pending, owned by the calling agent.
func PropertyCreateHandler(db storage.PropertyStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var property models.Property
		if err := decodeBody(r, &property); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if property.Title == `` {
			writeMessage(w, http.StatusBadRequest, "title is required")
			return
		}

		claims, _ := ClaimsFromContext(r.Context())
		property.AgentEmail = claims.Email
		if property.AgentName == `` {
			property.AgentName = claims.Name
		}
		property.VerificationStatus = models.VerificationPending
		property.CreatedAt = time.Now().UTC()

		result, err := db.CreateProperty(r.Context(), property)
		if err != nil {
			writeStoreError(w, r, err, "property")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func VerificationStatusHandler(db storage.PropertyStore, cache storage.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathId(w, r)
		if !ok {
			return
		}

		var update models.VerificationUpdate
		if err := decodeBody(r, &update); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if !slices.Contains(verificationStatuses, update.Status) {
			writeMessage(w, http.StatusBadRequest, "unknown verification status")
			return
		}

		result, err := db.UpdateVerificationStatus(r.Context(), id, update.Status)
		if err != nil {
			writeStoreError(w, r, err, "property")
			return
		}

		cache.DeleteVerifiedProperties(r.Context())

		writeJSON(w, http.StatusOK, result)
	})
}

// ownedProperty loads the {id} property and checks the caller is its agent.
func ownedProperty(w http.ResponseWriter, r *http.Request, db storage.PropertyStore) (string, bool) {
	id, ok := pathId(w, r)
	if !ok {
		return ``, false
	}

	property, err := db.GetPropertyById(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "property")
		return ``, false
	}

	if !requireSelf(w, r, property.AgentEmail) {
		return ``, false
	}

	return id, true
}

func PropertyUpdateHandler(db storage.PropertyStore, cache storage.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := ownedProperty(w, r, db)
		if !ok {
			return
		}

		var update models.PropertyUpdate
		if err := decodeBody(r, &update); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if update.IsEmpty() {
			writeMessage(w, http.StatusBadRequest, "nothing to update")
			return
		}

		result, err := db.UpdateProperty(r.Context(), id, update)
		if err != nil {
			writeStoreError(w, r, err, "property")
			return
		}

		cache.DeleteVerifiedProperties(r.Context())

		writeJSON(w, http.StatusOK, result)
	})
}

func PropertyDeleteHandler(db storage.PropertyStore, cache storage.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := ownedProperty(w, r, db)
		if !ok {
			return
		}

		result, err := db.DeleteProperty(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "property")
			return
		}

		cache.DeleteVerifiedProperties(r.Context())

		writeJSON(w, http.StatusOK, result)
	})
}
