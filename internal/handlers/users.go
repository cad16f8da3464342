package handlers

import (
	"errors"
	"net/http"

	"homzen/internal/logger"
	"homzen/internal/models"
	"homzen/internal/storage"

	"github.com/gorilla/mux"
	"golang.org/x/exp/slices"
)

var assignableRoles = []string{
	models.RoleNone,
	models.RoleAgent,
	models.RoleAdmin,
	models.RoleFraud,
}

type RoleResponse struct {
	Role string `json:"role"`
}

func GetUsersHandler(db storage.UserStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		users, err := db.GetUsers(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "user")
			return
		}

		writeJSON(w, http.StatusOK, users)
	})
}

// UserRoleHandler reports the caller's own role as admin, agent or none.
// Fraud and unknown users both read as none.
func UserRoleHandler(db storage.UserStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)[`email`]
		if !requireSelf(w, r, email) {
			return
		}

		role := `none`

		user, err := db.GetUserByEmail(r.Context(), email)
		switch {
		case errors.Is(err, storage.ErrNotFound):
		case err != nil:
			writeStoreError(w, r, err, "user")
			return
		case user.Role == models.RoleAdmin, user.Role == models.RoleAgent:
			role = user.Role
		}

		writeJSON(w, http.StatusOK, RoleResponse{Role: role})
	})
}

// UserCreateHandler registers a user on first sign-in. Roles are only
// granted through the admin status endpoint.
func UserCreateHandler(db storage.UserStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.User
		if err := decodeBody(r, &user); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if user.Email == `` {
			writeMessage(w, http.StatusBadRequest, "email is required")
			return
		}

		user.Role = models.RoleNone

		result, err := db.CreateUser(r.Context(), user)
		if err != nil {
			writeStoreError(w, r, err, "user")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// UserStatusHandler changes a user's role or status. Marking a user as fraud
// also removes every property listed under their email; offers and wishlist
// entries pointing at those properties are left as they are.
func UserStatusHandler(db storage.Database, cache storage.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathId(w, r)
		if !ok {
			return
		}

		var update models.UserStatusUpdate
		if err := decodeBody(r, &update); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if update.Role == `` && update.Status == `` {
			writeMessage(w, http.StatusBadRequest, "nothing to update")
			return
		}

		if !slices.Contains(assignableRoles, update.Role) {
			writeMessage(w, http.StatusBadRequest, "unknown role")
			return
		}

		fraud := update.IsFraud()
		if fraud {
			update.Role = models.RoleFraud
			update.Status = models.RoleFraud
		}

		user, err := db.GetUserById(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "user")
			return
		}

		result, err := db.UpdateUserStatus(r.Context(), id, update)
		if err != nil {
			writeStoreError(w, r, err, "user")
			return
		}

		if fraud {
			deleted, err := db.DeletePropertiesByAgent(r.Context(), user.Email)
			if err != nil {
				writeStoreError(w, r, err, "property")
				return
			}

			cache.DeleteVerifiedProperties(r.Context())

			logger.Log.Infow("Removed listings of fraudulent agent",
				"user", id, "email", user.Email, "deleted", deleted.DeletedCount)
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func UserDeleteHandler(db storage.UserStore) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathId(w, r)
		if !ok {
			return
		}

		result, err := db.DeleteUser(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "user")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}
