package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"homzen/internal/logger"
	"homzen/internal/models"
	"homzen/internal/storage"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type contextKey string

const claimsKey contextKey = `claims`

func ClaimsFromContext(ctx context.Context) (*models.CustomClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*models.CustomClaims)
	return claims, ok
}

func AuthorizationMiddleware(next http.Handler, secret string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeMessage(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &models.CustomClaims{}

		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid || claims.Email == `` {
			logger.Log.Debugw("Rejected token", "path", r.URL.Path, "err", err)
			writeMessage(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RoleMiddleware reads the caller's stored role once per request.
// It must run behind AuthorizationMiddleware.
func RoleMiddleware(next http.Handler, db storage.UserStore, role string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			writeMessage(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		user, err := db.GetUserByEmail(r.Context(), claims.Email)
		if errors.Is(err, storage.ErrNotFound) || (err == nil && user.Role != role) {
			writeMessage(w, http.StatusForbidden, "forbidden access")
			return
		}
		if err != nil {
			writeStoreError(w, r, err, "user")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func AdminOnly(next http.Handler, db storage.UserStore) http.Handler {
	return RoleMiddleware(next, db, models.RoleAdmin)
}

func AgentOnly(next http.Handler, db storage.UserStore) http.Handler {
	return RoleMiddleware(next, db, models.RoleAgent)
}

// requireSelf answers 403 unless the token subject matches email.
func requireSelf(w http.ResponseWriter, r *http.Request, email string) bool {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok || claims.Email != email {
		writeMessage(w, http.StatusForbidden, "forbidden access")
		return false
	}

	return true
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get("X-Request-Id")
		if requestId == `` {
			requestId = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestId)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		logger.Log.Infow("request",
			"id", requestId,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
