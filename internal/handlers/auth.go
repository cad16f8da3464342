package handlers

import (
	"errors"
	"net/http"
	"time"

	"homzen/internal/models"

	"github.com/golang-jwt/jwt/v4"
)

type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

type tokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func IssueToken(cfg TokenConfig, email string, name string) (string, error) {
	if email == `` {
		return ``, errors.New("email is required")
	}

	now := time.Now()
	claims := &models.CustomClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

func JWTHandler(cfg TokenConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req tokenRequest
		if err := decodeBody(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		if req.Email == `` {
			writeMessage(w, http.StatusBadRequest, "email is required")
			return
		}

		tokenStr, err := IssueToken(cfg, req.Email, req.Name)
		if err != nil {
			writeMessage(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, models.AuthorizationToken{Token: tokenStr})
	})
}
