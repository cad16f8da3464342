package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homzen/internal/handlers"
	"homzen/internal/models"
	"homzen/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	adminEmail = `admin@homzen.test`
	agentEmail = `agent@homzen.test`
	buyerEmail = `buyer@homzen.test`

	propertyId = `65a1f0c2b3d4e5f607182930`
	offerId    = `65a1f0c2b3d4e5f607182931`
	siblingId  = `65a1f0c2b3d4e5f607182932`
	wishlistId = `65a1f0c2b3d4e5f607182933`
	userId     = `65a1f0c2b3d4e5f607182934`
)

var testTokens = handlers.TokenConfig{Secret: `router-test-secret`, TTL: time.Hour}

func PerformLogin(email string) (string, error) {
	return handlers.IssueToken(testTokens, email, ``)
}

func expectRole(db *mocks.Database, email string, role string) {
	db.On("GetUserByEmail", mock.Anything, email).Return(models.User{Id: userId, Email: email, Role: role}, nil).Once()
}

// serve sends a request through the full router; an empty email means no token.
func serve(t *testing.T, db *mocks.Database, cache *mocks.Cache, method, path, email string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reader = &bytes.Buffer{}
	case []byte:
		reader = bytes.NewBuffer(b)
	default:
		data, err := json.Marshal(b)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, path, reader)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	if email != `` {
		token, err := PerformLogin(email)
		assert.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	handler := New(db, cache, testTokens)
	handler.ServeHTTP(rr, req)

	return rr
}
