package router

import (
	"encoding/json"
	"net/http"
	"testing"

	"homzen/internal/handlers"
	"homzen/internal/models"
	"homzen/internal/storage"
	"homzen/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserRoleHandler(t *testing.T) {
	testCases := []struct {
		name         string
		caller       string
		stored       *models.User
		expectedRole string
		expectedCode int
	}{
		{name: "Agent", caller: agentEmail, stored: &models.User{Email: agentEmail, Role: models.RoleAgent}, expectedRole: "agent", expectedCode: http.StatusOK},
		{name: "Admin", caller: agentEmail, stored: &models.User{Email: agentEmail, Role: models.RoleAdmin}, expectedRole: "admin", expectedCode: http.StatusOK},
		{name: "Fraud reads as none", caller: agentEmail, stored: &models.User{Email: agentEmail, Role: models.RoleFraud, Status: models.RoleFraud}, expectedRole: "none", expectedCode: http.StatusOK},
		{name: "Plain buyer", caller: agentEmail, stored: &models.User{Email: agentEmail}, expectedRole: "none", expectedCode: http.StatusOK},
		{name: "Unknown user", caller: agentEmail, expectedRole: "none", expectedCode: http.StatusOK},
		{name: "Someone else's role", caller: buyerEmail, expectedCode: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB := new(mocks.Database)
			mockCache := new(mocks.Cache)

			if tc.expectedCode == http.StatusOK {
				if tc.stored != nil {
					mockDB.On("GetUserByEmail", mock.Anything, agentEmail).Return(*tc.stored, nil).Once()
				} else {
					mockDB.On("GetUserByEmail", mock.Anything, agentEmail).Return(models.User{}, storage.ErrNotFound).Once()
				}
			}

			rr := serve(t, mockDB, mockCache, "GET", "/users/role/"+agentEmail, tc.caller, nil)

			assert.Equal(t, tc.expectedCode, rr.Code)

			if tc.expectedCode == http.StatusOK {
				var role handlers.RoleResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &role))
				assert.Equal(t, tc.expectedRole, role.Role)
			}

			mockDB.AssertExpectations(t)
		})
	}
}

func TestUserCreateHandlerIsInsertIfAbsent(t *testing.T) {
	mockDB := new(mocks.Database)
	mockCache := new(mocks.Cache)

	isBuyer := mock.MatchedBy(func(u models.User) bool {
		return u.Email == buyerEmail && u.Role == models.RoleNone
	})
	mockDB.On("CreateUser", mock.Anything, isBuyer).Return(models.InsertResult{Acknowledged: true, InsertedId: userId}, nil).Once()
	mockDB.On("CreateUser", mock.Anything, isBuyer).Return(models.InsertResult{}, storage.ErrAlreadyExists).Once()

	body := models.User{Name: "Buyer", Email: buyerEmail, Role: models.RoleAdmin}

	rr := serve(t, mockDB, mockCache, "POST", "/users", ``, body)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"acknowledged": true, "insertedId": "`+userId+`"}`, rr.Body.String())

	rr = serve(t, mockDB, mockCache, "POST", "/users", ``, body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"message": "user already exists", "insertedId": null}`, rr.Body.String())

	mockDB.AssertExpectations(t)
}

func TestUserStatusHandlerFraudCascade(t *testing.T) {
	mockDB := new(mocks.Database)
	mockCache := new(mocks.Cache)

	expectRole(mockDB, adminEmail, models.RoleAdmin)
	mockDB.On("GetUserById", mock.Anything, userId).Return(models.User{Id: userId, Email: agentEmail, Role: models.RoleAgent}, nil).Once()
	mockDB.On("UpdateUserStatus", mock.Anything, userId, models.UserStatusUpdate{Role: models.RoleFraud, Status: models.RoleFraud}).
		Return(models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil).Once()
	mockDB.On("DeletePropertiesByAgent", mock.Anything, agentEmail).
		Return(models.DeleteResult{Acknowledged: true, DeletedCount: 2}, nil).Once()
	mockCache.On("DeleteVerifiedProperties", mock.Anything).Once()

	rr := serve(t, mockDB, mockCache, "PATCH", "/user/status/"+userId, adminEmail, models.UserStatusUpdate{Role: models.RoleFraud})

	assert.Equal(t, http.StatusOK, rr.Code)

	var result models.UpdateResult
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, result)

	mockDB.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestUserStatusHandler(t *testing.T) {
	testCases := []struct {
		name         string
		callerRole   string
		update       models.UserStatusUpdate
		expectedCode int
	}{
		{name: "Promote to agent", callerRole: models.RoleAdmin, update: models.UserStatusUpdate{Role: models.RoleAgent}, expectedCode: http.StatusOK},
		{name: "Unknown role", callerRole: models.RoleAdmin, update: models.UserStatusUpdate{Role: "superuser"}, expectedCode: http.StatusBadRequest},
		{name: "Empty update", callerRole: models.RoleAdmin, update: models.UserStatusUpdate{}, expectedCode: http.StatusBadRequest},
		{name: "Agent cannot change roles", callerRole: models.RoleAgent, update: models.UserStatusUpdate{Role: models.RoleAdmin}, expectedCode: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB := new(mocks.Database)
			mockCache := new(mocks.Cache)

			expectRole(mockDB, adminEmail, tc.callerRole)

			if tc.expectedCode == http.StatusOK {
				mockDB.On("GetUserById", mock.Anything, userId).Return(models.User{Id: userId, Email: buyerEmail}, nil).Once()
				mockDB.On("UpdateUserStatus", mock.Anything, userId, tc.update).
					Return(models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil).Once()
			}

			rr := serve(t, mockDB, mockCache, "PATCH", "/user/status/"+userId, adminEmail, tc.update)

			assert.Equal(t, tc.expectedCode, rr.Code)
			mockDB.AssertExpectations(t)
			mockDB.AssertNotCalled(t, "DeletePropertiesByAgent", mock.Anything, mock.Anything)
		})
	}
}

func TestGetUsersAndDeleteUser(t *testing.T) {
	mockDB := new(mocks.Database)
	mockCache := new(mocks.Cache)

	expectRole(mockDB, adminEmail, models.RoleAdmin)
	mockDB.On("GetUsers", mock.Anything).Return([]models.User{{Id: userId, Email: buyerEmail}}, nil).Once()

	rr := serve(t, mockDB, mockCache, "GET", "/users/admin", adminEmail, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var users []models.User
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	assert.Len(t, users, 1)

	expectRole(mockDB, adminEmail, models.RoleAdmin)
	mockDB.On("DeleteUser", mock.Anything, userId).Return(models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil).Once()

	rr = serve(t, mockDB, mockCache, "DELETE", "/user/"+userId, adminEmail, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"acknowledged": true, "deletedCount": 1}`, rr.Body.String())

	mockDB.AssertExpectations(t)
}
