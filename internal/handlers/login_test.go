package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
	"github.com/sbilibin2017/gw-event-booking/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	user := &models.UserDB{
		UserID:    uuid.New(),
		Name:      "John Doe",
		Username:  "john_doe",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(svc *MockLoginer)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful login",
			requestBody: LoginRequest{
				Username: "john_doe",
				Password: "secret123",
			},
			setupMocks: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "john_doe", "secret123").
					Return("token", user, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "token",
		},
		{
			name:               "invalid request body",
			requestBody:        "not-json",
			setupMocks:         func(svc *MockLoginer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "missing password",
			requestBody: LoginRequest{
				Username: "john_doe",
			},
			setupMocks:         func(svc *MockLoginer) {},
			expectedStatusCode: http.StatusUnprocessableEntity,
			expectedKey:        "errors",
		},
		{
			name: "wrong password",
			requestBody: LoginRequest{
				Username: "john_doe",
				Password: "wrong",
			},
			setupMocks: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "john_doe", "wrong").
					Return("", nil, services.ErrInvalidCredentials)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "unknown user",
			requestBody: LoginRequest{
				Username: "nobody",
				Password: "secret123",
			},
			setupMocks: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "nobody", "secret123").
					Return("", nil, services.ErrUserDoesNotExist)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "internal error",
			requestBody: LoginRequest{
				Username: "john_doe",
				Password: "secret123",
			},
			setupMocks: func(svc *MockLoginer) {
				svc.EXPECT().
					Login(gomock.Any(), "john_doe", "secret123").
					Return("", nil, errors.New("db down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockLoginer(ctrl)
			tt.setupMocks(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Contains(t, resp, tt.expectedKey)
		})
	}
}
