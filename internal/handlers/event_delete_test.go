package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-booking/internal/jwt"
	"github.com/sbilibin2017/gw-event-booking/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteEventHandler(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()
	validToken := "valid-token"

	tests := []struct {
		name               string
		setupMocks         func(svc *MockEventDeleter, tokener *MockEventDeleteTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful delete",
			setupMocks: func(svc *MockEventDeleter, tokener *MockEventDeleteTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().Delete(gomock.Any(), userID, eventID).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "message",
		},
		{
			name: "unauthorized",
			setupMocks: func(svc *MockEventDeleter, tokener *MockEventDeleteTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name: "event not found",
			setupMocks: func(svc *MockEventDeleter, tokener *MockEventDeleteTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().Delete(gomock.Any(), userID, eventID).Return(services.ErrEventNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name: "not the owner",
			setupMocks: func(svc *MockEventDeleter, tokener *MockEventDeleteTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().Delete(gomock.Any(), userID, eventID).Return(services.ErrForbidden)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedKey:        "error",
		},
		{
			name: "internal error",
			setupMocks: func(svc *MockEventDeleter, tokener *MockEventDeleteTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().Delete(gomock.Any(), userID, eventID).Return(errors.New("db down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockEventDeleter(ctrl)
			mockTokener := NewMockEventDeleteTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			router := chi.NewRouter()
			router.Delete("/events/{id}", NewDeleteEventHandler(mockSvc, mockTokener))

			req := httptest.NewRequest(http.MethodDelete, "/events/"+eventID.String(), nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Contains(t, resp, tt.expectedKey)
		})
	}
}
