package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-booking/internal/jwt"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListEventsHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"

	rows := []models.EventListRow{
		{
			EventDB: models.EventDB{
				EventID:  uuid.New(),
				UserID:   userID,
				Title:    "Go meetup",
				Capacity: 100,
			},
			ReservationsCount: 5,
			IsRegistered:      true,
		},
	}

	tests := []struct {
		name               string
		target             string
		setupMocks         func(svc *MockEventLister, tokener *MockEventListTokener)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:   "defaults applied",
			target: "/events",
			setupMocks: func(svc *MockEventLister, tokener *MockEventListTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().
					List(gomock.Any(), userID, models.EventListQuery{
						SortBy:    models.SortByDate,
						SortOrder: models.SortOrderDesc,
					}).
					Return(rows, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "events",
		},
		{
			name:   "search with explicit sort",
			target: "/events?search=meetup&sortBy=capacity&sortOrder=ASC",
			setupMocks: func(svc *MockEventLister, tokener *MockEventListTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().
					List(gomock.Any(), userID, models.EventListQuery{
						Search:    "meetup",
						SortBy:    models.SortByCapacity,
						SortOrder: models.SortOrderAsc,
					}).
					Return(rows, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "events",
		},
		{
			name:   "rejects unknown sort column",
			target: "/events?sortBy=price",
			setupMocks: func(svc *MockEventLister, tokener *MockEventListTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusUnprocessableEntity,
			expectedKey:        "errors",
		},
		{
			name:   "rejects unknown sort order",
			target: "/events?sortOrder=sideways",
			setupMocks: func(svc *MockEventLister, tokener *MockEventListTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusUnprocessableEntity,
			expectedKey:        "errors",
		},
		{
			name:   "unauthorized",
			target: "/events",
			setupMocks: func(svc *MockEventLister, tokener *MockEventListTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:   "internal error",
			target: "/events",
			setupMocks: func(svc *MockEventLister, tokener *MockEventListTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				tokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				svc.EXPECT().List(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockEventLister(ctrl)
			mockTokener := NewMockEventListTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			NewListEventsHandler(mockSvc, mockTokener)(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Contains(t, resp, tt.expectedKey)
		})
	}
}
