package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
	"github.com/sbilibin2017/gw-event-booking/internal/repositories"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestReservationService_Register(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()

	reservation := &models.ReservationDB{
		ReservationID: uuid.New(),
		UserID:        userID,
		EventID:       eventID,
		CreatedAt:     time.Now(),
	}

	tests := []struct {
		name          string
		setupMocks    func(writeRepo *MockReservationWriter, kafkaWriter *MockKafkaWriter)
		expectedErr   error
		expectPublish bool
	}{
		{
			name: "successful registration publishes activity",
			setupMocks: func(writeRepo *MockReservationWriter, kafkaWriter *MockKafkaWriter) {
				writeRepo.EXPECT().Register(gomock.Any(), userID, eventID).Return(reservation, nil)
				kafkaWriter.EXPECT().
					WriteMessages(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
						assert.Len(t, msgs, 1)
						var activity models.ReservationActivity
						assert.NoError(t, json.Unmarshal(msgs[0].Value, &activity))
						assert.Equal(t, "register", activity.Operation)
						assert.Equal(t, userID.String(), activity.UserID)
						assert.Equal(t, eventID.String(), activity.EventID)
						return nil
					})
			},
		},
		{
			name: "event not found",
			setupMocks: func(writeRepo *MockReservationWriter, kafkaWriter *MockKafkaWriter) {
				writeRepo.EXPECT().Register(gomock.Any(), userID, eventID).Return(nil, repositories.ErrEventNotFound)
			},
			expectedErr: ErrEventNotFound,
		},
		{
			name: "duplicate registration",
			setupMocks: func(writeRepo *MockReservationWriter, kafkaWriter *MockKafkaWriter) {
				writeRepo.EXPECT().Register(gomock.Any(), userID, eventID).Return(nil, repositories.ErrAlreadyRegistered)
			},
			expectedErr: ErrAlreadyRegistered,
		},
		{
			name: "event fully booked",
			setupMocks: func(writeRepo *MockReservationWriter, kafkaWriter *MockKafkaWriter) {
				writeRepo.EXPECT().Register(gomock.Any(), userID, eventID).Return(nil, repositories.ErrEventFull)
			},
			expectedErr: ErrEventFull,
		},
		{
			name: "broker failure does not fail the request",
			setupMocks: func(writeRepo *MockReservationWriter, kafkaWriter *MockKafkaWriter) {
				writeRepo.EXPECT().Register(gomock.Any(), userID, eventID).Return(reservation, nil)
				kafkaWriter.EXPECT().
					WriteMessages(gomock.Any(), gomock.Any()).
					Return(errors.New("broker down"))
			},
		},
		{
			name: "datastore failure",
			setupMocks: func(writeRepo *MockReservationWriter, kafkaWriter *MockKafkaWriter) {
				writeRepo.EXPECT().Register(gomock.Any(), userID, eventID).Return(nil, errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writeRepo := NewMockReservationWriter(ctrl)
			kafkaWriter := NewMockKafkaWriter(ctrl)
			tt.setupMocks(writeRepo, kafkaWriter)

			svc := NewReservationService(writeRepo, kafkaWriter)

			got, err := svc.Register(context.Background(), userID, eventID)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.expectedErr.Error())
				assert.Nil(t, got)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, reservation, got)
		})
	}
}

func TestReservationService_Register_NilKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	eventID := uuid.New()
	reservation := &models.ReservationDB{ReservationID: uuid.New(), UserID: userID, EventID: eventID}

	writeRepo := NewMockReservationWriter(ctrl)
	writeRepo.EXPECT().Register(gomock.Any(), userID, eventID).Return(reservation, nil)

	svc := NewReservationService(writeRepo, nil)

	got, err := svc.Register(context.Background(), userID, eventID)
	assert.NoError(t, err)
	assert.Equal(t, reservation, got)
}

func TestReservationService_Unregister(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()

	tests := []struct {
		name        string
		setupMocks  func(writeRepo *MockReservationWriter, kafkaWriter *MockKafkaWriter)
		expectedErr error
	}{
		{
			name: "successful unregister publishes activity",
			setupMocks: func(writeRepo *MockReservationWriter, kafkaWriter *MockKafkaWriter) {
				writeRepo.EXPECT().Unregister(gomock.Any(), userID, eventID).Return(nil)
				kafkaWriter.EXPECT().
					WriteMessages(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
						var activity models.ReservationActivity
						assert.NoError(t, json.Unmarshal(msgs[0].Value, &activity))
						assert.Equal(t, "unregister", activity.Operation)
						return nil
					})
			},
		},
		{
			name: "no reservation to remove",
			setupMocks: func(writeRepo *MockReservationWriter, kafkaWriter *MockKafkaWriter) {
				writeRepo.EXPECT().Unregister(gomock.Any(), userID, eventID).Return(repositories.ErrReservationNotFound)
			},
			expectedErr: ErrReservationNotFound,
		},
		{
			name: "datastore failure",
			setupMocks: func(writeRepo *MockReservationWriter, kafkaWriter *MockKafkaWriter) {
				writeRepo.EXPECT().Unregister(gomock.Any(), userID, eventID).Return(errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writeRepo := NewMockReservationWriter(ctrl)
			kafkaWriter := NewMockKafkaWriter(ctrl)
			tt.setupMocks(writeRepo, kafkaWriter)

			svc := NewReservationService(writeRepo, kafkaWriter)

			err := svc.Unregister(context.Background(), userID, eventID)

			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.expectedErr.Error())
				return
			}

			assert.NoError(t, err)
		})
	}
}
