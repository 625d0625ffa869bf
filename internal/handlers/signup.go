package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-event-booking/internal/logger"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
	"github.com/sbilibin2017/gw-event-booking/internal/services"
	"github.com/sbilibin2017/gw-event-booking/internal/validation"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, name, username, password string) (string, *models.UserDB, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name" validate:"required,max=255"`

	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required,max=255"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,max=255"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Created user
	User *models.UserResource `json:"user"`
}

// SignupErrorResponse represents an error response for signup
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// default: Username already exists
	Error string `json:"error"`

	// Field-level validation errors
	Errors map[string]string `json:"errors,omitempty"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up a new user
// @Description Creates a new user account with a unique username. Password is hashed before storing. Returns a JWT token for the created account.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 201 {object} handlers.SignupResponse "User successfully signed up"
// @Failure 409 {object} handlers.SignupErrorResponse "Username already exists"
// @Failure 422 {object} handlers.SignupErrorResponse "Invalid data"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if fields := validation.Validate(req); fields != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error:  "Invalid data",
				Errors: fields,
			})
			return
		}

		token, user, err := svc.Signup(r.Context(), req.Name, req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Username already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SignupResponse{
			Token: token,
			User:  models.NewUserResource(user),
		})
	}
}
