package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"storecopy-backend/internal/models"
	"storecopy-backend/internal/services"
	"storecopy-backend/pkg/httputil"
)

// AuthService defines the interface expected from the auth service.
// This promotes loose coupling and testability.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AuthHandler struct {
	authService AuthService
}

func NewAuthHandler(authSvc AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authSvc,
	}
}

// HandleSignup handles the POST /v1/auth/signup request.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		log.Printf("Signup handler failed for email %s: %v", req.Email, err)
		var fieldErrs services.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			httputil.RespondFieldErrors(w, http.StatusBadRequest, fieldErrs)
		case errors.Is(err, services.ErrUserAlreadyExists):
			httputil.RespondError(w, http.StatusConflict, err.Error())
		default:
			httputil.RespondError(w, http.StatusInternalServerError, "Signup failed due to an internal error")
		}
		return
	}

	resp := models.UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		StoreID: user.StoreID,
	}
	httputil.RespondSuccess(w, http.StatusCreated, resp)
}

// HandleLogin handles the POST /v1/auth/login request.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	token, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Printf("Login handler failed for email %s: %v", req.Email, err)
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			httputil.RespondError(w, http.StatusUnauthorized, err.Error())
		default:
			httputil.RespondError(w, http.StatusInternalServerError, "Login failed due to an internal error")
		}
		return
	}

	resp := models.AuthResponse{
		AccessToken: token,
		User: models.UserResponse{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			StoreID: user.StoreID,
		},
	}
	httputil.RespondSuccess(w, http.StatusOK, resp)
}

// HandleForgotPassword handles the POST /v1/auth/forgot-password request.
// Always responds success for well-formed requests so the endpoint does
// not reveal which emails have accounts.
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		log.Printf("ForgotPassword handler failed for email %s: %v", req.Email, err)
		var fieldErrs services.FieldErrors
		if errors.As(err, &fieldErrs) {
			httputil.RespondFieldErrors(w, http.StatusBadRequest, fieldErrs)
			return
		}
		httputil.RespondError(w, http.StatusInternalServerError, "Could not start password reset")
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]string{"message": "If that account exists, a reset email is on its way"})
}

// HandleResetPassword handles the POST /v1/auth/reset-password request.
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.authService.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		log.Printf("ResetPassword handler failed: %v", err)
		var fieldErrs services.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			httputil.RespondFieldErrors(w, http.StatusBadRequest, fieldErrs)
		case errors.Is(err, services.ErrResetTokenInvalid):
			httputil.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			httputil.RespondError(w, http.StatusInternalServerError, "Could not reset password")
		}
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]string{"message": "Password updated"})
}
