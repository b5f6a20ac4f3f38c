package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"storecopy-backend/internal/auth"
	"storecopy-backend/internal/config"
	"storecopy-backend/internal/mailer"
	"storecopy-backend/internal/models"
	"storecopy-backend/internal/store"
)

// Custom errors for auth service
var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrHashingPassword    = errors.New("failed to hash password")
	ErrCreatingToken      = errors.New("failed to create access token")
	ErrCreatingStoreOrUser = errors.New("failed to create store or user")
	ErrResetTokenInvalid  = errors.New("reset token is invalid or expired")
)

type AuthService struct {
	store  store.Store
	mailer mailer.Mailer
	cfg    *config.Config
}

func NewAuthService(s store.Store, m mailer.Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		store:  s,
		mailer: m,
		cfg:    cfg,
	}
}

// Signup creates a new store and its owner account.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	fieldErrs := FieldErrors{}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		fieldErrs.Add("email", "email cannot be empty")
	}
	if req.Password == "" {
		fieldErrs.Add("password", "password cannot be empty")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		fieldErrs.Add("name", "name cannot be empty")
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	// Check if user already exists
	_, err := s.store.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Printf("Error checking user existence for %s: %v", email, err)
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password for %s: %v", email, err)
		return nil, ErrHashingPassword
	}

	storeName := strings.TrimSpace(req.StoreName)
	if storeName == "" {
		storeName = fmt.Sprintf("%s's Store", name)
	}

	merchantStore := &models.Store{
		ID:   uuid.New(),
		Name: storeName,
	}
	if err := s.store.CreateStore(ctx, merchantStore); err != nil {
		log.Printf("Error creating store for %s: %v", email, err)
		return nil, fmt.Errorf("%w: creating store failed: %v", ErrCreatingStoreOrUser, err)
	}

	user := &models.User{
		ID:             uuid.New(),
		StoreID:        merchantStore.ID,
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		log.Printf("Error creating user for %s (StoreID: %s): %v", email, merchantStore.ID, err)
		return nil, fmt.Errorf("%w: creating user failed: %v", ErrCreatingStoreOrUser, err)
	}

	log.Printf("Successfully signed up user %s (ID: %s) with store %s (ID: %s)", email, user.ID, merchantStore.Name, merchantStore.ID)
	return user, nil
}

// Login verifies user credentials and returns an access token and user info.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials // Basic check before hitting DB
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials // Don't reveal if user exists or password is wrong
		}
		log.Printf("Error retrieving user %s during login: %v", email, err)
		return "", nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if !auth.CheckPasswordHash(password, user.HashedPassword) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.NewAccessToken(user.ID, user.StoreID, s.cfg.JWTSecret, s.cfg.TokenExpiration)
	if err != nil {
		log.Printf("Error generating JWT for user %s (ID: %s): %v", email, user.ID, err)
		return "", nil, ErrCreatingToken
	}

	log.Printf("Successfully logged in user %s (ID: %s)", email, user.ID)
	return token, user, nil
}

// ForgotPassword issues a reset token and mails it to the account owner.
// An unknown email is treated as success so the endpoint does not reveal
// which addresses have accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return FieldErrors{"email": {"email cannot be empty"}}
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Printf("[AuthService] ForgotPassword: no account for %s, responding as success", email)
			return nil
		}
		return fmt.Errorf("failed to retrieve user: %w", err)
	}

	token, err := auth.NewResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	resetToken := &models.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: auth.ComputeExpiry(time.Now(), s.cfg.ResetTokenTTL),
	}
	if err := s.store.CreatePasswordResetToken(ctx, resetToken); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	msg := mailer.Message{
		From:    s.cfg.MailFrom,
		To:      user.Email,
		Subject: "Reset your password",
		Text:    fmt.Sprintf("Hi %s,\n\nUse this token to reset your password: %s\n\nIt expires in %s.", user.Name, token, s.cfg.ResetTokenTTL),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		// Fire-and-forget from the caller's perspective, but worth a log line.
		log.Printf("ERROR [AuthService] ForgotPassword: sending reset mail to %s failed: %v", user.Email, err)
	}

	log.Printf("[AuthService] ForgotPassword: issued reset token for user %s", user.ID)
	return nil
}

// ResetPassword consumes a reset token and replaces the user's password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	fieldErrs := FieldErrors{}
	if strings.TrimSpace(token) == "" {
		fieldErrs.Add("token", "token cannot be empty")
	}
	if newPassword == "" {
		fieldErrs.Add("password", "password cannot be empty")
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}

	resetToken, err := s.store.GetPasswordResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("failed to retrieve reset token: %w", err)
	}
	if resetToken.UsedAt != nil || time.Now().After(resetToken.ExpiresAt) {
		return ErrResetTokenInvalid
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return ErrHashingPassword
	}

	if err := s.store.UpdateUserPassword(ctx, resetToken.UserID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := s.store.MarkPasswordResetTokenUsed(ctx, resetToken.ID); err != nil {
		log.Printf("ERROR [AuthService] ResetPassword: marking token %s used failed: %v", resetToken.ID, err)
	}

	log.Printf("[AuthService] ResetPassword: password updated for user %s", resetToken.UserID)
	return nil
}
