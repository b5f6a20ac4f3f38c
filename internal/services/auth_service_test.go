package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecopy-backend/internal/auth"
	"storecopy-backend/internal/config"
	"storecopy-backend/internal/mailer"
	"storecopy-backend/internal/models"
	"storecopy-backend/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		TokenExpiration: time.Hour,
		ResetTokenTTL:   30 * time.Minute,
		MailFrom:        "no-reply@example.com",
	}
}

// recordingMailer captures outbound mail for assertions.
type recordingMailer struct {
	sent []mailer.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mailer.Message) error {
	m.sent = append(m.sent, msg)
	return m.err
}

func TestSignup_CreatesStoreThenUser(t *testing.T) {
	var createdStore *models.Store
	var createdUser *models.User

	ms := &mockStore{
		getUserByEmailFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, store.ErrNotFound
		},
		createStoreFn: func(_ context.Context, s *models.Store) error {
			createdStore = s
			return nil
		},
		createUserFn: func(_ context.Context, u *models.User) error {
			createdUser = u
			return nil
		},
	}
	svc := NewAuthService(ms, &recordingMailer{}, testConfig())

	user, err := svc.Signup(context.Background(), models.SignupRequest{
		Name:      "Maya",
		Email:     "Maya@Example.com",
		Password:  "hunter22",
		StoreName: "Maya's Sneaker Shop",
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, createdStore)
	require.NotNil(t, createdUser)

	assert.Equal(t, "maya@example.com", user.Email, "email should be normalized")
	assert.Equal(t, createdStore.ID, user.StoreID)
	assert.Equal(t, "Maya's Sneaker Shop", createdStore.Name)
	assert.NotEqual(t, "hunter22", user.HashedPassword)
	assert.True(t, auth.CheckPasswordHash("hunter22", user.HashedPassword))
}

func TestSignup_DefaultsStoreName(t *testing.T) {
	var createdStore *models.Store
	ms := &mockStore{
		getUserByEmailFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, store.ErrNotFound
		},
		createStoreFn: func(_ context.Context, s *models.Store) error {
			createdStore = s
			return nil
		},
		createUserFn: func(_ context.Context, _ *models.User) error { return nil },
	}
	svc := NewAuthService(ms, &recordingMailer{}, testConfig())

	_, err := svc.Signup(context.Background(), models.SignupRequest{
		Name:     "Maya",
		Email:    "maya@example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	require.NotNil(t, createdStore)
	assert.Equal(t, "Maya's Store", createdStore.Name)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ms := &mockStore{
		getUserByEmailFn: func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: uuid.New()}, nil
		},
	}
	svc := NewAuthService(ms, &recordingMailer{}, testConfig())

	_, err := svc.Signup(context.Background(), models.SignupRequest{
		Name:     "Maya",
		Email:    "maya@example.com",
		Password: "hunter22",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestSignup_Validation(t *testing.T) {
	svc := NewAuthService(&mockStore{}, &recordingMailer{}, testConfig())

	_, err := svc.Signup(context.Background(), models.SignupRequest{})

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "email")
	assert.Contains(t, fieldErrs, "password")
	assert.Contains(t, fieldErrs, "name")
}

func TestLogin_Success(t *testing.T) {
	hashed, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	userID := uuid.New()
	ms := &mockStore{
		getUserByEmailFn: func(_ context.Context, email string) (*models.User, error) {
			assert.Equal(t, "maya@example.com", email)
			return &models.User{
				ID:             userID,
				StoreID:        uuid.New(),
				Email:          email,
				HashedPassword: hashed,
			}, nil
		},
	}
	svc := NewAuthService(ms, &recordingMailer{}, testConfig())

	token, user, err := svc.Login(context.Background(), " Maya@Example.com ", "hunter22")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, userID, user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hashed, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	ms := &mockStore{
		getUserByEmailFn: func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: uuid.New(), HashedPassword: hashed}, nil
		},
	}
	svc := NewAuthService(ms, &recordingMailer{}, testConfig())

	_, _, err = svc.Login(context.Background(), "maya@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ms := &mockStore{
		getUserByEmailFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, store.ErrNotFound
		},
	}
	svc := NewAuthService(ms, &recordingMailer{}, testConfig())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestForgotPassword_IssuesTokenAndMails(t *testing.T) {
	userID := uuid.New()
	var storedToken *models.PasswordResetToken

	ms := &mockStore{
		getUserByEmailFn: func(_ context.Context, _ string) (*models.User, error) {
			return &models.User{ID: userID, Name: "Maya", Email: "maya@example.com"}, nil
		},
		createPasswordResetTokenFn: func(_ context.Context, tok *models.PasswordResetToken) error {
			storedToken = tok
			return nil
		},
	}
	mail := &recordingMailer{}
	svc := NewAuthService(ms, mail, testConfig())

	require.NoError(t, svc.ForgotPassword(context.Background(), "maya@example.com"))

	require.NotNil(t, storedToken)
	assert.Equal(t, userID, storedToken.UserID)
	assert.NotEmpty(t, storedToken.Token)
	assert.True(t, storedToken.ExpiresAt.After(time.Now()))

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "maya@example.com", mail.sent[0].To)
	assert.Contains(t, mail.sent[0].Text, storedToken.Token)
}

func TestForgotPassword_UnknownEmailIsSilentSuccess(t *testing.T) {
	ms := &mockStore{
		getUserByEmailFn: func(_ context.Context, _ string) (*models.User, error) {
			return nil, store.ErrNotFound
		},
	}
	mail := &recordingMailer{}
	svc := NewAuthService(ms, mail, testConfig())

	require.NoError(t, svc.ForgotPassword(context.Background(), "nobody@example.com"))
	assert.Empty(t, mail.sent)
}

func TestResetPassword_HappyPath(t *testing.T) {
	userID := uuid.New()
	tokenID := uuid.New()
	var newHash string
	var markedUsed bool

	ms := &mockStore{
		getPasswordResetTokenFn: func(_ context.Context, token string) (*models.PasswordResetToken, error) {
			assert.Equal(t, "goodtoken", token)
			return &models.PasswordResetToken{
				ID:        tokenID,
				UserID:    userID,
				Token:     token,
				ExpiresAt: time.Now().Add(10 * time.Minute),
			}, nil
		},
		updateUserPasswordFn: func(_ context.Context, id uuid.UUID, hashed string) error {
			assert.Equal(t, userID, id)
			newHash = hashed
			return nil
		},
		markPasswordResetTokenUsedFn: func(_ context.Context, id uuid.UUID) error {
			assert.Equal(t, tokenID, id)
			markedUsed = true
			return nil
		},
	}
	svc := NewAuthService(ms, &recordingMailer{}, testConfig())

	require.NoError(t, svc.ResetPassword(context.Background(), "goodtoken", "newpass99"))
	assert.True(t, markedUsed)
	assert.True(t, auth.CheckPasswordHash("newpass99", newHash))
}

func TestResetPassword_RejectsExpiredOrUsedToken(t *testing.T) {
	used := time.Now().Add(-time.Minute)
	tests := []struct {
		name  string
		token *models.PasswordResetToken
	}{
		{
			name: "expired",
			token: &models.PasswordResetToken{
				ID: uuid.New(), UserID: uuid.New(),
				ExpiresAt: time.Now().Add(-time.Minute),
			},
		},
		{
			name: "already used",
			token: &models.PasswordResetToken{
				ID: uuid.New(), UserID: uuid.New(),
				ExpiresAt: time.Now().Add(10 * time.Minute),
				UsedAt:    &used,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ms := &mockStore{
				getPasswordResetTokenFn: func(_ context.Context, _ string) (*models.PasswordResetToken, error) {
					return tc.token, nil
				},
			}
			svc := NewAuthService(ms, &recordingMailer{}, testConfig())

			err := svc.ResetPassword(context.Background(), "sometoken", "newpass99")
			assert.ErrorIs(t, err, ErrResetTokenInvalid)
		})
	}
}

func TestResetPassword_UnknownToken(t *testing.T) {
	ms := &mockStore{
		getPasswordResetTokenFn: func(_ context.Context, _ string) (*models.PasswordResetToken, error) {
			return nil, store.ErrNotFound
		},
	}
	svc := NewAuthService(ms, &recordingMailer{}, testConfig())

	err := svc.ResetPassword(context.Background(), "nope", "newpass99")
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}
