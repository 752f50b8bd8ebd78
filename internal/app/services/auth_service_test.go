package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freemodule/backend/internal/app/models"
	"github.com/freemodule/backend/internal/app/models/dto"
	"github.com/freemodule/backend/internal/pkg/apperrors"
	"github.com/freemodule/backend/internal/pkg/auth"
)

type fakeUserStore struct {
	users      map[string]*models.User
	nextID     int64
	createErr  error
	lastCreate struct {
		name, email, hash string
	}
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, passwordHash string) (*models.User, error) {
	f.lastCreate.name, f.lastCreate.email, f.lastCreate.hash = name, email, passwordHash
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, exists := f.users[email]; exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	user := &models.User{
		ID:           f.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.nextID++
	f.users[email] = user
	return user, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) GenerateToken(userID int64, email string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + email, nil
}

func newAuthServiceForTest(store *fakeUserStore) *AuthService {
	return NewAuthService(store, &fakeTokenIssuer{}, "@ustp.edu.ph")
}

func TestRegister(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Juan dela Cruz",
		Email:    "juan@ustp.edu.ph",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "token-for-juan@ustp.edu.ph", resp.Token)
	assert.Equal(t, "Juan dela Cruz", resp.User.Name)
	assert.Equal(t, "juan@ustp.edu.ph", resp.User.Email)

	// The stored hash is bcrypt, never the plaintext.
	assert.NotEqual(t, "secret123", store.lastCreate.hash)
	assert.True(t, auth.CheckPassword(store.lastCreate.hash, "secret123"))
}

func TestRegister_SanitizesName(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "<b>Juan</b> dela Cruz",
		Email:    "juan@ustp.edu.ph",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Juan dela Cruz", store.lastCreate.name)
}

func TestRegister_NormalizesEmailCase(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jamie Cruz",
		Email:    "Jamie.Cruz@USTP.edu.ph",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "jamie.cruz@ustp.edu.ph", resp.User.Email)
	assert.Equal(t, "jamie.cruz@ustp.edu.ph", store.lastCreate.email)

	// A case variant of the same address cannot become a second account.
	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jamie Cruz",
		Email:    "JAMIE.CRUZ@ustp.edu.ph",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Jamie Cruz",
		Email:    "Jamie.Cruz@ustp.edu.ph",
		Password: "secret123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jamie.cruz@ustp.edu.ph",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "jamie.cruz@ustp.edu.ph", resp.User.Email)
}

func TestRegister_ValidationDetails(t *testing.T) {
	svc := newAuthServiceForTest(newFakeUserStore())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "J",
		Email:    "juan@gmail.com",
		Password: "short",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	var custom *apperrors.CustomError
	require.ErrorAs(t, err, &custom)
	details, ok := custom.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	req := dto.RegisterRequest{Name: "Juan", Email: "juan@ustp.edu.ph", Password: "secret123"}
	_, err := svc.Register(context.Background(), &req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Juan",
		Email:    "juan@ustp.edu.ph",
		Password: "secret123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "juan@ustp.edu.ph",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "juan@ustp.edu.ph", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_BadCredentials(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthServiceForTest(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Juan",
		Email:    "juan@ustp.edu.ph",
		Password: "secret123",
	})
	require.NoError(t, err)

	// Unknown email and wrong password are indistinguishable to the caller.
	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@ustp.edu.ph", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "juan@ustp.edu.ph", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
