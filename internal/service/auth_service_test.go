package service

import (
	"context"
	"os"
	"testing"

	"storefront-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, &fakeMailer{}, nil)

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "supersecret",
		FullName: "Jane Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", res.Email)

	require.Len(t, store.users, 1)
	user := store.users[0]
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "supersecret", *user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("supersecret")))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, &fakeMailer{}, nil)

	req := &dto.RegisterRequest{Email: "jane@example.com", Password: "supersecret", FullName: "Jane Doe"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	assert.Len(t, store.users, 1)
}

func TestLoginIssuesToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")
	defer os.Unsetenv("JWT_SECRET")

	store := newFakeStore()
	svc := NewAuthService(store, &fakeMailer{}, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "supersecret",
		FullName: "Jane Doe",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", res.FullName)

	token, err := jwt.Parse(res.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, store.users[0].Id.String(), claims["user_id"])
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, &fakeMailer{}, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "jane@example.com",
		Password: "supersecret",
		FullName: "Jane Doe",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	store := newFakeStore()
	svc := NewAuthService(store, &fakeMailer{}, nil)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}
