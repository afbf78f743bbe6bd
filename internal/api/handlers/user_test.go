package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/voltlog/voltlog/internal/models"
)

func TestCreateUserHashesPassword(t *testing.T) {
	var stored *models.User
	stores := &fakeStores{
		createUser: func(ctx context.Context, u *models.User) error {
			u.ID = 1
			stored = u
			return nil
		},
	}
	router := newTestRouter(t, stores)

	w := doJSON(t, router, http.MethodPost, "/api/users", map[string]interface{}{
		"name":     "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))

	// 响应不能泄露密码哈希
	assert.NotContains(t, w.Body.String(), stored.PasswordHash)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

func TestCreateUserEmptyPassword(t *testing.T) {
	router := newTestRouter(t, &fakeStores{})

	w := doJSON(t, router, http.MethodPost, "/api/users", map[string]interface{}{
		"name":  "alice",
		"email": "alice@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUsers(t *testing.T) {
	stores := &fakeStores{
		listUsers: func(ctx context.Context) ([]models.User, error) {
			return []models.User{
				{ID: 1, Name: "alice", Email: "alice@example.com"},
				{ID: 2, Name: "bob", Email: "bob@example.com"},
			}, nil
		},
	}
	router := newTestRouter(t, stores)

	w := doJSON(t, router, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.User
	decodeBody(t, w, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "bob", resp[1].Name)
}
