package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltlog/voltlog/internal/models"
)

func TestCreateVehicle(t *testing.T) {
	var stored *models.Vehicle
	stores := &fakeStores{
		createVehicle: func(ctx context.Context, v *models.Vehicle) error {
			v.ID = 5
			stored = v
			return nil
		},
	}
	router := newTestRouter(t, stores)

	w := doJSON(t, router, http.MethodPost, "/api/vehicles", map[string]interface{}{
		"userId":          1,
		"model":           "Model Y",
		"batteryCapacity": 75,
		"range":           533,
		"color":           "white",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, stored)
	assert.Equal(t, int64(1), stored.UserID)
	assert.InDelta(t, 533, stored.RangeKm, 1e-9)

	var resp models.Vehicle
	decodeBody(t, w, &resp)
	assert.Equal(t, int64(5), resp.ID)
}

func TestCreateVehicleRequiresUserID(t *testing.T) {
	router := newTestRouter(t, &fakeStores{})

	w := doJSON(t, router, http.MethodPost, "/api/vehicles", map[string]interface{}{
		"model": "Model Y",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "userId is required")
}

func TestListVehiclesRequiresUserID(t *testing.T) {
	router := newTestRouter(t, &fakeStores{})

	w := doJSON(t, router, http.MethodGet, "/api/vehicles", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListVehicles(t *testing.T) {
	stores := &fakeStores{
		listVehicles: func(ctx context.Context, userID int64) ([]models.Vehicle, error) {
			assert.Equal(t, int64(1), userID)
			return []models.Vehicle{{ID: 5, UserID: 1, Model: "Model Y"}}, nil
		},
	}
	router := newTestRouter(t, stores)

	w := doJSON(t, router, http.MethodGet, "/api/vehicles?userId=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.Vehicle
	decodeBody(t, w, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, "Model Y", resp[0].Model)
}
