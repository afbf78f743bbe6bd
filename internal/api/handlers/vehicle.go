package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voltlog/voltlog/internal/models"
)

type createVehicleRequest struct {
	UserID          int64   `json:"userId"`
	Model           string  `json:"model"`
	BatteryCapacity float64 `json:"batteryCapacity"`
	RangeKm         float64 `json:"range"`
	Color           string  `json:"color"`
}

// CreateVehicle 创建车辆
func (h *Handler) CreateVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	vehicle := &models.Vehicle{
		UserID:          req.UserID,
		Model:           req.Model,
		BatteryCapacity: req.BatteryCapacity,
		RangeKm:         req.RangeKm,
		Color:           req.Color,
	}
	if err := h.vehicles.Create(c.Request.Context(), vehicle); err != nil {
		h.serverError(c, "Failed to create vehicle", err)
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// ListVehicles 获取用户的车辆列表
func (h *Handler) ListVehicles(c *gin.Context) {
	userID, ok := h.queryInt64(c, "userId")
	if !ok {
		return
	}

	vehicles, err := h.vehicles.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.serverError(c, "Failed to list vehicles", err)
		return
	}

	c.JSON(http.StatusOK, vehicles)
}
