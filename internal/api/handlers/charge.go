package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voltlog/voltlog/internal/models"
)

type createChargeRequest struct {
	UserID    int64   `json:"userId"`
	VehicleID int64   `json:"vehicleId"`
	Date      string  `json:"date"`
	Kwh       float64 `json:"kwh"`
	Cost      float64 `json:"cost"`
	Mileage   float64 `json:"mileage"`
	Location  string  `json:"location"`
}

// CreateCharge 创建充电记录。
// kwh/cost/mileage 入库前归一化为两位小数，成功后向 WebSocket 客户端广播
func (h *Handler) CreateCharge(c *gin.Context) {
	var req createChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.UserID == 0 || req.VehicleID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and vehicleId are required"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	charge := &models.Charge{
		UserID:    req.UserID,
		VehicleID: req.VehicleID,
		Date:      date,
		Kwh:       models.Round2(req.Kwh),
		Cost:      models.Round2(req.Cost),
		Mileage:   models.Round2(req.Mileage),
		Location:  req.Location,
	}
	if err := h.charges.Create(c.Request.Context(), charge); err != nil {
		h.serverError(c, "Failed to create charge", err)
		return
	}

	if h.hub != nil {
		h.hub.BroadcastChargeCreated(charge)
	}

	c.JSON(http.StatusCreated, charge)
}

// ListCharges 获取用户某辆车的充电记录，按日期倒序
func (h *Handler) ListCharges(c *gin.Context) {
	userID, ok := h.queryInt64(c, "userId")
	if !ok {
		return
	}
	vehicleID, ok := h.queryInt64(c, "vehicleId")
	if !ok {
		return
	}

	charges, err := h.charges.ListByUserVehicle(c.Request.Context(), userID, vehicleID)
	if err != nil {
		h.serverError(c, "Failed to list charges", err)
		return
	}

	c.JSON(http.StatusOK, charges)
}
