package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voltlog/voltlog/internal/models"
)

type upsertPreferencesRequest struct {
	UserID            int64    `json:"userId"`
	SelectedVehicleID *int64   `json:"selectedVehicleId"`
	ElectricityPrice  *float64 `json:"electricityPrice"`
	AlertThreshold    *float64 `json:"alertThreshold"`
}

// UpsertPreferences 写入用户偏好，userId 必填。
// 请求中省略的可选字段保留已存储的值
func (h *Handler) UpsertPreferences(c *gin.Context) {
	var req upsertPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	pref := &models.Preference{
		UserID:            req.UserID,
		SelectedVehicleID: req.SelectedVehicleID,
		ElectricityPrice:  req.ElectricityPrice,
		AlertThreshold:    req.AlertThreshold,
	}
	if err := h.prefs.Upsert(c.Request.Context(), pref); err != nil {
		h.serverError(c, "Failed to upsert preferences", err)
		return
	}

	c.JSON(http.StatusCreated, pref)
}

// GetPreferences 获取第一条偏好记录（含用户与所选车辆），无记录时返回空对象
func (h *Handler) GetPreferences(c *gin.Context) {
	view, err := h.prefs.GetFirst(c.Request.Context())
	if err != nil {
		h.serverError(c, "Failed to get preferences", err)
		return
	}
	if view == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetUserPreferences 获取指定用户的偏好记录
func (h *Handler) GetUserPreferences(c *gin.Context) {
	userID, ok := h.queryInt64(c, "userId")
	if !ok {
		return
	}

	view, err := h.prefs.GetByUser(c.Request.Context(), userID)
	if err != nil {
		h.serverError(c, "Failed to get preferences", err)
		return
	}
	if view == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, view)
}
