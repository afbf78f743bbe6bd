package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voltlog/voltlog/internal/models"
)

// defaultWeeks 周统计默认回溯窗口
const defaultWeeks = 8

// GetStats 基础统计
func (h *Handler) GetStats(c *gin.Context) {
	userID, ok := h.queryInt64(c, "userId")
	if !ok {
		return
	}
	vehicleID, ok := h.queryInt64(c, "vehicleId")
	if !ok {
		return
	}

	stats, err := h.stats.Simple(c.Request.Context(), userID, vehicleID)
	if err != nil {
		h.serverError(c, "Failed to get stats", err)
		return
	}

	stats.AvgConsumption = round2p(stats.AvgConsumption)
	c.JSON(http.StatusOK, stats)
}

// GetConsumptionStats 百公里能耗统计
func (h *Handler) GetConsumptionStats(c *gin.Context) {
	vehicleID, ok := h.queryInt64(c, "vehicleId")
	if !ok {
		return
	}

	stats, err := h.stats.Consumption(c.Request.Context(), vehicleID)
	if err != nil {
		h.serverError(c, "Failed to get consumption stats", err)
		return
	}

	stats.AvgConsumptionPer100Km = round2p(stats.AvgConsumptionPer100Km)
	stats.AvgCostPerKwh = round2p(stats.AvgCostPerKwh)
	c.JSON(http.StatusOK, stats)
}

// GetGlobalStats 基于里程差的全局统计
func (h *Handler) GetGlobalStats(c *gin.Context) {
	userID, ok := h.queryInt64(c, "userId")
	if !ok {
		return
	}
	vehicleID, ok := h.queryInt64(c, "vehicleId")
	if !ok {
		return
	}

	stats, err := h.stats.Global(c.Request.Context(), userID, vehicleID)
	if err != nil {
		h.serverError(c, "Failed to get global stats", err)
		return
	}

	stats.AvgConsumption = round2p(stats.AvgConsumption)
	stats.AvgCostPerKwh = round2p(stats.AvgCostPerKwh)
	stats.AvgCostPerKm = round2p(stats.AvgCostPerKm)
	c.JSON(http.StatusOK, stats)
}

// GetChargeSeries 图表用原始充电序列
func (h *Handler) GetChargeSeries(c *gin.Context) {
	userID, ok := h.queryInt64(c, "userId")
	if !ok {
		return
	}
	vehicleID, ok := h.queryInt64(c, "vehicleId")
	if !ok {
		return
	}

	points, err := h.stats.ChargeSeries(c.Request.Context(), userID, vehicleID)
	if err != nil {
		h.serverError(c, "Failed to get charge series", err)
		return
	}

	c.JSON(http.StatusOK, points)
}

// GetCumulativeStats 累计统计
func (h *Handler) GetCumulativeStats(c *gin.Context) {
	userID, ok := h.queryInt64(c, "userId")
	if !ok {
		return
	}
	vehicleID, ok := h.queryInt64(c, "vehicleId")
	if !ok {
		return
	}

	stats, err := h.stats.Cumulative(c.Request.Context(), userID, vehicleID)
	if err != nil {
		h.serverError(c, "Failed to get cumulative stats", err)
		return
	}

	stats.TotalMileage = models.Round2(stats.TotalMileage)
	stats.TotalKwh = models.Round2(stats.TotalKwh)
	stats.TotalCost = models.Round2(stats.TotalCost)
	stats.TotalDistance = models.Round2(stats.TotalDistance)
	c.JSON(http.StatusOK, stats)
}

// GetMonthlyStats 当前自然月与上一自然月的充电量
func (h *Handler) GetMonthlyStats(c *gin.Context) {
	userID, ok := h.queryInt64(c, "userId")
	if !ok {
		return
	}
	vehicleID, ok := h.queryInt64(c, "vehicleId")
	if !ok {
		return
	}

	stats, err := h.stats.Monthly(c.Request.Context(), userID, vehicleID)
	if err != nil {
		h.serverError(c, "Failed to get monthly stats", err)
		return
	}

	stats.CurrentMonth = models.Round2(stats.CurrentMonth)
	stats.PreviousMonth = models.Round2(stats.PreviousMonth)
	c.JSON(http.StatusOK, stats)
}

// GetLocationStats 按充电地点分组的统计
func (h *Handler) GetLocationStats(c *gin.Context) {
	userID, ok := h.queryInt64(c, "userId")
	if !ok {
		return
	}
	vehicleID, ok := h.queryInt64(c, "vehicleId")
	if !ok {
		return
	}

	stats, err := h.stats.ByLocation(c.Request.Context(), userID, vehicleID)
	if err != nil {
		h.serverError(c, "Failed to get location stats", err)
		return
	}

	for i := range stats {
		stats[i].TotalKwh = models.Round2(stats[i].TotalKwh)
	}
	c.JSON(http.StatusOK, stats)
}

// GetWeeklyStats 周统计，以日期区间为标签
func (h *Handler) GetWeeklyStats(c *gin.Context) {
	h.weeklyStats(c, weekRangeLabel)
}

// GetWeeklyStatsNumbered 周统计，以 ISO 周号为标签
func (h *Handler) GetWeeklyStatsNumbered(c *gin.Context) {
	h.weeklyStats(c, weekNumberLabel)
}

func (h *Handler) weeklyStats(c *gin.Context, label func(time.Time) string) {
	userID, ok := h.queryInt64(c, "userId")
	if !ok {
		return
	}
	vehicleID, ok := h.queryInt64(c, "vehicleId")
	if !ok {
		return
	}

	weeks, _ := strconv.Atoi(c.DefaultQuery("weeks", strconv.Itoa(defaultWeeks)))
	if weeks < 1 {
		weeks = defaultWeeks
	}

	buckets, err := h.stats.Weekly(c.Request.Context(), userID, vehicleID, weeks)
	if err != nil {
		h.serverError(c, "Failed to get weekly stats", err)
		return
	}

	for i := range buckets {
		buckets[i].TotalKwh = models.Round2(buckets[i].TotalKwh)
		buckets[i].Label = label(buckets[i].WeekStart)
	}
	c.JSON(http.StatusOK, buckets)
}

// weekRangeLabel 周起止日期区间，如 "Jan 02 - Jan 08"
func weekRangeLabel(weekStart time.Time) string {
	weekEnd := weekStart.AddDate(0, 0, 6)
	return weekStart.Format("Jan 02") + " - " + weekEnd.Format("Jan 02")
}

// weekNumberLabel ISO 周号，如 "Week 14"
func weekNumberLabel(weekStart time.Time) string {
	_, week := weekStart.ISOWeek()
	return fmt.Sprintf("Week %d", week)
}

// round2p 保留两位小数，nil（无数据）原样返回
func round2p(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := models.Round2(*v)
	return &r
}
