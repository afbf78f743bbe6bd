package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/voltlog/voltlog/internal/auth"
	"github.com/voltlog/voltlog/internal/models"
	"github.com/voltlog/voltlog/pkg/ws"
)

// UserStore 用户存取接口，由 repository.UserRepository 实现
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	List(ctx context.Context) ([]models.User, error)
}

// VehicleStore 车辆存取接口
type VehicleStore interface {
	Create(ctx context.Context, v *models.Vehicle) error
	ListByUser(ctx context.Context, userID int64) ([]models.Vehicle, error)
}

// ChargeStore 充电记录存取接口
type ChargeStore interface {
	Create(ctx context.Context, c *models.Charge) error
	ListByUserVehicle(ctx context.Context, userID, vehicleID int64) ([]models.Charge, error)
}

// PreferenceStore 偏好存取接口
type PreferenceStore interface {
	Upsert(ctx context.Context, p *models.Preference) error
	GetFirst(ctx context.Context) (*models.PreferenceView, error)
	GetByUser(ctx context.Context, userID int64) (*models.PreferenceView, error)
}

// StatsStore 统计查询接口，由 repository.StatsRepository 实现
type StatsStore interface {
	Simple(ctx context.Context, userID, vehicleID int64) (*models.SimpleStats, error)
	Consumption(ctx context.Context, vehicleID int64) (*models.ConsumptionStats, error)
	Global(ctx context.Context, userID, vehicleID int64) (*models.GlobalStats, error)
	ChargeSeries(ctx context.Context, userID, vehicleID int64) ([]models.ChargePoint, error)
	Cumulative(ctx context.Context, userID, vehicleID int64) (*models.CumulativeStats, error)
	Monthly(ctx context.Context, userID, vehicleID int64) (*models.MonthlyStats, error)
	ByLocation(ctx context.Context, userID, vehicleID int64) ([]models.LocationStats, error)
	Weekly(ctx context.Context, userID, vehicleID int64, weeks int) ([]models.WeeklyBucket, error)
}

// Handler HTTP 处理器
type Handler struct {
	logger   *zap.Logger
	users    UserStore
	vehicles VehicleStore
	charges  ChargeStore
	prefs    PreferenceStore
	stats    StatsStore
	hasher   auth.PasswordHasher
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewHandler 创建处理器
func NewHandler(
	logger *zap.Logger,
	users UserStore,
	vehicles VehicleStore,
	charges ChargeStore,
	prefs PreferenceStore,
	stats StatsStore,
	hasher auth.PasswordHasher,
	hub *ws.Hub,
) *Handler {
	return &Handler{
		logger:   logger,
		users:    users,
		vehicles: vehicles,
		charges:  charges,
		prefs:    prefs,
		stats:    stats,
		hasher:   hasher,
		hub:      hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // 前端与 API 跨域部署
			},
		},
	}
}

// RegisterRoutes 注册路由
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		// 用户
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)

		// 车辆
		api.POST("/vehicles", h.CreateVehicle)
		api.GET("/vehicles", h.ListVehicles)

		// 充电记录
		api.POST("/charges", h.CreateCharge)
		api.GET("/charges", h.ListCharges)

		// 偏好设置
		api.POST("/preferences", h.UpsertPreferences)
		api.GET("/preferences", h.GetPreferences)
		api.GET("/preferences/user", h.GetUserPreferences)

		// 统计
		api.GET("/stats", h.GetStats)
		api.GET("/stats/consumption", h.GetConsumptionStats)
		api.GET("/stats/global", h.GetGlobalStats)
		api.GET("/stats/charges", h.GetChargeSeries)
		api.GET("/stats/cumulative", h.GetCumulativeStats)
		api.GET("/stats/monthly-charges", h.GetMonthlyStats)
		api.GET("/stats/charges-by-location", h.GetLocationStats)
		api.GET("/stats/weekly-charges", h.GetWeeklyStats)
		api.GET("/stats/weekly-charges-numbered", h.GetWeeklyStatsNumbered)
	}

	// WebSocket
	r.GET("/ws", h.HandleWebSocket)

	// 健康检查
	r.GET("/health", h.HealthCheck)
}

// HandleWebSocket WebSocket 处理
func (h *Handler) HandleWebSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade websocket", zap.Error(err))
		return
	}

	client := ws.NewClient(h.hub, conn)
	client.Register()

	// 启动读写协程
	go client.ReadPump()
	go client.WritePump()
}

// HealthCheck 健康检查
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"ws_clients": h.hub.ClientCount(),
	})
}

// serverError 记录并返回 500，响应体携带底层错误信息
func (h *Handler) serverError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// queryInt64 解析必填的整型查询参数，缺失或非法时返回 false 并响应 400
func (h *Handler) queryInt64(c *gin.Context, name string) (int64, bool) {
	value, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return value, true
}

// 充电日期接受完整 ISO-8601 时间戳或纯日期
var dateFormats = []string{time.RFC3339, "2006-01-02"}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateFormats {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
