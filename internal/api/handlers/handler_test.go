package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/voltlog/voltlog/internal/auth"
	"github.com/voltlog/voltlog/internal/models"
	"github.com/voltlog/voltlog/pkg/ws"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeStores 各存取接口的测试替身，未设置的方法返回零值
type fakeStores struct {
	createUser    func(ctx context.Context, u *models.User) error
	listUsers     func(ctx context.Context) ([]models.User, error)
	createVehicle func(ctx context.Context, v *models.Vehicle) error
	listVehicles  func(ctx context.Context, userID int64) ([]models.Vehicle, error)
	createCharge  func(ctx context.Context, c *models.Charge) error
	listCharges   func(ctx context.Context, userID, vehicleID int64) ([]models.Charge, error)
	upsertPref    func(ctx context.Context, p *models.Preference) error
	getFirstPref  func(ctx context.Context) (*models.PreferenceView, error)
	getUserPref   func(ctx context.Context, userID int64) (*models.PreferenceView, error)

	simple      func(ctx context.Context, userID, vehicleID int64) (*models.SimpleStats, error)
	consumption func(ctx context.Context, vehicleID int64) (*models.ConsumptionStats, error)
	global      func(ctx context.Context, userID, vehicleID int64) (*models.GlobalStats, error)
	series      func(ctx context.Context, userID, vehicleID int64) ([]models.ChargePoint, error)
	cumulative  func(ctx context.Context, userID, vehicleID int64) (*models.CumulativeStats, error)
	monthly     func(ctx context.Context, userID, vehicleID int64) (*models.MonthlyStats, error)
	byLocation  func(ctx context.Context, userID, vehicleID int64) ([]models.LocationStats, error)
	weekly      func(ctx context.Context, userID, vehicleID int64, weeks int) ([]models.WeeklyBucket, error)
}

func (f *fakeStores) Create(ctx context.Context, u *models.User) error {
	if f.createUser != nil {
		return f.createUser(ctx, u)
	}
	return nil
}

func (f *fakeStores) List(ctx context.Context) ([]models.User, error) {
	if f.listUsers != nil {
		return f.listUsers(ctx)
	}
	return []models.User{}, nil
}

type fakeVehicleStore struct{ *fakeStores }

func (f fakeVehicleStore) Create(ctx context.Context, v *models.Vehicle) error {
	if f.createVehicle != nil {
		return f.createVehicle(ctx, v)
	}
	return nil
}

func (f fakeVehicleStore) ListByUser(ctx context.Context, userID int64) ([]models.Vehicle, error) {
	if f.listVehicles != nil {
		return f.listVehicles(ctx, userID)
	}
	return []models.Vehicle{}, nil
}

type fakeChargeStore struct{ *fakeStores }

func (f fakeChargeStore) Create(ctx context.Context, c *models.Charge) error {
	if f.createCharge != nil {
		return f.createCharge(ctx, c)
	}
	return nil
}

func (f fakeChargeStore) ListByUserVehicle(ctx context.Context, userID, vehicleID int64) ([]models.Charge, error) {
	if f.listCharges != nil {
		return f.listCharges(ctx, userID, vehicleID)
	}
	return []models.Charge{}, nil
}

type fakePreferenceStore struct{ *fakeStores }

func (f fakePreferenceStore) Upsert(ctx context.Context, p *models.Preference) error {
	if f.upsertPref != nil {
		return f.upsertPref(ctx, p)
	}
	return nil
}

func (f fakePreferenceStore) GetFirst(ctx context.Context) (*models.PreferenceView, error) {
	if f.getFirstPref != nil {
		return f.getFirstPref(ctx)
	}
	return nil, nil
}

func (f fakePreferenceStore) GetByUser(ctx context.Context, userID int64) (*models.PreferenceView, error) {
	if f.getUserPref != nil {
		return f.getUserPref(ctx, userID)
	}
	return nil, nil
}

type fakeStatsStore struct{ *fakeStores }

func (f fakeStatsStore) Simple(ctx context.Context, userID, vehicleID int64) (*models.SimpleStats, error) {
	if f.simple != nil {
		return f.simple(ctx, userID, vehicleID)
	}
	return &models.SimpleStats{}, nil
}

func (f fakeStatsStore) Consumption(ctx context.Context, vehicleID int64) (*models.ConsumptionStats, error) {
	if f.consumption != nil {
		return f.consumption(ctx, vehicleID)
	}
	return &models.ConsumptionStats{}, nil
}

func (f fakeStatsStore) Global(ctx context.Context, userID, vehicleID int64) (*models.GlobalStats, error) {
	if f.global != nil {
		return f.global(ctx, userID, vehicleID)
	}
	return &models.GlobalStats{}, nil
}

func (f fakeStatsStore) ChargeSeries(ctx context.Context, userID, vehicleID int64) ([]models.ChargePoint, error) {
	if f.series != nil {
		return f.series(ctx, userID, vehicleID)
	}
	return []models.ChargePoint{}, nil
}

func (f fakeStatsStore) Cumulative(ctx context.Context, userID, vehicleID int64) (*models.CumulativeStats, error) {
	if f.cumulative != nil {
		return f.cumulative(ctx, userID, vehicleID)
	}
	return &models.CumulativeStats{}, nil
}

func (f fakeStatsStore) Monthly(ctx context.Context, userID, vehicleID int64) (*models.MonthlyStats, error) {
	if f.monthly != nil {
		return f.monthly(ctx, userID, vehicleID)
	}
	return &models.MonthlyStats{}, nil
}

func (f fakeStatsStore) ByLocation(ctx context.Context, userID, vehicleID int64) ([]models.LocationStats, error) {
	if f.byLocation != nil {
		return f.byLocation(ctx, userID, vehicleID)
	}
	return []models.LocationStats{}, nil
}

func (f fakeStatsStore) Weekly(ctx context.Context, userID, vehicleID int64, weeks int) ([]models.WeeklyBucket, error) {
	if f.weekly != nil {
		return f.weekly(ctx, userID, vehicleID, weeks)
	}
	return []models.WeeklyBucket{}, nil
}

// newTestRouter 构造带全部路由的测试引擎
func newTestRouter(t *testing.T, stores *fakeStores) *gin.Engine {
	t.Helper()

	logger := zap.NewNop()
	handler := NewHandler(
		logger,
		stores,
		fakeVehicleStore{stores},
		fakeChargeStore{stores},
		fakePreferenceStore{stores},
		fakeStatsStore{stores},
		auth.NewBcryptHasher(4),
		ws.NewHub(logger),
	)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

// doJSON 发送请求并返回响应
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
