package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/voltlog/voltlog/internal/models"
)

// PreferenceRepository 用户偏好仓库
type PreferenceRepository struct {
	db *DB
}

// NewPreferenceRepository 创建偏好仓库
func NewPreferenceRepository(db *DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Upsert 以 user_id 为冲突键写入偏好。
// 请求中省略的可选字段通过 COALESCE 保留已存储的值
func (r *PreferenceRepository) Upsert(ctx context.Context, p *models.Preference) error {
	query := `
		INSERT INTO user_preferences (user_id, selected_vehicle_id, electricity_price, alert_threshold)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET
			selected_vehicle_id = COALESCE($2, user_preferences.selected_vehicle_id),
			electricity_price = COALESCE($3, user_preferences.electricity_price),
			alert_threshold = COALESCE($4, user_preferences.alert_threshold),
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, selected_vehicle_id, electricity_price, alert_threshold, updated_at
	`
	err := r.db.Pool.QueryRow(ctx, query,
		p.UserID,
		p.SelectedVehicleID,
		p.ElectricityPrice,
		p.AlertThreshold,
	).Scan(&p.ID, &p.SelectedVehicleID, &p.ElectricityPrice, &p.AlertThreshold, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert preference: %w", err)
	}
	return nil
}

const preferenceViewQuery = `
	SELECT
		u.id AS user_id,
		u.name AS user_name,
		v.id AS vehicle_id,
		v.model AS vehicle_model,
		v.color AS vehicle_color,
		up.electricity_price,
		up.alert_threshold
	FROM user_preferences up
	JOIN users u ON up.user_id = u.id
	LEFT JOIN vehicles v ON up.selected_vehicle_id = v.id
`

// GetFirst 获取第一条偏好记录（含用户与所选车辆），不存在时返回 nil
func (r *PreferenceRepository) GetFirst(ctx context.Context) (*models.PreferenceView, error) {
	return r.scanView(r.db.Pool.QueryRow(ctx, preferenceViewQuery+` ORDER BY up.id LIMIT 1`))
}

// GetByUser 获取指定用户的偏好记录，不存在时返回 nil
func (r *PreferenceRepository) GetByUser(ctx context.Context, userID int64) (*models.PreferenceView, error) {
	return r.scanView(r.db.Pool.QueryRow(ctx, preferenceViewQuery+` WHERE u.id = $1`, userID))
}

func (r *PreferenceRepository) scanView(row pgx.Row) (*models.PreferenceView, error) {
	view := &models.PreferenceView{}
	err := row.Scan(
		&view.UserID,
		&view.UserName,
		&view.VehicleID,
		&view.VehicleModel,
		&view.VehicleColor,
		&view.ElectricityPrice,
		&view.AlertThreshold,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preference: %w", err)
	}
	return view, nil
}
