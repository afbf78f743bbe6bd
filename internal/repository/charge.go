package repository

import (
	"context"
	"fmt"

	"github.com/voltlog/voltlog/internal/models"
)

// ChargeRepository 充电记录仓库
type ChargeRepository struct {
	db *DB
}

// NewChargeRepository 创建充电记录仓库
func NewChargeRepository(db *DB) *ChargeRepository {
	return &ChargeRepository{db: db}
}

// Create 创建充电记录，数值字段应已归一化为两位小数
func (r *ChargeRepository) Create(ctx context.Context, c *models.Charge) error {
	query := `
		INSERT INTO charges (user_id, vehicle_id, date, kwh, cost, mileage, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.Pool.QueryRow(ctx, query,
		c.UserID,
		c.VehicleID,
		c.Date,
		c.Kwh,
		c.Cost,
		c.Mileage,
		c.Location,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert charge: %w", err)
	}
	return nil
}

// ListByUserVehicle 获取用户某辆车的充电记录，按日期倒序
func (r *ChargeRepository) ListByUserVehicle(ctx context.Context, userID, vehicleID int64) ([]models.Charge, error) {
	query := `
		SELECT id, user_id, vehicle_id, date, kwh, cost, mileage, location, created_at
		FROM charges WHERE user_id = $1 AND vehicle_id = $2 ORDER BY date DESC
	`
	rows, err := r.db.Pool.Query(ctx, query, userID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("list charges: %w", err)
	}
	defer rows.Close()

	charges := []models.Charge{}
	for rows.Next() {
		var c models.Charge
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.VehicleID,
			&c.Date,
			&c.Kwh,
			&c.Cost,
			&c.Mileage,
			&c.Location,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan charge: %w", err)
		}
		charges = append(charges, c)
	}

	return charges, rows.Err()
}
