package repository

import (
	"context"
	"fmt"

	"github.com/voltlog/voltlog/internal/models"
)

// StatsRepository 统计查询仓库。所有查询只读、单条 SQL、无副作用。
// 所有除法的分母都有保护：零或负的里程差和零 kwh 被排除在聚合之外，
// 而不是产生 Inf/NaN；空序列的均值为 NULL，合计为 0
type StatsRepository struct {
	db *DB
}

// NewStatsRepository 创建统计仓库
func NewStatsRepository(db *DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Simple 基础统计：平均充电量、平均成本/总电量、充电次数。
// avg_cost_per_km 沿用历史口径（均值除以总和），见 DESIGN.md
func (r *StatsRepository) Simple(ctx context.Context, userID, vehicleID int64) (*models.SimpleStats, error) {
	query := `
		SELECT
			AVG(kwh) AS avg_consumption,
			AVG(cost) / NULLIF(SUM(kwh), 0) AS avg_cost_per_km,
			COUNT(*) AS total_charges
		FROM charges
		WHERE user_id = $1 AND vehicle_id = $2
	`
	s := &models.SimpleStats{}
	err := r.db.Pool.QueryRow(ctx, query, userID, vehicleID).
		Scan(&s.AvgConsumption, &s.AvgCostPerKm, &s.TotalCharges)
	if err != nil {
		return nil, fmt.Errorf("simple stats: %w", err)
	}
	return s, nil
}

// Consumption 百公里能耗与每 kWh 成本。
// 里程差基于相邻充电记录，零或负差值的配对被丢弃
func (r *StatsRepository) Consumption(ctx context.Context, vehicleID int64) (*models.ConsumptionStats, error) {
	query := `
		WITH seq AS (
			SELECT
				kwh,
				cost,
				LEAD(mileage) OVER (ORDER BY date) - mileage AS delta
			FROM charges
			WHERE vehicle_id = $1 AND mileage IS NOT NULL
		)
		SELECT
			(SELECT AVG(kwh * 100 / delta) FROM seq WHERE delta > 0) AS avg_consumption_per_100km,
			(SELECT AVG(cost / NULLIF(kwh, 0)) FROM seq) AS avg_cost_per_kwh
	`
	s := &models.ConsumptionStats{}
	err := r.db.Pool.QueryRow(ctx, query, vehicleID).
		Scan(&s.AvgConsumptionPer100Km, &s.AvgCostPerKwh)
	if err != nil {
		return nil, fmt.Errorf("consumption stats: %w", err)
	}
	return s, nil
}

// Global 基于 LAG 里程差的全局统计。
// 序列中第一条记录没有前驱，不参与差值样本
func (r *StatsRepository) Global(ctx context.Context, userID, vehicleID int64) (*models.GlobalStats, error) {
	query := `
		WITH charge_distances AS (
			SELECT
				kwh,
				cost,
				mileage,
				LAG(mileage) OVER (ORDER BY date) AS prev_mileage
			FROM charges
			WHERE user_id = $1 AND vehicle_id = $2
		),
		valid_pairs AS (
			SELECT
				kwh,
				cost,
				mileage - prev_mileage AS distance
			FROM charge_distances
			WHERE prev_mileage IS NOT NULL AND mileage - prev_mileage > 0
		)
		SELECT
			(SELECT AVG(kwh * 100 / distance) FROM valid_pairs) AS avg_consumption,
			(SELECT AVG(cost / NULLIF(kwh, 0)) FROM valid_pairs WHERE kwh > 0) AS avg_cost_per_kwh,
			(SELECT AVG(cost / (distance / 100)) FROM valid_pairs WHERE kwh > 0) AS avg_cost_per_km,
			(SELECT COUNT(*) FROM charges WHERE user_id = $1 AND vehicle_id = $2) AS total_charges
	`
	s := &models.GlobalStats{}
	err := r.db.Pool.QueryRow(ctx, query, userID, vehicleID).
		Scan(&s.AvgConsumption, &s.AvgCostPerKwh, &s.AvgCostPerKm, &s.TotalCharges)
	if err != nil {
		return nil, fmt.Errorf("global stats: %w", err)
	}
	return s, nil
}

// ChargeSeries 图表用原始充电序列，按日期升序，附带上一次里程
func (r *StatsRepository) ChargeSeries(ctx context.Context, userID, vehicleID int64) ([]models.ChargePoint, error) {
	query := `
		SELECT
			date,
			kwh,
			cost,
			mileage,
			LAG(mileage) OVER (ORDER BY date) AS prev_mileage
		FROM charges
		WHERE user_id = $1 AND vehicle_id = $2
		ORDER BY date
	`
	rows, err := r.db.Pool.Query(ctx, query, userID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("charge series: %w", err)
	}
	defer rows.Close()

	points := []models.ChargePoint{}
	for rows.Next() {
		var p models.ChargePoint
		if err := rows.Scan(&p.Date, &p.Kwh, &p.Cost, &p.Mileage, &p.PrevMileage); err != nil {
			return nil, fmt.Errorf("scan charge point: %w", err)
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

// Cumulative 累计统计，单条查询取同一快照：
// 最大里程、总电量、总成本、正里程差之和、充电次数
func (r *StatsRepository) Cumulative(ctx context.Context, userID, vehicleID int64) (*models.CumulativeStats, error) {
	query := `
		SELECT
			COALESCE(MAX(mileage), 0) AS total_mileage,
			COALESCE(SUM(kwh), 0) AS total_kwh,
			COALESCE(SUM(cost), 0) AS total_cost,
			COALESCE((
				SELECT SUM(distance) FROM (
					SELECT mileage - LAG(mileage) OVER (ORDER BY date) AS distance
					FROM charges
					WHERE user_id = $1 AND vehicle_id = $2
				) d
				WHERE distance > 0
			), 0) AS total_distance,
			COUNT(*) AS total_charges
		FROM charges
		WHERE user_id = $1 AND vehicle_id = $2
	`
	s := &models.CumulativeStats{}
	err := r.db.Pool.QueryRow(ctx, query, userID, vehicleID).
		Scan(&s.TotalMileage, &s.TotalKwh, &s.TotalCost, &s.TotalDistance, &s.TotalCharges)
	if err != nil {
		return nil, fmt.Errorf("cumulative stats: %w", err)
	}
	return s, nil
}

// Monthly 当前自然月与上一自然月的充电量，按日历边界而非滚动 30 天
func (r *StatsRepository) Monthly(ctx context.Context, userID, vehicleID int64) (*models.MonthlyStats, error) {
	query := `
		SELECT
			COALESCE(SUM(kwh) FILTER (
				WHERE date_trunc('month', date) = date_trunc('month', CURRENT_DATE)
			), 0) AS current_month,
			COALESCE(SUM(kwh) FILTER (
				WHERE date_trunc('month', date) = date_trunc('month', CURRENT_DATE) - INTERVAL '1 month'
			), 0) AS previous_month
		FROM charges
		WHERE user_id = $1 AND vehicle_id = $2
	`
	s := &models.MonthlyStats{}
	err := r.db.Pool.QueryRow(ctx, query, userID, vehicleID).
		Scan(&s.CurrentMonth, &s.PreviousMonth)
	if err != nil {
		return nil, fmt.Errorf("monthly stats: %w", err)
	}
	return s, nil
}

// ByLocation 按充电地点分组，频次降序
func (r *StatsRepository) ByLocation(ctx context.Context, userID, vehicleID int64) ([]models.LocationStats, error) {
	query := `
		SELECT
			location,
			COALESCE(SUM(kwh), 0) AS total_kwh,
			COUNT(*) AS count
		FROM charges
		WHERE user_id = $1 AND vehicle_id = $2
		GROUP BY location
		ORDER BY COUNT(*) DESC, location
	`
	rows, err := r.db.Pool.Query(ctx, query, userID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("location stats: %w", err)
	}
	defer rows.Close()

	stats := []models.LocationStats{}
	for rows.Next() {
		var s models.LocationStats
		if err := rows.Scan(&s.Location, &s.TotalKwh, &s.Count); err != nil {
			return nil, fmt.Errorf("scan location stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// Weekly 最近 weeks 个自然周（含当前周）的分组统计，按周升序。
// 周起点由 date_trunc('week') 决定，即 ISO 周一
func (r *StatsRepository) Weekly(ctx context.Context, userID, vehicleID int64, weeks int) ([]models.WeeklyBucket, error) {
	query := `
		SELECT
			date_trunc('week', date) AS week_start,
			COALESCE(SUM(kwh), 0) AS total_kwh,
			COUNT(*) AS count
		FROM charges
		WHERE user_id = $1 AND vehicle_id = $2
			AND date >= date_trunc('week', CURRENT_DATE) - ($3::int - 1) * INTERVAL '1 week'
		GROUP BY week_start
		ORDER BY week_start
	`
	rows, err := r.db.Pool.Query(ctx, query, userID, vehicleID, weeks)
	if err != nil {
		return nil, fmt.Errorf("weekly stats: %w", err)
	}
	defer rows.Close()

	buckets := []models.WeeklyBucket{}
	for rows.Next() {
		var b models.WeeklyBucket
		if err := rows.Scan(&b.WeekStart, &b.TotalKwh, &b.Count); err != nil {
			return nil, fmt.Errorf("scan weekly bucket: %w", err)
		}
		buckets = append(buckets, b)
	}

	return buckets, rows.Err()
}
