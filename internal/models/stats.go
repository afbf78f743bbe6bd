package models

import "time"

// SimpleStats 基础统计。均值字段在无充电记录时为 null
type SimpleStats struct {
	AvgConsumption *float64 `json:"avgConsumption" db:"avg_consumption"`
	AvgCostPerKm   *float64 `json:"avgCostPerKm" db:"avg_cost_per_km"`
	TotalCharges   int64    `json:"totalCharges" db:"total_charges"`
}

// ConsumptionStats 百公里能耗统计
type ConsumptionStats struct {
	AvgConsumptionPer100Km *float64 `json:"avgConsumptionPer100km" db:"avg_consumption_per_100km"`
	AvgCostPerKwh          *float64 `json:"avgCostPerKwh" db:"avg_cost_per_kwh"`
}

// GlobalStats 基于相邻充电里程差的全局统计
type GlobalStats struct {
	AvgConsumption *float64 `json:"avgConsumption" db:"avg_consumption"`
	AvgCostPerKwh  *float64 `json:"avgCostPerKwh" db:"avg_cost_per_kwh"`
	AvgCostPerKm   *float64 `json:"avgCostPerKm" db:"avg_cost_per_km"`
	TotalCharges   int64    `json:"totalCharges" db:"total_charges"`
}

// ChargePoint 图表用原始充电序列，附带上一次里程表读数
type ChargePoint struct {
	Date        time.Time `json:"date" db:"date"`
	Kwh         float64   `json:"kwh" db:"kwh"`
	Cost        float64   `json:"cost" db:"cost"`
	Mileage     float64   `json:"mileage" db:"mileage"`
	PrevMileage *float64  `json:"prevMileage" db:"prev_mileage"`
}

// CumulativeStats 累计统计，无记录时各字段为 0
type CumulativeStats struct {
	TotalMileage  float64 `json:"totalMileage" db:"total_mileage"`
	TotalKwh      float64 `json:"totalKwh" db:"total_kwh"`
	TotalCost     float64 `json:"totalCost" db:"total_cost"`
	TotalDistance float64 `json:"totalDistance" db:"total_distance"` // 正里程差之和
	TotalCharges  int64   `json:"totalCharges" db:"total_charges"`
}

// MonthlyStats 当前自然月与上一自然月的充电量
type MonthlyStats struct {
	CurrentMonth  float64 `json:"currentMonth" db:"current_month"`
	PreviousMonth float64 `json:"previousMonth" db:"previous_month"`
}

// LocationStats 按充电地点分组的统计
type LocationStats struct {
	Location string  `json:"location" db:"location"`
	TotalKwh float64 `json:"totalKwh" db:"total_kwh"`
	Count    int64   `json:"count" db:"count"`
}

// WeeklyBucket 按自然周分组的统计，Label 由 handler 填充
type WeeklyBucket struct {
	WeekStart time.Time `json:"weekStart" db:"week_start"`
	Label     string    `json:"label"`
	TotalKwh  float64   `json:"totalKwh" db:"total_kwh"`
	Count     int64     `json:"count" db:"count"`
}
