package models

import "time"

// User 账户信息
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Vehicle 车辆信息
type Vehicle struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"userId" db:"user_id"`
	Model           string    `json:"model" db:"model"`
	BatteryCapacity float64   `json:"batteryCapacity" db:"battery_capacity"` // kWh
	RangeKm         float64   `json:"range" db:"range_km"`
	Color           string    `json:"color" db:"color"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// Charge 单次充电记录，kwh/cost/mileage 入库前归一化为两位小数
type Charge struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	VehicleID int64     `json:"vehicleId" db:"vehicle_id"`
	Date      time.Time `json:"date" db:"date"`
	Kwh       float64   `json:"kwh" db:"kwh"`
	Cost      float64   `json:"cost" db:"cost"`
	Mileage   float64   `json:"mileage" db:"mileage"` // 里程表读数
	Location  string    `json:"location" db:"location"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Preference 用户偏好设置，每个用户唯一一条
type Preference struct {
	ID                int64     `json:"id" db:"id"`
	UserID            int64     `json:"userId" db:"user_id"`
	SelectedVehicleID *int64    `json:"selectedVehicleId" db:"selected_vehicle_id"`
	ElectricityPrice  *float64  `json:"electricityPrice" db:"electricity_price"`
	AlertThreshold    *float64  `json:"alertThreshold" db:"alert_threshold"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// PreferenceView 偏好设置关联用户和所选车辆的视图
type PreferenceView struct {
	UserID           int64    `json:"userId" db:"user_id"`
	UserName         string   `json:"userName" db:"user_name"`
	VehicleID        *int64   `json:"vehicleId" db:"vehicle_id"`
	VehicleModel     *string  `json:"vehicleModel" db:"vehicle_model"`
	VehicleColor     *string  `json:"vehicleColor" db:"vehicle_color"`
	ElectricityPrice *float64 `json:"electricityPrice" db:"electricity_price"`
	AlertThreshold   *float64 `json:"alertThreshold" db:"alert_threshold"`
}
