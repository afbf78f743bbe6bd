package models

import "math"

// Round2 金额和电量统一保留两位小数
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
