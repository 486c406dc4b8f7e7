// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package env

import "time"

// Sample represents a single compensated environmental measurement (BMP085).
type Sample struct {
	Source string `json:"source"`

	DeciCelsius int32 `json:"temp_dc"`     // 0.1°C
	Pascal      int32 `json:"pressure_pa"` // Pa

	Time time.Time `json:"time"`
}

// Celsius returns the temperature in °C.
func (s Sample) Celsius() float64 {
	return float64(s.DeciCelsius) / 10
}

// HPa returns the pressure in hPa (same as mbar).
func (s Sample) HPa() float64 {
	return float64(s.Pascal) / 100
}
