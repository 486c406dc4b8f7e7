// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package bmp085

// Raw is one pair of uncompensated conversion results.
type Raw struct {
	UT int16 // temperature code
	UP int32 // pressure code, already shifted by 8-oss
}

// Sample is a compensated reading.
type Sample struct {
	DeciCelsius int32 // 0.1°C
	Pascal      int32
}

// Compensate converts a raw reading into physical units using the vendor's
// integer algorithm.
//
// The temperature step produces the intermediate b5 that the pressure step
// consumes, so the two are always computed together and in that order.
// Compensate has no side effects.
func Compensate(raw Raw, cal Calibration, oss Oversampling) (Sample, error) {
	if !oss.Valid() {
		return Sample{}, ErrInvalidOversampling
	}
	t, b5, err := cal.temperature(raw.UT)
	if err != nil {
		return Sample{}, err
	}
	p, err := cal.pressure(raw.UP, b5, oss)
	if err != nil {
		return Sample{}, err
	}
	return Sample{DeciCelsius: t, Pascal: p}, nil
}

// temperature returns the temperature in 0.1°C and b5.
func (c *Calibration) temperature(ut int16) (int32, int32, error) {
	x1 := ((int32(ut) - int32(c.AC6)) * int32(c.AC5)) >> 15
	div := x1 + int32(c.MD)
	if div == 0 {
		return 0, 0, ErrDivideByZero
	}
	x2 := (int32(c.MC) << 11) / div
	b5 := x1 + x2
	return (b5 + 8) >> 4, b5, nil
}

// pressure returns the pressure in Pa.
func (c *Calibration) pressure(up, b5 int32, oss Oversampling) (int32, error) {
	b6 := b5 - 4000
	x1 := (int32(c.B2) * ((b6 * b6) >> 12)) >> 11
	x2 := (int32(c.AC2) * b6) >> 11
	x3 := x1 + x2
	b3 := ((int32(c.AC1)*4 + x3) + 2) / 4

	x1 = (int32(c.AC3) * b6) >> 13
	x2 = (int32(c.B1) * ((b6 * b6) >> 12)) >> 16
	x3 = ((x1 + x2) + 2) >> 2
	b4 := (uint32(c.AC4) * uint32(x3+32768)) >> 15
	if b4 == 0 {
		return 0, ErrDivideByZero
	}
	b7 := (uint32(up) - uint32(b3)) * (uint32(50000) >> oss)

	var p int32
	if b7 < 0x80000000 {
		p = int32((b7 * 2) / b4)
	} else {
		p = int32((b7 / b4) * 2)
	}
	x1 = (p >> 8) * (p >> 8)
	x1 = (x1 * 3038) >> 16
	x2 = (-7357 * p) >> 16
	return p + ((x1 + x2 + 3791) >> 4), nil
}
