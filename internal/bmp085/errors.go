// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package bmp085

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is returned by Compensate when the calibration record
// makes one of the two divisors of the algorithm zero.
var ErrDivideByZero = errors.New("bmp085: calibration leads to division by zero")

// ErrBadCalibration is returned when a calibration word reads as 0x0000 or
// 0xFFFF, which the datasheet uses to flag a broken device or bus.
var ErrBadCalibration = errors.New("bmp085: invalid calibration word")

// ErrInvalidOversampling is returned for an oversampling setting outside 0..3.
var ErrInvalidOversampling = errors.New("bmp085: oversampling must be 0-3")

// BusError is returned when a register exchange with the device fails.
type BusError struct {
	Op  string // "read" or "write"
	Reg byte
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("bmp085: %s register 0x%02X: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}
