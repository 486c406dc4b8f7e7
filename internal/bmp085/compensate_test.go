// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package bmp085

import (
	"errors"
	"testing"
)

// datasheetCal is the calibration set of the datasheet's worked example.
var datasheetCal = Calibration{
	AC1: 408, AC2: -72, AC3: -14383,
	AC4: 32741, AC5: 32757, AC6: 23153,
	B1: 6190, B2: 4,
	MB: -32768, MC: -8711, MD: 2868,
}

func TestCompensateDatasheetExample(t *testing.T) {
	s, err := Compensate(Raw{UT: 27898, UP: 23843}, datasheetCal, UltraLowPower)
	if err != nil {
		t.Fatalf("Compensate: %v", err)
	}
	if s.DeciCelsius != 150 {
		t.Errorf("temperature = %d, want 150", s.DeciCelsius)
	}
	if s.Pascal != 69964 {
		t.Errorf("pressure = %d, want 69964", s.Pascal)
	}
}

func TestCompensateIntermediates(t *testing.T) {
	temp, b5, err := datasheetCal.temperature(27898)
	if err != nil {
		t.Fatal(err)
	}
	if temp != 150 || b5 != 2400 {
		t.Fatalf("temperature() = (%d, %d), want (150, 2400)", temp, b5)
	}
	p, err := datasheetCal.pressure(23843, b5, UltraLowPower)
	if err != nil {
		t.Fatal(err)
	}
	if p != 69964 {
		t.Fatalf("pressure() = %d, want 69964", p)
	}
}

func TestCompensateDeterministic(t *testing.T) {
	raws := []Raw{{27898, 23843}, {25000, 40000}, {30000, 30000}, {-100, 12345}}
	for _, oss := range []Oversampling{UltraLowPower, Standard, HighResolution, UltraHighResolution} {
		for _, raw := range raws {
			a, errA := Compensate(raw, datasheetCal, oss)
			b, errB := Compensate(raw, datasheetCal, oss)
			if a != b || !errors.Is(errA, errB) {
				t.Errorf("oss=%d raw=%+v: %+v/%v != %+v/%v", oss, raw, a, errA, b, errB)
			}
		}
	}
}

func TestCompensateTemperatureDivisorZero(t *testing.T) {
	cal := datasheetCal
	// x1 for UT=AC6 is 0, so x1+MD is zero when MD is.
	cal.MD = 0
	_, err := Compensate(Raw{UT: int16(cal.AC6)}, cal, UltraLowPower)
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("err = %v, want ErrDivideByZero", err)
	}
}

func TestCompensatePressureDivisorZero(t *testing.T) {
	cal := datasheetCal
	cal.AC4 = 0
	_, err := Compensate(Raw{UT: 27898, UP: 23843}, cal, UltraLowPower)
	if !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("err = %v, want ErrDivideByZero", err)
	}
}

func TestCompensateInvalidOversampling(t *testing.T) {
	if _, err := Compensate(Raw{UT: 27898, UP: 23843}, datasheetCal, 4); !errors.Is(err, ErrInvalidOversampling) {
		t.Fatalf("err = %v, want ErrInvalidOversampling", err)
	}
}

func TestPressureDelayIncreases(t *testing.T) {
	want := []int64{5, 8, 14, 26}
	for k := UltraLowPower; k <= UltraHighResolution; k++ {
		if got := k.PressureDelay().Milliseconds(); got != want[k] {
			t.Errorf("PressureDelay(%d) = %dms, want %dms", k, got, want[k])
		}
		if k < UltraHighResolution && (k+1).PressureDelay() < k.PressureDelay() {
			t.Errorf("PressureDelay(%d) < PressureDelay(%d)", k+1, k)
		}
	}
	if TemperatureDelay().Microseconds() != 4500 {
		t.Errorf("TemperatureDelay = %s", TemperatureDelay())
	}
}

func TestPressureCommand(t *testing.T) {
	want := []byte{0x34, 0x74, 0xB4, 0xF4}
	for k := UltraLowPower; k <= UltraHighResolution; k++ {
		if got := k.pressureCommand(); got != want[k] {
			t.Errorf("pressureCommand(%d) = 0x%02X, want 0x%02X", k, got, want[k])
		}
	}
}
