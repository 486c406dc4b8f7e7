// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package bmp085

import (
	"errors"
	"testing"
	"time"

	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

// calibrationOps replays the datasheet calibration set, one word per register.
func calibrationOps() []i2ctest.IO {
	words := []struct {
		reg    byte
		hi, lo byte
	}{
		{0xAA, 0x01, 0x98},
		{0xAC, 0xFF, 0xB8},
		{0xAE, 0xC7, 0xD1},
		{0xB0, 0x7F, 0xE5},
		{0xB2, 0x7F, 0xF5},
		{0xB4, 0x5A, 0x71},
		{0xB6, 0x18, 0x2E},
		{0xB8, 0x00, 0x04},
		{0xBA, 0x80, 0x00},
		{0xBC, 0xDD, 0xF9},
		{0xBE, 0x0B, 0x34},
	}
	ops := make([]i2ctest.IO, 0, len(words))
	for _, w := range words {
		ops = append(ops, i2ctest.IO{Addr: 0x77, W: []byte{w.reg}, R: []byte{w.hi, w.lo}})
	}
	return ops
}

func measureOps() []i2ctest.IO {
	return []i2ctest.IO{
		{Addr: 0x77, W: []byte{0xF4, 0x2E}},
		{Addr: 0x77, W: []byte{0xF6}, R: []byte{0x6C, 0xFA}},
		{Addr: 0x77, W: []byte{0xF4, 0x34}},
		{Addr: 0x77, W: []byte{0xF6}, R: []byte{0x5D, 0x23, 0x00}},
	}
}

func newTestDev(t *testing.T, bus *i2ctest.Playback) (*Dev, *[]time.Duration) {
	t.Helper()
	d, err := New(bus, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var slept []time.Duration
	d.sleep = func(dur time.Duration) { slept = append(slept, dur) }
	return d, &slept
}

func TestNewLoadsCalibration(t *testing.T) {
	bus := &i2ctest.Playback{Ops: calibrationOps()}
	d, _ := newTestDev(t, bus)
	if got := d.Calibration(); got != datasheetCal {
		t.Fatalf("calibration = %+v, want %+v", got, datasheetCal)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestMeasure(t *testing.T) {
	bus := &i2ctest.Playback{Ops: append(calibrationOps(), measureOps()...)}
	d, slept := newTestDev(t, bus)

	s, err := d.Measure()
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if s != (Sample{DeciCelsius: 150, Pascal: 69964}) {
		t.Fatalf("Measure = %+v", s)
	}
	want := []time.Duration{4500 * time.Microsecond, 5 * time.Millisecond}
	if len(*slept) != len(want) || (*slept)[0] != want[0] || (*slept)[1] != want[1] {
		t.Fatalf("delays = %v, want %v", *slept, want)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestReadRawPressureOversampling(t *testing.T) {
	bus := &i2ctest.Playback{Ops: append(calibrationOps(),
		i2ctest.IO{Addr: 0x77, W: []byte{0xF4, 0xF4}},
		i2ctest.IO{Addr: 0x77, W: []byte{0xF6}, R: []byte{0x5D, 0x23, 0xC0}},
	)}
	d, err := New(bus, &Opts{Oversampling: UltraHighResolution})
	if err != nil {
		t.Fatal(err)
	}
	var slept time.Duration
	d.sleep = func(dur time.Duration) { slept = dur }
	up, err := d.ReadRawPressure()
	if err != nil {
		t.Fatal(err)
	}
	if want := int32(0x5D23C0 >> 5); up != want {
		t.Fatalf("UP = %d, want %d", up, want)
	}
	if slept != 26*time.Millisecond {
		t.Fatalf("delay = %s", slept)
	}
}

func TestReadRawTemperatureSigned(t *testing.T) {
	bus := &i2ctest.Playback{Ops: append(calibrationOps(),
		i2ctest.IO{Addr: 0x77, W: []byte{0xF4, 0x2E}},
		i2ctest.IO{Addr: 0x77, W: []byte{0xF6}, R: []byte{0xFF, 0xFE}},
	)}
	d, _ := newTestDev(t, bus)
	ut, err := d.ReadRawTemperature()
	if err != nil {
		t.Fatal(err)
	}
	if ut != -2 {
		t.Fatalf("UT = %d, want -2", ut)
	}
}

func TestCalibrationBusFailure(t *testing.T) {
	ops := calibrationOps()[:4]
	bus := &i2ctest.Playback{Ops: ops, DontPanic: true}
	_, err := New(bus, nil)
	var be *BusError
	if !errors.As(err, &be) {
		t.Fatalf("err = %v, want *BusError", err)
	}
	if be.Reg != 0xB2 || be.Op != "read" {
		t.Fatalf("BusError = %+v", be)
	}
}

func TestCalibrationRejectsBlankWord(t *testing.T) {
	ops := calibrationOps()
	ops[3].R = []byte{0xFF, 0xFF}
	bus := &i2ctest.Playback{Ops: ops[:4], DontPanic: true}
	if _, err := New(bus, nil); !errors.Is(err, ErrBadCalibration) {
		t.Fatalf("err = %v, want ErrBadCalibration", err)
	}
}

func TestMeasureBusFailure(t *testing.T) {
	ops := append(calibrationOps(), measureOps()[:2]...)
	bus := &i2ctest.Playback{Ops: ops, DontPanic: true}
	d, _ := newTestDev(t, bus)
	_, err := d.Measure()
	var be *BusError
	if !errors.As(err, &be) || be.Op != "write" || be.Reg != 0xF4 {
		t.Fatalf("err = %v, want write BusError on 0xF4", err)
	}
}

func TestNewInvalidOversampling(t *testing.T) {
	if _, err := New(&i2ctest.Playback{}, &Opts{Oversampling: 7}); !errors.Is(err, ErrInvalidOversampling) {
		t.Fatalf("err = %v", err)
	}
}

func TestSense(t *testing.T) {
	bus := &i2ctest.Playback{Ops: append(calibrationOps(), measureOps()...)}
	d, _ := newTestDev(t, bus)
	var e physic.Env
	if err := d.Sense(&e); err != nil {
		t.Fatal(err)
	}
	if e.Pressure != 69964*physic.Pascal {
		t.Errorf("pressure = %s", e.Pressure)
	}
	if got := e.Temperature.Celsius(); got < 14.99 || got > 15.01 {
		t.Errorf("temperature = %s", e.Temperature)
	}
}

func TestSenseContinuous(t *testing.T) {
	ops := calibrationOps()
	for i := 0; i < 2; i++ {
		ops = append(ops, measureOps()...)
	}
	bus := &i2ctest.Playback{Ops: ops, DontPanic: true}
	d, _ := newTestDev(t, bus)
	ch, err := d.SenseContinuous(time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		e, ok := <-ch
		if !ok {
			t.Fatalf("channel closed after %d readings", i)
		}
		if e.Pressure != 69964*physic.Pascal {
			t.Fatalf("reading %d: pressure = %s", i, e.Pressure)
		}
	}
	// The playback is exhausted, so the next reading fails and closes the channel.
	for range ch {
	}
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
}

func TestReadRegisters(t *testing.T) {
	ops := append(calibrationOps(), i2ctest.IO{Addr: 0x77, W: []byte{0xD0}, R: []byte{0x55, 0x02}})
	bus := &i2ctest.Playback{Ops: ops}
	d, _ := newTestDev(t, bus)
	b, err := d.ReadRegisters(0xD0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if b[0] != 0x55 || b[1] != 0x02 {
		t.Fatalf("got % X", b)
	}
	if _, err := d.ReadRegisters(0xFF, 2); err == nil {
		t.Fatal("expected range error")
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestWriteControl(t *testing.T) {
	ops := append(calibrationOps(), i2ctest.IO{Addr: 0x77, W: []byte{0xF4, 0xF4}})
	bus := &i2ctest.Playback{Ops: ops}
	d, _ := newTestDev(t, bus)
	if err := d.WriteControl(0xF4); err != nil {
		t.Fatal(err)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}
