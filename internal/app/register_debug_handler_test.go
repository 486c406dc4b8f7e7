// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"errors"
	"testing"

	"github.com/relabs-tech/badge_l0dables/internal/bmp085"
)

type fakeRegisters struct {
	regs    map[byte]byte
	control []byte
}

func (f *fakeRegisters) ReadRegisters(reg byte, n int) ([]byte, error) {
	b := make([]byte, n)
	for i := range b {
		v, ok := f.regs[reg+byte(i)]
		if !ok {
			return nil, errors.New("nack")
		}
		b[i] = v
	}
	return b, nil
}

func (f *fakeRegisters) WriteControl(cmd byte) error {
	f.control = append(f.control, cmd)
	return nil
}

func (f *fakeRegisters) ReadRawTemperature() (int16, error) { return 27898, nil }
func (f *fakeRegisters) ReadRawPressure() (int32, error)    { return 23843, nil }
func (f *fakeRegisters) Oversampling() bmp085.Oversampling  { return bmp085.UltraLowPower }

func (f *fakeRegisters) Calibration() bmp085.Calibration {
	return bmp085.Calibration{
		AC1: 408, AC2: -72, AC3: -14383, AC4: 32741, AC5: 32757, AC6: 23153,
		B1: 6190, B2: 4, MB: -32768, MC: -8711, MD: 2868,
	}
}

func TestRegisterDebugRead(t *testing.T) {
	dev := &fakeRegisters{regs: map[byte]byte{0xAA: 0x01, 0xAB: 0x98, 0xF4: 0x2E}}
	d := NewRegisterDebugger(dev)

	resp := d.handle(registerCmd{Action: "read", Address: "0xAA"})
	if resp.Type != "register_data" || resp.Value != "0x0198" {
		t.Fatalf("read AC1 = %+v", resp)
	}
	resp = d.handle(registerCmd{Action: "read", Address: "0xF4"})
	if resp.Value != "0x2E" {
		t.Fatalf("read ctrl = %+v", resp)
	}
	if resp := d.handle(registerCmd{Action: "read", Address: "zz"}); resp.Type != "error" {
		t.Fatalf("bad address accepted: %+v", resp)
	}
	if resp := d.handle(registerCmd{Action: "read_all"}); resp.Type != "error" {
		t.Fatalf("read_all with missing registers = %+v", resp)
	}
}

func TestRegisterDebugWrite(t *testing.T) {
	dev := &fakeRegisters{}
	d := NewRegisterDebugger(dev)
	if resp := d.handle(registerCmd{Action: "write", Address: "0xAA", Value: "0x00"}); resp.Type != "error" {
		t.Fatalf("calibration write accepted: %+v", resp)
	}
	resp := d.handle(registerCmd{Action: "write", Address: "0xF4", Value: "0x34"})
	if resp.Type != "status" || len(dev.control) != 1 || dev.control[0] != 0x34 {
		t.Fatalf("write = %+v, control %v", resp, dev.control)
	}
}

func TestRegisterDebugMeasure(t *testing.T) {
	d := NewRegisterDebugger(&fakeRegisters{})
	resp := d.handle(registerCmd{Action: "measure"})
	if resp.Type != "measurement" {
		t.Fatalf("measure = %+v", resp)
	}
	m := resp.Measurement
	if m.UT != 27898 || m.UP != 23843 || m.DeciCelsius != 150 || m.Pascal != 69964 {
		t.Fatalf("measurement %+v", m)
	}
}

func TestRegisterDebugUnknownAction(t *testing.T) {
	d := NewRegisterDebugger(&fakeRegisters{})
	for _, a := range []string{"", "explode"} {
		if resp := d.handle(registerCmd{Action: a}); resp.Type != "error" {
			t.Fatalf("action %q = %+v", a, resp)
		}
	}
	if resp := d.handle(registerCmd{Action: "get_map"}); len(resp.RegisterMap) == 0 {
		t.Fatal("empty register map")
	}
}
