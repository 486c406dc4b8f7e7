// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package bmp085

import (
	"encoding/binary"
	"fmt"

	"periph.io/x/conn/v3"
)

// Calibration holds the eleven factory-programmed constants of one sensor.
//
// It is read once per session and never modified afterwards.
type Calibration struct {
	AC1, AC2, AC3 int16
	AC4, AC5, AC6 uint16
	B1, B2        int16
	MB, MC, MD    int16
}

// LoadCalibration reads the calibration words from the device, one register
// pair at a time. The first failed exchange aborts the load.
func LoadCalibration(c conn.Conn) (Calibration, error) {
	var cal Calibration
	fields := []struct {
		reg byte
		set func(uint16)
	}{
		{regCalAC1, func(v uint16) { cal.AC1 = int16(v) }},
		{regCalAC2, func(v uint16) { cal.AC2 = int16(v) }},
		{regCalAC3, func(v uint16) { cal.AC3 = int16(v) }},
		{regCalAC4, func(v uint16) { cal.AC4 = v }},
		{regCalAC5, func(v uint16) { cal.AC5 = v }},
		{regCalAC6, func(v uint16) { cal.AC6 = v }},
		{regCalB1, func(v uint16) { cal.B1 = int16(v) }},
		{regCalB2, func(v uint16) { cal.B2 = int16(v) }},
		{regCalMB, func(v uint16) { cal.MB = int16(v) }},
		{regCalMC, func(v uint16) { cal.MC = int16(v) }},
		{regCalMD, func(v uint16) { cal.MD = int16(v) }},
	}
	for _, f := range fields {
		v, err := readUint16(c, f.reg)
		if err != nil {
			return Calibration{}, err
		}
		if v == 0x0000 || v == 0xFFFF {
			return Calibration{}, fmt.Errorf("%w: register 0x%02X = 0x%04X", ErrBadCalibration, f.reg, v)
		}
		f.set(v)
	}
	return cal, nil
}

// readUint16 reads two big-endian bytes starting at reg.
func readUint16(c conn.Conn, reg byte) (uint16, error) {
	var b [2]byte
	if err := c.Tx([]byte{reg}, b[:]); err != nil {
		return 0, &BusError{Op: "read", Reg: reg, Err: err}
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

// readUint24 reads three big-endian bytes starting at reg.
func readUint24(c conn.Conn, reg byte) (uint32, error) {
	var b [3]byte
	if err := c.Tx([]byte{reg}, b[:]); err != nil {
		return 0, &BusError{Op: "read", Reg: reg, Err: err}
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

func writeReg(c conn.Conn, reg, value byte) error {
	if err := c.Tx([]byte{reg, value}, nil); err != nil {
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}
