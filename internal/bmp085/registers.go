// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package bmp085

import "time"

// DefaultAddress is the 7-bit I²C address (0xEE write / 0xEF read on the wire).
const DefaultAddress uint16 = 0x77

const (
	regCalAC1 = 0xAA
	regCalAC2 = 0xAC
	regCalAC3 = 0xAE
	regCalAC4 = 0xB0
	regCalAC5 = 0xB2
	regCalAC6 = 0xB4
	regCalB1  = 0xB6
	regCalB2  = 0xB8
	regCalMB  = 0xBA
	regCalMC  = 0xBC
	regCalMD  = 0xBE

	regControl = 0xF4
	regData    = 0xF6

	cmdTemperature = 0x2E
	cmdPressure    = 0x34
)

// temperatureDelay is the maximum temperature conversion time.
const temperatureDelay = 4500 * time.Microsecond

// Oversampling is the pressure oversampling setting (oss) of the device.
//
// Higher settings average more internal samples: lower noise, longer
// conversion.
type Oversampling uint8

const (
	UltraLowPower       Oversampling = 0
	Standard            Oversampling = 1
	HighResolution      Oversampling = 2
	UltraHighResolution Oversampling = 3
)

func (o Oversampling) String() string {
	switch o {
	case UltraLowPower:
		return "ultra-low-power"
	case Standard:
		return "standard"
	case HighResolution:
		return "high-resolution"
	case UltraHighResolution:
		return "ultra-high-resolution"
	default:
		return "invalid"
	}
}

// Valid reports whether o is one of the four settings the device supports.
func (o Oversampling) Valid() bool {
	return o <= UltraHighResolution
}

// PressureDelay returns the settling time to wait after requesting a
// pressure conversion: 2 + 3·2^oss milliseconds.
func (o Oversampling) PressureDelay() time.Duration {
	return time.Duration(2+(3<<o)) * time.Millisecond
}

// TemperatureDelay returns the settling time of a temperature conversion,
// which does not depend on oversampling.
func TemperatureDelay() time.Duration {
	return temperatureDelay
}

func (o Oversampling) pressureCommand() byte {
	return cmdPressure + byte(o)<<6
}
