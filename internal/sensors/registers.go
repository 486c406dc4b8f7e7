// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

// RegisterInfo describes one BMP085 register for the register debugger.
type RegisterInfo struct {
	Address     string     `json:"address"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Access      string     `json:"access"` // "R", "W", "RW"
	Width       int        `json:"width"`  // bytes read from Address
	BitFields   []BitField `json:"bit_fields,omitempty"`
}

// BitField describes a group of bits inside a register.
type BitField struct {
	Bits        string `json:"bits"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Values      string `json:"values,omitempty"`
}

// BMP085RegisterMap returns metadata for the registers of the BMP085.
func BMP085RegisterMap() []RegisterInfo {
	return []RegisterInfo{
		// Calibration EEPROM, MSB first
		{Address: "0xAA", Name: "AC1", Description: "Calibration AC1 (signed)", Access: "R", Width: 2},
		{Address: "0xAC", Name: "AC2", Description: "Calibration AC2 (signed)", Access: "R", Width: 2},
		{Address: "0xAE", Name: "AC3", Description: "Calibration AC3 (signed)", Access: "R", Width: 2},
		{Address: "0xB0", Name: "AC4", Description: "Calibration AC4 (unsigned)", Access: "R", Width: 2},
		{Address: "0xB2", Name: "AC5", Description: "Calibration AC5 (unsigned)", Access: "R", Width: 2},
		{Address: "0xB4", Name: "AC6", Description: "Calibration AC6 (unsigned)", Access: "R", Width: 2},
		{Address: "0xB6", Name: "B1", Description: "Calibration B1 (signed)", Access: "R", Width: 2},
		{Address: "0xB8", Name: "B2", Description: "Calibration B2 (signed)", Access: "R", Width: 2},
		{Address: "0xBA", Name: "MB", Description: "Calibration MB (signed)", Access: "R", Width: 2},
		{Address: "0xBC", Name: "MC", Description: "Calibration MC (signed)", Access: "R", Width: 2},
		{Address: "0xBE", Name: "MD", Description: "Calibration MD (signed)", Access: "R", Width: 2},

		{Address: "0xD0", Name: "CHIP_ID", Description: "Chip identifier", Access: "R", Width: 1,
			BitFields: []BitField{
				{Bits: "7:0", Name: "ID", Description: "Fixed chip id", Values: "0x55"},
			}},
		{Address: "0xF4", Name: "CTRL_MEAS", Description: "Measurement control", Access: "RW", Width: 1,
			BitFields: []BitField{
				{Bits: "7:6", Name: "OSS", Description: "Pressure oversampling", Values: "0=1x, 1=2x, 2=4x, 3=8x"},
				{Bits: "5", Name: "SCO", Description: "Conversion running", Values: "1=busy, 0=done"},
				{Bits: "4:0", Name: "MEAS", Description: "Measurement select", Values: "0x0E=temperature, 0x14=pressure"},
			}},
		{Address: "0xF6", Name: "OUT_MSB", Description: "ADC result MSB", Access: "R", Width: 1},
		{Address: "0xF7", Name: "OUT_LSB", Description: "ADC result LSB", Access: "R", Width: 1},
		{Address: "0xF8", Name: "OUT_XLSB", Description: "ADC result extra bits (oss > 0)", Access: "R", Width: 1,
			BitFields: []BitField{
				{Bits: "7:3", Name: "XLSB", Description: "Pressure extra resolution"},
			}},
	}
}
