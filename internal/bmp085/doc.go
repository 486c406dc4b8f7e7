// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package bmp085 controls a Bosch BMP085 temperature/pressure sensor over I²C.
//
// The device exposes eleven factory calibration words and two conversions
// (temperature, pressure). Readings are compensated with the fixed-point
// integer algorithm of the badge firmware, reproduced bit for bit since
// existing BMP085 logs were produced with it. Unlike the datasheet, b3 is not
// scaled by the oversampling setting; both agree at UltraLowPower.
//
// Each conversion is read once. Single reads are known to return a bad
// value now and then; callers that care should compare consecutive samples.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/Components/General/BST-BMP085-DS000-05.pdf
//
// The worked example on page 13 (UT=27898, UP=23843, oss=0) yields 15.0°C and
// 69964 Pa and is used as the reference in the tests.
package bmp085
