// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package altitude turns logged pressures into altitudes with the
// international barometric formula.
package altitude

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// StandardPressure is the sea level reference in Pa.
const StandardPressure = 101325.0

const (
	exponent = 5.25588
	scale    = 0.0000225577
)

// Altitude returns the height in metres at which pressure p is measured,
// relative to the level where the pressure is p0.
func Altitude(p, p0 float64) float64 {
	return (1 - math.Pow(p/p0, 1/exponent)) / scale
}

// SeaLevelPressure returns the reference pressure for which p is measured
// at altitude metres.
func SeaLevelPressure(p, altitude float64) float64 {
	return p / math.Pow(1-altitude*scale, exponent)
}

// Averages reads a logger file and returns the mean altitude of each
// consecutive chunk of n lines. Lines without a pressure field are
// skipped but still count towards the chunk. Reading stops at the first
// chunk holding fewer than n pressures.
func Averages(r io.Reader, n int, p0 float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("altitude: chunk size must be positive, got %d", n)
	}
	sc := bufio.NewScanner(r)
	var out []float64
	lineNum := 0
	for {
		sum, values := 0.0, 0
		for i := 0; i < n && sc.Scan(); i++ {
			lineNum++
			fields := strings.Split(strings.TrimSpace(sc.Text()), ",")
			if len(fields) < 2 {
				continue
			}
			p, err := strconv.Atoi(strings.TrimSpace(fields[1]))
			if err != nil {
				return out, fmt.Errorf("altitude: line %d: %w", lineNum, err)
			}
			sum += Altitude(float64(p), p0)
			values++
		}
		if err := sc.Err(); err != nil {
			return out, fmt.Errorf("altitude: %w", err)
		}
		if values < n {
			return out, nil
		}
		out = append(out, sum/float64(n))
	}
}

// FirstPressure returns the pressure of the first record of a logger file
// that has one.
func FirstPressure(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Split(strings.TrimSpace(sc.Text()), ",")
		if len(fields) < 2 {
			continue
		}
		p, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return 0, fmt.Errorf("altitude: %w", err)
		}
		return p, nil
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("altitude: %w", err)
	}
	return 0, fmt.Errorf("altitude: no pressure in log")
}
