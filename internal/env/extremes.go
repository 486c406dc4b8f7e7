// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package env

// Extremes tracks the running minimum and maximum of a sampling session.
//
// Temperature and pressure are tracked independently: the max temperature
// and the max pressure usually come from different samples.
type Extremes struct {
	current Sample

	MinDeciCelsius, MaxDeciCelsius int32
	MinPascal, MaxPascal           int32
}

// NewExtremes starts tracking from the first sample of a session.
func NewExtremes(first Sample) *Extremes {
	e := &Extremes{}
	e.current = first
	e.ResetMax()
	e.ResetMin()
	return e
}

// Observe records s as the current sample and widens the extremes.
func (e *Extremes) Observe(s Sample) {
	e.current = s
	if s.DeciCelsius > e.MaxDeciCelsius {
		e.MaxDeciCelsius = s.DeciCelsius
	}
	if s.DeciCelsius < e.MinDeciCelsius {
		e.MinDeciCelsius = s.DeciCelsius
	}
	if s.Pascal > e.MaxPascal {
		e.MaxPascal = s.Pascal
	}
	if s.Pascal < e.MinPascal {
		e.MinPascal = s.Pascal
	}
}

// Current returns the last observed sample.
func (e *Extremes) Current() Sample {
	return e.current
}

// ResetMax sets both maxima to the current sample.
func (e *Extremes) ResetMax() {
	e.MaxDeciCelsius = e.current.DeciCelsius
	e.MaxPascal = e.current.Pascal
}

// ResetMin sets both minima to the current sample.
func (e *Extremes) ResetMin() {
	e.MinDeciCelsius = e.current.DeciCelsius
	e.MinPascal = e.current.Pascal
}
