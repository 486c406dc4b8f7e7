// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package jukebox plays square-wave tunes on a GPIO pin.
package jukebox

import "time"

// Note is the toggle rate of the speaker pin in Hz. The pin completes one
// period every two toggles, so the audible pitch is half the note value.
type Note uint32

// Fourth octave. Multiply or divide by 2 to move by octaves: B*2 is B5,
// C*2*2 is C6.
const (
	C   Note = 262
	CIS Note = 277
	D   Note = 294
	DIS Note = 311
	E   Note = 330
	F   Note = 349
	FIS Note = 370
	G   Note = 392
	GIS Note = 415
	A   Note = 440
	AIS Note = 466
	B   Note = 494
)

// Period is the time between two pin toggles.
func (n Note) Period() time.Duration {
	if n == 0 {
		return 0
	}
	return time.Second / time.Duration(n)
}

// Step is one note or rest of a song. A zero Note is a rest.
type Step struct {
	Note  Note
	Beats uint16
}

// Rest reports whether the step is silent.
func (s Step) Rest() bool {
	return s.Note == 0
}

// Song is a named sequence of steps played at Speed milliseconds per beat.
type Song struct {
	Name  string
	Speed uint16
	Steps []Step
}

// Duration returns how long step i sounds.
func (s Song) Duration(i int) time.Duration {
	return time.Duration(s.Steps[i].Beats) * time.Duration(s.Speed) * time.Millisecond
}

// Length is the total playing time of the song.
func (s Song) Length() time.Duration {
	var d time.Duration
	for i := range s.Steps {
		d += s.Duration(i)
	}
	return d
}

type score []Step

func (s *score) beep(n Note, beats uint16) {
	*s = append(*s, Step{Note: n, Beats: beats})
}

func (s *score) rest(beats uint16) {
	*s = append(*s, Step{Beats: beats})
}
