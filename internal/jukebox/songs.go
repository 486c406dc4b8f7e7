// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package jukebox

// Tetris plays the first theme of Korobeiniki, one octave up.
func Tetris() Song {
	var s score
	s.beep(G*2*2, 2)
	s.beep(D*2*2, 1)
	s.beep(DIS*2*2, 1)
	s.beep(F*2*2, 2)
	s.beep(DIS*2*2, 1)
	s.beep(D*2*2, 1)
	s.beep(C*2*2, 2)
	s.beep(C*2*2, 1)
	s.beep(DIS*2*2, 1)
	s.beep(G*2*2, 2)
	s.beep(F*2*2, 1)
	s.beep(DIS*2*2, 1)
	s.beep(D*2*2, 2)
	s.beep(D*2*2, 1)
	s.beep(DIS*2*2, 1)
	s.beep(F*2*2, 2)
	s.beep(G*2*2, 2)
	s.beep(DIS*2*2, 2)
	s.beep(C*2*2, 2)
	s.beep(C*2*2, 2)
	s.rest(3)

	// B section
	s.beep(F*2*2, 2)
	s.beep(GIS*2*2, 1)
	s.beep(C*2*2*2, 2)
	s.beep(AIS*2*2, 1)
	s.beep(GIS*2*2, 1)
	s.beep(G*2*2, 3)
	s.beep(DIS*2*2, 1)
	s.beep(G*2*2, 2)
	s.beep(F*2*2, 1)
	s.beep(DIS*2*2, 1)
	s.beep(D*2*2, 2)
	s.beep(D*2*2, 1)
	s.beep(DIS*2*2, 1)
	s.beep(F*2*2, 2)
	s.beep(G*2*2, 2)
	s.beep(DIS*2*2, 2)
	s.beep(C*2*2, 2)
	s.beep(C*2*2, 2)
	s.rest(2)
	return Song{Name: "Tetris", Speed: 110, Steps: s}
}

// NyanCat plays the Nyan Cat loop without its intro, one octave up. The
// whole loop is played repeat+1 times.
func NyanCat(repeat int) Song {
	var s score
	for r := 0; r <= repeat; r++ {
		for i := 0; i < 2; i++ {
			// bar 3
			s.beep(FIS*2*2, 2)
			s.beep(GIS*2*2, 2)
			s.beep(DIS*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.rest(1)
			s.beep(B*2, 1)
			s.beep(D*2*2, 1)
			s.beep(CIS*2*2, 1)
			s.beep(B*2, 1)
			s.rest(1)
			s.beep(B*2, 2)
			s.beep(CIS*2*2, 2)
			// bar 4
			s.beep(D*2*2, 2)
			s.beep(DIS*2*2, 1)
			s.beep(CIS*2*2, 1)
			s.beep(B*2, 1)
			s.beep(CIS*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.beep(FIS*2*2, 1)
			s.beep(GIS*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.beep(FIS*2*2, 1)
			s.beep(CIS*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.beep(B*2, 1)
			s.beep(CIS*2*2, 1)
			s.beep(B*2, 1)
			// bar 5
			s.beep(DIS*2*2, 2)
			s.beep(FIS*2*2, 2)
			s.beep(GIS*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.beep(FIS*2*2, 1)
			s.beep(CIS*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.beep(B*2, 1)
			s.beep(D*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.beep(D*2*2, 1)
			s.beep(CIS*2*2, 1)
			s.beep(B*2, 1)
			s.beep(CIS*2*2, 1)
			// bar 6
			s.beep(D*2*2, 2)
			s.beep(B*2, 1)
			s.beep(CIS*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.beep(FIS*2*2, 1)
			s.beep(CIS*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.beep(CIS*2*2, 1)
			s.beep(B*2, 1)
			s.beep(CIS*2*2, 2)
			s.beep(B*2, 2)
			s.beep(CIS*2*2, 2)
		}
		for i := 0; i < 2; i++ {
			// bar 7
			s.beep(B*2, 2)
			s.beep(FIS*2, 1)
			s.beep(GIS*2, 1)
			s.beep(B*2, 2)
			s.beep(FIS*2, 1)
			s.beep(GIS*2, 1)
			s.beep(B*2, 1)
			s.beep(CIS*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.beep(B*2, 1)
			s.beep(E*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.beep(E*2*2, 1)
			s.beep(FIS*2*2, 1)
			// bar 8
			s.beep(B*2, 2)
			s.beep(B*2, 2)
			s.beep(FIS*2, 1)
			s.beep(GIS*2, 1)
			s.beep(B*2, 1)
			s.beep(FIS*2, 1)
			s.beep(E*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.beep(CIS*2*2, 1)
			s.beep(B*2, 1)
			s.beep(FIS*2, 1)
			s.beep(DIS*2, 1)
			s.beep(E*2, 1)
			s.beep(FIS*2, 1)
			// bar 9
			s.beep(B*2, 2)
			s.beep(FIS*2, 1)
			s.beep(GIS*2, 1)
			s.beep(B*2, 2)
			s.beep(FIS*2, 1)
			s.beep(GIS*2, 1)
			s.beep(B*2, 1)
			s.beep(B*2, 1)
			s.beep(CIS*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.beep(B*2, 1)
			s.beep(FIS*2, 1)
			s.beep(GIS*2, 1)
			s.beep(FIS*2, 1)
			// bar 10
			s.beep(B*2, 2)
			s.beep(B*2, 1)
			s.beep(AIS*2, 1)
			s.beep(B*2, 1)
			s.beep(FIS*2, 1)
			s.beep(GIS*2, 1)
			s.beep(B*2, 1)
			s.beep(E*2*2, 1)
			s.beep(DIS*2*2, 1)
			s.beep(E*2*2, 1)
			s.beep(FIS*2*2, 1)
			s.beep(B*2, 2)
			if i == 0 {
				s.beep(AIS*2, 2)
			} else {
				s.beep(CIS*2*2, 2)
			}
		}
	}
	return Song{Name: "Nyan Cat", Speed: 65, Steps: s}
}

// Rickroll plays the refrain of Never Gonna Give You Up, two octaves up.
func Rickroll() Song {
	var s score
	s.rickrollHook()
	s.beep(D*2*2*2, 3)
	s.beep(D*2*2*2, 2)
	s.beep(C*2*2*2, 6)
	s.rickrollHook()
	s.beep(C*2*2*2, 3)
	s.beep(C*2*2*2, 2)
	s.beep(AIS*2*2, 3)
	s.beep(A*2*2, 1)
	s.beep(G*2*2, 4)
	s.rickrollHook()
	s.beep(AIS*2*2, 4)
	s.beep(C*2*2*2, 2)
	s.beep(A*2*2, 3)
	s.beep(G*2*2, 1)
	s.beep(F*2*2, 4)
	s.beep(F*2*2, 2)
	s.beep(C*2*2*2, 4)
	s.beep(AIS*2*2, 8)

	// Second verse of the refrain
	s.rickrollHook()
	s.beep(D*2*2*2, 3)
	s.beep(D*2*2*2, 2)
	s.beep(C*2*2*2, 6)
	s.rickrollHook()
	s.beep(F*2*2*2, 4)
	s.beep(A*2*2, 2)
	s.beep(AIS*2*2, 3)
	s.beep(A*2*2, 1)
	s.beep(G*2*2, 4)
	s.rickrollHook()
	s.beep(AIS*2*2, 4)
	s.beep(C*2*2*2, 2)
	s.beep(A*2*2, 3)
	s.beep(G*2*2, 1)
	s.beep(F*2*2, 4)
	s.beep(F*2*2, 2)
	s.beep(C*2*2*2, 4)
	s.beep(AIS*2*2, 8)
	return Song{Name: "Rick Astley", Speed: 90, Steps: s}
}

// rickrollHook is the four-note "never gonna" pickup.
func (s *score) rickrollHook() {
	s.beep(F*2*2, 1)
	s.beep(G*2*2, 1)
	s.beep(AIS*2*2, 1)
	s.beep(G*2*2, 1)
}

// Songs lists every song in menu order.
func Songs() []Song {
	return []Song{NyanCat(1), Tetris(), Rickroll()}
}
