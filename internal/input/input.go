// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package input reads the badge's five buttons: a four-way joystick and its
// push (Enter).
package input

import "time"

// Button identifies one key. None means no key is pressed.
type Button uint8

const (
	None Button = iota
	Up
	Down
	Left
	Right
	Enter
)

func (b Button) String() string {
	switch b {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Enter:
		return "enter"
	default:
		return "unknown"
	}
}

// Source is anything that can report button presses.
type Source interface {
	// Poll returns the button pressed right now, or None. It never blocks.
	Poll() Button
	// Wait blocks until a button is pressed or the timeout elapses, in which
	// case it returns None. A timeout <= 0 waits forever.
	Wait(timeout time.Duration) Button
	Close() error
}

// pollInterval is how often polling sources sample their inputs while waiting.
const pollInterval = 10 * time.Millisecond

// waitPoll implements Wait on top of a polling function.
func waitPoll(poll func() Button, timeout time.Duration) Button {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	for {
		if b := poll(); b != None {
			return b
		}
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return None
		}
		time.Sleep(pollInterval)
	}
}
