// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	serial "github.com/jacobsa/go-serial/serial"
)

// Serial turns keystrokes from a serial terminal into button presses:
// arrow keys or WASD for the joystick, Enter or space for the push.
type Serial struct {
	rc      io.ReadCloser
	presses chan Button
}

// OpenSerial opens the port and starts decoding keystrokes.
func OpenSerial(portName string, baud int) (*Serial, error) {
	opts := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              uint(baud),
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	}
	port, err := serial.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("keypad: open %s: %w", portName, err)
	}
	log.Printf("keypad: serial port opened on %s at %d baud", portName, baud)
	return NewSerial(port), nil
}

// NewSerial decodes keystrokes read from rc.
func NewSerial(rc io.ReadCloser) *Serial {
	s := &Serial{
		rc:      rc,
		presses: make(chan Button, 16),
	}
	go s.decode()
	return s
}

func (s *Serial) decode() {
	defer close(s.presses)
	r := bufio.NewReader(s.rc)
	for {
		b, err := readKey(r)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("keypad: read error: %v", err)
			}
			return
		}
		if b == None {
			continue
		}
		select {
		case s.presses <- b:
		default:
			// Nobody is reading; drop rather than block the port.
		}
	}
}

// readKey consumes one keystroke, including ANSI arrow escape sequences.
func readKey(r *bufio.Reader) (Button, error) {
	c, err := r.ReadByte()
	if err != nil {
		return None, err
	}
	switch c {
	case 'w', 'W', 'k':
		return Up, nil
	case 's', 'S', 'j':
		return Down, nil
	case 'a', 'A', 'h', 'q':
		return Left, nil
	case 'd', 'D', 'l':
		return Right, nil
	case '\r', '\n', ' ':
		return Enter, nil
	case 0x1B:
		// ESC [ A..D
		if c, err = r.ReadByte(); err != nil {
			return None, err
		}
		if c != '[' {
			return None, nil
		}
		if c, err = r.ReadByte(); err != nil {
			return None, err
		}
		switch c {
		case 'A':
			return Up, nil
		case 'B':
			return Down, nil
		case 'C':
			return Right, nil
		case 'D':
			return Left, nil
		}
	}
	return None, nil
}

// Poll implements Source. Each keystroke is reported once. Once the port is
// gone, Poll reports Left so that menus and sessions can exit.
func (s *Serial) Poll() Button {
	select {
	case b, ok := <-s.presses:
		if !ok {
			return Left
		}
		return b
	default:
	}
	return None
}

// Wait implements Source.
func (s *Serial) Wait(timeout time.Duration) Button {
	var after <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		after = t.C
	}
	select {
	case b, ok := <-s.presses:
		if !ok {
			return Left
		}
		return b
	case <-after:
		return None
	}
}

// Close implements Source.
func (s *Serial) Close() error {
	return s.rc.Close()
}
