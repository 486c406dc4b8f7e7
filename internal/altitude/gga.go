// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package altitude

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	nmea "github.com/adrianmo/go-nmea"
	serial "github.com/jacobsa/go-serial/serial"
)

// ErrNoFix is returned when the input ends before a usable GGA sentence.
var ErrNoFix = errors.New("altitude: no GGA fix")

// ParseGGA returns the altitude above mean sea level of a GGA sentence.
func ParseGGA(line string) (float64, error) {
	sentence, err := nmea.Parse(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("altitude: %w", err)
	}
	if sentence.DataType() != nmea.TypeGGA {
		return 0, fmt.Errorf("altitude: %s is not a GGA sentence", sentence.DataType())
	}
	gga := sentence.(nmea.GGA)
	if gga.FixQuality == nmea.Invalid {
		return 0, ErrNoFix
	}
	return gga.Altitude, nil
}

// ReadGGA scans NMEA lines until a GGA sentence with a fix arrives and
// returns its altitude.
func ReadGGA(r io.Reader) (float64, error) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "$") {
			if alt, perr := ParseGGA(line); perr == nil {
				return alt, nil
			}
		}
		if errors.Is(err, io.EOF) {
			return 0, ErrNoFix
		}
		if err != nil {
			return 0, fmt.Errorf("altitude: GPS read: %w", err)
		}
	}
}

// ReadGPS opens a GPS receiver on a serial port and waits for a GGA fix.
func ReadGPS(port string, baud uint) (float64, error) {
	opts := serial.OpenOptions{
		PortName:        port,
		BaudRate:        baud,
		DataBits:        8,
		StopBits:        1,
		MinimumReadSize: 1,
		ParityMode:      serial.PARITY_NONE,
	}
	rc, err := serial.Open(opts)
	if err != nil {
		return 0, fmt.Errorf("altitude: open %s: %w", port, err)
	}
	defer rc.Close()
	log.Printf("altitude: waiting for a GGA fix on %s at %d baud", port, baud)
	return ReadGGA(rc)
}
