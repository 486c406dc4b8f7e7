// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/relabs-tech/badge_l0dables/internal/env"
	"github.com/relabs-tech/badge_l0dables/internal/input"
	"github.com/relabs-tech/badge_l0dables/internal/sensors"
)

const (
	splashDuration   = 1500 * time.Millisecond
	fileErrorDisplay = 2000 * time.Millisecond
)

var splashPages = [][]string{
	{"", "  BMP085", "    Monitor", "    Logger"},
	{"Up: Reset Max", "Dwn: Rst. Min", "Left: Exit"},
}

// Pages shows one or more text pages on the badge screens.
type Pages interface {
	Show(pages [][]string) error
	Next()
	Screens() int
}

// Publisher forwards samples to other processes.
type Publisher interface {
	Publish(s env.Sample) error
}

// LoggerSession samples the BMP085, tracks the session extremes and
// optionally appends every sample to a log file.
type LoggerSession struct {
	src      sensors.EnvSource
	screens  Pages
	in       input.Source
	interval time.Duration

	log *env.Log
	pub Publisher

	ext     *env.Extremes
	pending input.Button
	sleep   func(time.Duration)
}

// NewLoggerSession wires a session. Logging and publishing are off until
// EnableLog and SetPublisher are called.
func NewLoggerSession(src sensors.EnvSource, screens Pages, in input.Source, interval time.Duration) *LoggerSession {
	return &LoggerSession{
		src:      src,
		screens:  screens,
		in:       in,
		interval: interval,
		sleep:    time.Sleep,
	}
}

// EnableLog appends every sample to l from the next step on.
func (s *LoggerSession) EnableLog(l *env.Log) {
	s.log = l
}

// SetPublisher forwards every sample to p.
func (s *LoggerSession) SetPublisher(p Publisher) {
	s.pub = p
}

// Logging reports whether samples are still being written to the log.
func (s *LoggerSession) Logging() bool {
	return s.log != nil
}

// Extremes returns the running extremes, nil before Start.
func (s *LoggerSession) Extremes() *env.Extremes {
	return s.ext
}

// Start shows the splash screen and seeds the extremes with a first
// reading.
func (s *LoggerSession) Start() error {
	if err := s.showSplash(); err != nil {
		return err
	}
	first, err := s.src.Next()
	if err != nil {
		return fmt.Errorf("logger: first reading: %w", err)
	}
	s.ext = env.NewExtremes(first)
	return nil
}

// Step takes one sample, logs and publishes it, refreshes the screens and
// applies UP/DOWN/RIGHT. A sensor failure ends the session; a log failure
// only ends logging.
func (s *LoggerSession) Step() error {
	sample, err := s.src.Next()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	s.ext.Observe(sample)

	if s.log != nil {
		if err := s.log.Append(sample); err != nil {
			s.logFailed(err)
		}
	}
	if s.pub != nil {
		if err := s.pub.Publish(sample); err != nil {
			log.Printf("logger: publish: %v", err)
		}
	}

	if err := s.screens.Show(readingPages(s.ext)); err != nil {
		return fmt.Errorf("logger: display: %w", err)
	}

	b := s.pending
	s.pending = input.None
	if b == input.None {
		b = s.in.Poll()
	}
	switch b {
	case input.Up:
		s.ext.ResetMax()
	case input.Down:
		s.ext.ResetMin()
	case input.Right:
		s.screens.Next()
	}
	return nil
}

// Run starts the session and steps it every interval until LEFT is pressed
// or ctx is done.
func (s *LoggerSession) Run(ctx context.Context) error {
	defer s.closeLog()
	if err := s.Start(); err != nil {
		return err
	}
	for {
		if err := s.Step(); err != nil {
			return err
		}
		b := s.in.Wait(s.interval)
		if b == input.Left {
			log.Println("logger: exit requested")
			return nil
		}
		s.pending = b
		if err := ctx.Err(); err != nil {
			return nil
		}
	}
}

func (s *LoggerSession) showSplash() error {
	perScreen := 1
	if n := s.screens.Screens(); n > 0 && n < len(splashPages) {
		perScreen = len(splashPages) / n
	}
	for i := 0; i < perScreen; i++ {
		if err := s.screens.Show(splashPages); err != nil {
			return fmt.Errorf("logger: splash: %w", err)
		}
		s.sleep(splashDuration / time.Duration(perScreen))
		if perScreen > 1 {
			s.screens.Next()
		}
	}
	return nil
}

// logFailed reports a failed append and turns logging off for the rest of
// the session.
func (s *LoggerSession) logFailed(err error) {
	log.Printf("logger: log disabled after %d records: %v", s.log.Records(), err)
	s.log = nil
	lines := []string{"File Error", "(f_write)"}
	if errors.Is(err, io.ErrShortWrite) {
		lines = []string{"Error while", "writing (size)"}
	}
	if serr := s.screens.Show([][]string{lines}); serr != nil {
		log.Printf("logger: display: %v", serr)
	}
	s.sleep(fileErrorDisplay)
}

func (s *LoggerSession) closeLog() {
	if s.log == nil {
		return
	}
	if err := s.log.Close(); err != nil {
		log.Printf("logger: close log: %v", err)
	}
	s.log = nil
}

// readingPages renders the temperature and pressure screens.
func readingPages(e *env.Extremes) [][]string {
	cur := e.Current()
	return [][]string{
		{
			"Temperature:",
			" " + formatDeci(cur.DeciCelsius) + "C",
			" Max " + formatDeci(e.MaxDeciCelsius) + "C",
			" Min " + formatDeci(e.MinDeciCelsius) + "C",
		},
		{
			"Pressure:",
			fmt.Sprintf(" %dPa", cur.Pascal),
			fmt.Sprintf(" Max %dPa", e.MaxPascal),
			fmt.Sprintf(" Min %dPa", e.MinPascal),
		},
	}
}

// formatDeci prints tenths with one decimal, "-0.5" included.
func formatDeci(v int32) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%d", sign, v/10, v%10)
}
