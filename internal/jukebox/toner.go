// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package jukebox

import (
	"fmt"
	"log"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Toner produces one tone at a time.
type Toner interface {
	Tone(n Note) error
	Silence() error
}

// PinToner toggles a GPIO from a ticker goroutine, once per note period.
// The pin drives a passive speaker directly.
type PinToner struct {
	pin gpio.PinOut

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// OpenPinToner looks up the speaker pin by name.
func OpenPinToner(name string) (*PinToner, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("speaker: periph host init: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("speaker: pin %q not found", name)
	}
	return NewPinToner(p)
}

// NewPinToner takes over pin and sets it high, its idle level at startup.
func NewPinToner(pin gpio.PinOut) (*PinToner, error) {
	if err := pin.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("speaker: %s: %w", pin, err)
	}
	return &PinToner{pin: pin}, nil
}

// Tone starts toggling the pin at the note rate, replacing any tone
// already playing.
func (t *PinToner) Tone(n Note) error {
	if n == 0 {
		return t.Silence()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.halt()
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.toggle(n.Period(), t.stop, t.done)
	return nil
}

// Silence stops the tone and pulls the pin low.
func (t *PinToner) Silence() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.halt()
	return t.pin.Out(gpio.Low)
}

// Halt implements conn.Resource.
func (t *PinToner) Halt() error {
	return t.Silence()
}

func (t *PinToner) String() string {
	return fmt.Sprintf("PinToner{%s}", t.pin)
}

// halt stops the toggler. t.mu must be held.
func (t *PinToner) halt() {
	if t.stop == nil {
		return
	}
	close(t.stop)
	<-t.done
	t.stop, t.done = nil, nil
}

func (t *PinToner) toggle(period time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	tick := time.NewTicker(period)
	defer tick.Stop()
	level := gpio.Low
	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			level = !level
			if err := t.pin.Out(level); err != nil {
				log.Printf("speaker: %v", err)
				return
			}
		}
	}
}
