// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package input

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// GPIO reads buttons wired between a GPIO and ground, using the internal
// pull-up: a pressed button reads Low.
type GPIO struct {
	pins  []gpio.PinIn
	order []Button
}

// PinNames maps each button to a GPIO name known to gpioreg.
type PinNames struct {
	Up, Down, Left, Right, Enter string
}

// OpenGPIO looks the pins up by name and configures them as inputs.
func OpenGPIO(names PinNames) (*GPIO, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("buttons: periph host init: %w", err)
	}
	pins := map[Button]gpio.PinIn{}
	for b, name := range map[Button]string{
		Up: names.Up, Down: names.Down, Left: names.Left, Right: names.Right, Enter: names.Enter,
	} {
		if name == "" {
			continue
		}
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("buttons: %s pin %q not found", b, name)
		}
		pins[b] = p
	}
	return NewGPIO(pins)
}

// NewGPIO uses already opened pins. Buttons without a pin never fire.
func NewGPIO(pins map[Button]gpio.PinIn) (*GPIO, error) {
	g := &GPIO{}
	// Fixed scan order so that simultaneous presses resolve the same way.
	for _, b := range []Button{Up, Down, Left, Right, Enter} {
		p, ok := pins[b]
		if !ok {
			continue
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("buttons: %s pin %s: %w", b, p, err)
		}
		g.pins = append(g.pins, p)
		g.order = append(g.order, b)
	}
	return g, nil
}

// Poll implements Source.
func (g *GPIO) Poll() Button {
	for i, p := range g.pins {
		if p.Read() == gpio.Low {
			return g.order[i]
		}
	}
	return None
}

// Wait implements Source.
func (g *GPIO) Wait(timeout time.Duration) Button {
	return waitPoll(g.Poll, timeout)
}

// Close implements Source.
func (g *GPIO) Close() error {
	for _, p := range g.pins {
		if err := p.Halt(); err != nil {
			return err
		}
	}
	return nil
}
