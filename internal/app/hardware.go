// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/badge_l0dables/internal/config"
	"github.com/relabs-tech/badge_l0dables/internal/display"
	"github.com/relabs-tech/badge_l0dables/internal/input"
)

// openScreens returns a pager over the configured OLEDs, or over text
// screens on stdout when no display address is set. The closer releases
// the display bus.
func openScreens(cfg *config.Config) (*display.Pager, io.Closer, error) {
	if cfg.DisplayLeftI2CAddr == 0 {
		log.Println("display: no OLED configured, printing screens to stdout")
		return display.NewPager(display.NewText(os.Stdout, "left"), display.NewText(os.Stdout, "right")), io.NopCloser(nil), nil
	}
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize periph: %w", err)
	}
	bus, err := i2creg.Open(cfg.DisplayI2CBus)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open display I2C bus: %w", err)
	}
	left, err := display.OpenOLED(bus, cfg.DisplayLeftI2CAddr)
	if err != nil {
		bus.Close()
		return nil, nil, fmt.Errorf("failed to initialize left display: %w", err)
	}
	log.Printf("display: left display initialized at 0x%02X", cfg.DisplayLeftI2CAddr)
	screens := []display.Screen{left}
	if cfg.DisplayRightI2CAddr != 0 {
		right, err := display.OpenOLED(bus, cfg.DisplayRightI2CAddr)
		if err != nil {
			bus.Close()
			return nil, nil, fmt.Errorf("failed to initialize right display: %w", err)
		}
		log.Printf("display: right display initialized at 0x%02X", cfg.DisplayRightI2CAddr)
		screens = append(screens, right)
	}
	return display.NewPager(screens...), bus, nil
}

// openInput returns the serial keypad when configured, the GPIO buttons
// otherwise. A serial port of "-" reads keys from stdin.
func openInput(cfg *config.Config) (input.Source, error) {
	switch cfg.InputSerialPort {
	case "":
		return input.OpenGPIO(input.PinNames{
			Up:    cfg.ButtonUpPin,
			Down:  cfg.ButtonDownPin,
			Left:  cfg.ButtonLeftPin,
			Right: cfg.ButtonRightPin,
			Enter: cfg.ButtonEnterPin,
		})
	case "-":
		log.Println("input: reading keys from stdin (w/a/s/d, space, q)")
		return input.NewSerial(os.Stdin), nil
	default:
		return input.OpenSerial(cfg.InputSerialPort, cfg.InputSerialBaud)
	}
}
