// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package display

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

const (
	width  = 128
	height = 64
	// Rows is the number of text lines that fit with the 7x13 font.
	Rows = 4

	ssd1306Addr = 0x3C
)

// OLED is a 128x64 SSD1306 panel on I²C.
type OLED struct {
	dev  *ssd1306.Dev
	addr uint16
}

// OpenOLED initialises the panel answering at addr.
func OpenOLED(bus i2c.Bus, addr uint16) (*OLED, error) {
	if addr != ssd1306Addr {
		bus = &addrBus{Bus: bus, addr: addr}
	}
	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		return nil, fmt.Errorf("ssd1306 at 0x%02X: %w", addr, err)
	}
	return &OLED{dev: dev, addr: addr}, nil
}

// Show implements Screen. Lines past Rows are dropped.
func (o *OLED) Show(lines []string) error {
	img := Render(lines)
	return o.dev.Draw(o.dev.Bounds(), img, image.Point{})
}

// Halt blanks the panel.
func (o *OLED) Halt() error {
	return o.dev.Halt()
}

func (o *OLED) String() string {
	return fmt.Sprintf("OLED{0x%02X}", o.addr)
}

// Render draws lines into a 1-bit frame, 13 pixels per row.
func Render(lines []string) *image1bit.VerticalLSB {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, width, height))
	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{image1bit.On},
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		if i >= Rows {
			break
		}
		drawer.Dot = fixed.P(0, 13*(i+1))
		drawer.DrawString(line)
	}
	return img
}

// addrBus moves the driver's fixed 0x3C address to a strapped alternative,
// so that two panels can share one bus.
type addrBus struct {
	i2c.Bus
	addr uint16
}

func (b *addrBus) Tx(addr uint16, w, r []byte) error {
	if addr == ssd1306Addr {
		addr = b.addr
	}
	return b.Bus.Tx(addr, w, r)
}
