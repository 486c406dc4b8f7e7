// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/badge_l0dables/internal/bmp085"
	"github.com/relabs-tech/badge_l0dables/internal/config"
	"github.com/relabs-tech/badge_l0dables/internal/env"
)

// EnvSource produces compensated environmental samples.
type EnvSource interface {
	Next() (env.Sample, error)
	Close() error
}

// BMP085 reads a BMP085 on an I²C bus.
type BMP085 struct {
	name string
	bus  i2c.BusCloser
	dev  *bmp085.Dev
	now  func() time.Time
}

// OpenBMP085 initialises the host, opens the configured bus and loads the
// sensor calibration.
func OpenBMP085(cfg *config.Config) (*BMP085, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("BMP085: periph host init: %w", err)
	}
	bus, err := i2creg.Open(cfg.BMPI2CBus)
	if err != nil {
		return nil, fmt.Errorf("BMP085: I2C open %q: %w", cfg.BMPI2CBus, err)
	}
	s, err := NewBMP085(bus, cfg.BMPI2CAddr, bmp085.Oversampling(cfg.BMPOversampling))
	if err != nil {
		bus.Close()
		return nil, err
	}
	log.Printf("sensors: %s ready (oss %s)", s.dev, s.dev.Oversampling())
	return s, nil
}

// NewBMP085 uses an already opened bus. The bus is closed by Close.
func NewBMP085(bus i2c.BusCloser, addr uint16, oss bmp085.Oversampling) (*BMP085, error) {
	dev, err := bmp085.New(bus, &bmp085.Opts{Address: addr, Oversampling: oss})
	if err != nil {
		return nil, fmt.Errorf("BMP085 init: %w", err)
	}
	return &BMP085{name: "bmp085", bus: bus, dev: dev, now: time.Now}, nil
}

// Dev exposes the driver for register inspection.
func (b *BMP085) Dev() *bmp085.Dev {
	return b.dev
}

// Next implements EnvSource.
func (b *BMP085) Next() (env.Sample, error) {
	s, err := b.dev.Measure()
	if err != nil {
		return env.Sample{}, fmt.Errorf("BMP085 measure: %w", err)
	}
	return env.Sample{
		Source:      b.name,
		DeciCelsius: s.DeciCelsius,
		Pascal:      s.Pascal,
		Time:        b.now(),
	}, nil
}

// Close implements EnvSource.
func (b *BMP085) Close() error {
	if err := b.dev.Halt(); err != nil {
		return err
	}
	return b.bus.Close()
}

// Open returns the source selected by the configuration.
func Open(cfg *config.Config) (EnvSource, error) {
	if cfg.UseMockSensor {
		log.Println("sensors: using mock BMP085")
		return NewMockSource(), nil
	}
	return OpenBMP085(cfg)
}
