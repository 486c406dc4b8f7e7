// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package bmp085

import (
	"fmt"
	"log"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Opts holds the device configuration.
type Opts struct {
	Address      uint16
	Oversampling Oversampling
}

// DefaultOpts matches the logger's historical settings.
var DefaultOpts = Opts{
	Address:      DefaultAddress,
	Oversampling: UltraLowPower,
}

// Dev is a handle to a BMP085.
type Dev struct {
	c     conn.Conn
	oss   Oversampling
	cal   Calibration
	sleep func(time.Duration)

	mu   sync.Mutex
	stop chan struct{}
	wg   sync.WaitGroup
}

// New returns a Dev on the given bus and reads its calibration record.
func New(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if !opts.Oversampling.Valid() {
		return nil, ErrInvalidOversampling
	}
	addr := opts.Address
	if addr == 0 {
		addr = DefaultAddress
	}
	d := &Dev{
		c:     &i2c.Dev{Bus: b, Addr: addr},
		oss:   opts.Oversampling,
		sleep: time.Sleep,
	}
	cal, err := LoadCalibration(d.c)
	if err != nil {
		return nil, err
	}
	d.cal = cal
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("BMP085{%s}", d.c)
}

// Calibration returns the record read at initialization.
func (d *Dev) Calibration() Calibration {
	return d.cal
}

// Oversampling returns the configured pressure oversampling.
func (d *Dev) Oversampling() Oversampling {
	return d.oss
}

// ReadRawTemperature starts a temperature conversion and returns UT.
//
// A single conversion is read, with no retry. Single reads are known to
// return a bad value now and then; see the package documentation.
func (d *Dev) ReadRawTemperature() (int16, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readRawTemperature()
}

// ReadRawPressure starts a pressure conversion and returns UP.
func (d *Dev) ReadRawPressure() (int32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readRawPressure()
}

// Measure reads both conversions and compensates them.
func (d *Dev) Measure() (Sample, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.measure()
}

// ReadRegisters reads n consecutive registers starting at reg. It is meant
// for inspection tools; a conversion in flight is not disturbed.
func (d *Dev) ReadRegisters(reg byte, n int) ([]byte, error) {
	if n <= 0 || int(reg)+n > 0x100 {
		return nil, fmt.Errorf("bmp085: invalid register range 0x%02X+%d", reg, n)
	}
	b := make([]byte, n)
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.c.Tx([]byte{reg}, b); err != nil {
		return nil, &BusError{Op: "read", Reg: reg, Err: err}
	}
	return b, nil
}

// WriteControl writes a raw command to the measurement control register.
// The next data read returns the result of that conversion.
func (d *Dev) WriteControl(cmd byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return writeReg(d.c, regControl, cmd)
}

// Sense implements physic.SenseEnv.
func (d *Dev) Sense(e *physic.Env) error {
	s, err := d.Measure()
	if err != nil {
		return err
	}
	s.toEnv(e)
	return nil
}

// SenseContinuous implements physic.SenseEnv.
//
// The channel is closed when Halt is called or a reading fails.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("bmp085: invalid interval %s", interval)
	}
	if err := d.Halt(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	stop := make(chan struct{})
	d.stop = stop
	d.mu.Unlock()

	ch := make(chan physic.Env)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer close(ch)
		d.senseLoop(interval, ch, stop)
	}()
	return ch, nil
}

// Precision implements physic.SenseEnv.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = 100 * physic.MilliKelvin
	e.Pressure = physic.Pascal
}

// Halt stops a continuous sensing loop, if any.
func (d *Dev) Halt() error {
	d.mu.Lock()
	stop := d.stop
	d.stop = nil
	d.mu.Unlock()
	if stop != nil {
		close(stop)
		d.wg.Wait()
	}
	return nil
}

func (d *Dev) senseLoop(interval time.Duration, ch chan<- physic.Env, stop <-chan struct{}) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		d.mu.Lock()
		s, err := d.measure()
		d.mu.Unlock()
		if err != nil {
			log.Printf("bmp085: continuous sense: %v", err)
			return
		}
		var e physic.Env
		s.toEnv(&e)
		select {
		case ch <- e:
		case <-stop:
			return
		}
		select {
		case <-t.C:
		case <-stop:
			return
		}
	}
}

func (d *Dev) measure() (Sample, error) {
	ut, err := d.readRawTemperature()
	if err != nil {
		return Sample{}, err
	}
	up, err := d.readRawPressure()
	if err != nil {
		return Sample{}, err
	}
	return Compensate(Raw{UT: ut, UP: up}, d.cal, d.oss)
}

func (d *Dev) readRawTemperature() (int16, error) {
	if err := writeReg(d.c, regControl, cmdTemperature); err != nil {
		return 0, err
	}
	d.sleep(temperatureDelay)
	v, err := readUint16(d.c, regData)
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

func (d *Dev) readRawPressure() (int32, error) {
	if err := writeReg(d.c, regControl, d.oss.pressureCommand()); err != nil {
		return 0, err
	}
	d.sleep(d.oss.PressureDelay())
	v, err := readUint24(d.c, regData)
	if err != nil {
		return 0, err
	}
	return int32(v >> (8 - d.oss)), nil
}

func (s Sample) toEnv(e *physic.Env) {
	e.Temperature = physic.Temperature(s.DeciCelsius)*100*physic.MilliCelsius + physic.ZeroCelsius
	e.Pressure = physic.Pressure(s.Pascal) * physic.Pascal
}

var _ physic.SenseEnv = &Dev{}
