// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"math"
	"time"

	"github.com/relabs-tech/badge_l0dables/internal/env"
)

type mockSource struct {
	start time.Time
	now   func() time.Time
}

// NewMockSource creates a source that generates smoothly changing indoor
// readings around 21.5°C and 1013 hPa.
func NewMockSource() EnvSource {
	return &mockSource{start: time.Now(), now: time.Now}
}

func (m *mockSource) Next() (env.Sample, error) {
	t := m.now()
	elapsed := t.Sub(m.start).Seconds()
	return env.Sample{
		Source:      "mock",
		DeciCelsius: 215 + int32(math.Round(20*math.Sin(elapsed/30))),
		Pascal:      101325 + int32(math.Round(150*math.Sin(elapsed/7))),
		Time:        t,
	}, nil
}

func (m *mockSource) Close() error { return nil }
