// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package env

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatLine renders one log record: "<0.1°C>, <Pa>\n".
//
// This is the on-disk format read by the altitude tool.
func FormatLine(s Sample) string {
	return string(AppendLine(nil, s))
}

// AppendLine appends the record of s to b.
func AppendLine(b []byte, s Sample) []byte {
	b = strconv.AppendInt(b, int64(s.DeciCelsius), 10)
	b = append(b, ',', ' ')
	b = strconv.AppendInt(b, int64(s.Pascal), 10)
	return append(b, '\n')
}

// ParseLine parses a record written by FormatLine. The trailing newline is
// optional.
func ParseLine(line string) (deciCelsius, pascal int32, err error) {
	line = strings.TrimRight(line, "\r\n")
	temp, pres, ok := strings.Cut(line, ",")
	if !ok {
		return 0, 0, fmt.Errorf("log line %q: missing separator", line)
	}
	t, err := strconv.ParseInt(strings.TrimSpace(temp), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("log line %q: temperature: %w", line, err)
	}
	p, err := strconv.ParseInt(strings.TrimSpace(pres), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("log line %q: pressure: %w", line, err)
	}
	return int32(t), int32(p), nil
}
