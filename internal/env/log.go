// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package env

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrLogClosed is returned by Append once the log has been closed, either
// explicitly or after a failed write.
var ErrLogClosed = errors.New("env: log closed")

// Log is an append-only sample log, one FormatLine record per sample.
type Log struct {
	w   io.WriteCloser
	buf []byte
	n   int
}

// CreateLog creates the log file, truncating any previous one.
func CreateLog(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create log %s: %w", path, err)
	}
	return NewLog(f), nil
}

// NewLog writes records to w. The Log owns w and closes it.
func NewLog(w io.WriteCloser) *Log {
	return &Log{w: w}
}

// Append writes one record. A failed or short write closes the log: the
// record is not retried and later calls return ErrLogClosed.
func (l *Log) Append(s Sample) error {
	if l.w == nil {
		return ErrLogClosed
	}
	l.buf = AppendLine(l.buf[:0], s)
	n, err := l.w.Write(l.buf)
	if err == nil && n != len(l.buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		_ = l.Close()
		return fmt.Errorf("append record %d: %w", l.n+1, err)
	}
	l.n++
	return nil
}

// Records returns the number of records written.
func (l *Log) Records() int {
	return l.n
}

// Close closes the underlying writer. It is safe to call more than once.
func (l *Log) Close() error {
	if l.w == nil {
		return nil
	}
	err := l.w.Close()
	l.w = nil
	return err
}
