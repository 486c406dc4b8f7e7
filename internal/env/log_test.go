// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package env

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// limitedWriter accepts up to max bytes, then writes short.
type limitedWriter struct {
	bytes.Buffer
	max    int
	err    error
	closed bool
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	room := w.max - w.Len()
	if room < len(p) {
		n, _ := w.Buffer.Write(p[:room])
		return n, nil
	}
	return w.Buffer.Write(p)
}

func (w *limitedWriter) Close() error {
	w.closed = true
	return nil
}

func TestCreateLogTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "BMP085.log")
	if err := os.WriteFile(path, []byte("stale data\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err := CreateLog(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Append(Sample{DeciCelsius: 150, Pascal: 69964}); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(Sample{DeciCelsius: 151, Pascal: 69960}); err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "150, 69964\n151, 69960\n"; string(got) != want {
		t.Fatalf("log = %q, want %q", got, want)
	}
}

func TestLogShortWriteStopsLogging(t *testing.T) {
	w := &limitedWriter{max: len("150, 69964\n") + 4}
	l := NewLog(w)
	if err := l.Append(Sample{DeciCelsius: 150, Pascal: 69964}); err != nil {
		t.Fatal(err)
	}
	err := l.Append(Sample{DeciCelsius: 151, Pascal: 69960})
	if !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("err = %v, want io.ErrShortWrite", err)
	}
	if !w.closed {
		t.Fatal("writer not closed after failed append")
	}
	if err := l.Append(Sample{DeciCelsius: 152, Pascal: 69950}); !errors.Is(err, ErrLogClosed) {
		t.Fatalf("err = %v, want ErrLogClosed", err)
	}
	if !bytes.HasPrefix(w.Bytes(), []byte("150, 69964\n")) {
		t.Fatalf("first record corrupted: %q", w.Bytes())
	}
	if l.Records() != 1 {
		t.Fatalf("Records = %d, want 1", l.Records())
	}
}

func TestLogWriteError(t *testing.T) {
	boom := errors.New("disk full")
	w := &limitedWriter{max: 100, err: boom}
	l := NewLog(w)
	if err := l.Append(Sample{}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if err := l.Append(Sample{}); !errors.Is(err, ErrLogClosed) {
		t.Fatalf("err = %v, want ErrLogClosed", err)
	}
}
