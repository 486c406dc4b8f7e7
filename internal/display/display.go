// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package display shows pages of short text lines on the badge screens.
package display

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Screen shows one page of text lines.
type Screen interface {
	Show(lines []string) error
}

// Text prints pages to a writer, one labelled block per Show. It stands in
// for an OLED when running without hardware.
type Text struct {
	mu    sync.Mutex
	w     io.Writer
	label string
	last  string
}

// NewText returns a Screen writing to w. Identical consecutive pages are
// printed once.
func NewText(w io.Writer, label string) *Text {
	return &Text{w: w, label: label}
}

// Show implements Screen.
func (t *Text) Show(lines []string) error {
	page := strings.Join(lines, " | ")
	t.mu.Lock()
	defer t.mu.Unlock()
	if page == t.last {
		return nil
	}
	t.last = page
	_, err := fmt.Fprintf(t.w, "[%s] %s\n", t.label, page)
	return err
}

// Pager spreads pages over the available screens. With fewer screens than
// pages, Next rotates which pages are visible.
type Pager struct {
	mu      sync.Mutex
	screens []Screen
	first   int
}

// NewPager returns a Pager over screens, left to right.
func NewPager(screens ...Screen) *Pager {
	return &Pager{screens: screens}
}

// Next shows the following page on the first screen from the next Show on.
func (p *Pager) Next() {
	p.mu.Lock()
	p.first++
	p.mu.Unlock()
}

// Show puts pages[i] on screen i, shifted by the number of Next calls when
// the pages outnumber the screens.
func (p *Pager) Show(pages [][]string) error {
	if len(pages) == 0 {
		return nil
	}
	p.mu.Lock()
	first := 0
	if len(pages) > len(p.screens) {
		first = p.first % len(pages)
	}
	p.mu.Unlock()
	for i, s := range p.screens {
		if i >= len(pages) {
			break
		}
		if err := s.Show(pages[(first+i)%len(pages)]); err != nil {
			return fmt.Errorf("screen %d: %w", i, err)
		}
	}
	return nil
}

// Screens reports how many screens the pager drives.
func (p *Pager) Screens() int {
	return len(p.screens)
}
