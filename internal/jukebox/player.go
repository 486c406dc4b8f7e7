// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package jukebox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/relabs-tech/badge_l0dables/internal/input"
)

// ErrStopped is returned by Play when LEFT cancels the song.
var ErrStopped = errors.New("jukebox: stopped")

// Pages is where the player shows its status.
type Pages interface {
	Show(pages [][]string) error
	Next()
}

// Player plays songs step by step on a Toner.
type Player struct {
	toner  Toner
	in     input.Source
	screen Pages
	sleep  func(context.Context, time.Duration) error
}

// NewPlayer returns a player reading LEFT from in and showing each step on
// screen.
func NewPlayer(toner Toner, in input.Source, screen Pages) *Player {
	return &Player{toner: toner, in: in, screen: screen, sleep: sleepCtx}
}

// Play sounds every step of song. LEFT is checked before each step.
func (p *Player) Play(ctx context.Context, song Song) error {
	for i, st := range song.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.in.Poll() == input.Left {
			return ErrStopped
		}
		d := song.Duration(i)
		if err := p.screen.Show([][]string{stepLines(st, d)}); err != nil {
			return fmt.Errorf("jukebox: display: %w", err)
		}
		if st.Rest() {
			if err := p.sleep(ctx, d); err != nil {
				return err
			}
			continue
		}
		if err := p.toner.Tone(st.Note); err != nil {
			return fmt.Errorf("jukebox: tone %dHz: %w", st.Note, err)
		}
		err := p.sleep(ctx, d)
		if serr := p.toner.Silence(); serr != nil && err == nil {
			err = fmt.Errorf("jukebox: silence: %w", serr)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func stepLines(st Step, d time.Duration) []string {
	ms := fmt.Sprintf("  %dms", d.Milliseconds())
	if st.Rest() {
		return []string{"Rest:", ms}
	}
	return []string{"Beep:", fmt.Sprintf("  %dHz", st.Note), ms}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
