// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package jukebox

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/relabs-tech/badge_l0dables/internal/input"
)

const (
	menuPause = 200 * time.Millisecond
	keyPoll   = 100 * time.Millisecond
)

var menuPages = [][]string{
	{" .:JukeBox:.", "UP Nyan Cat", "DOWN Tetris", "PRESS Rick A."},
	{"LEFT Exit", "", "  by ikarus"},
}

// Run shows the song menu until LEFT is pressed. UP, DOWN and ENTER pick a
// song; RIGHT flips the menu page on a single screen.
func (p *Player) Run(ctx context.Context) error {
	if err := p.sleep(ctx, menuPause); err != nil {
		return err
	}
	key := input.None
	for {
		var song *Song
		switch key {
		case input.Up:
			s := NyanCat(1)
			song = &s
		case input.Down:
			s := Tetris()
			song = &s
		case input.Enter:
			s := Rickroll()
			song = &s
		case input.Right:
			p.screen.Next()
		}
		if song != nil {
			log.Printf("jukebox: playing %s", song.Name)
			err := p.Play(ctx, *song)
			switch {
			case errors.Is(err, ErrStopped):
				log.Printf("jukebox: %s stopped", song.Name)
			case err != nil:
				return err
			}
		}
		if err := p.toner.Silence(); err != nil {
			return err
		}
		if err := p.screen.Show(menuPages); err != nil {
			return err
		}
		if key != input.None {
			if err := p.sleep(ctx, menuPause); err != nil {
				return err
			}
		}
		for key = input.None; key == input.None; key = p.in.Wait(keyPoll) {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if key == input.Left {
			return nil
		}
	}
}
