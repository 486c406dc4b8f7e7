// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/relabs-tech/badge_l0dables/internal/config"
	"github.com/relabs-tech/badge_l0dables/internal/jukebox"
)

// RunJukebox shows the song menu and plays on the speaker pin until LEFT
// or Ctrl+C.
func RunJukebox() error {
	cfg := config.Get()

	toner, err := jukebox.OpenPinToner(cfg.SpeakerPin)
	if err != nil {
		return err
	}
	defer toner.Halt()
	log.Printf("jukebox: speaker on %s", cfg.SpeakerPin)

	screens, bus, err := openScreens(cfg)
	if err != nil {
		return err
	}
	defer bus.Close()

	in, err := openInput(cfg)
	if err != nil {
		return err
	}
	defer in.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = jukebox.NewPlayer(toner, in, screens).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
