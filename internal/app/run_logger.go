// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/relabs-tech/badge_l0dables/internal/config"
	"github.com/relabs-tech/badge_l0dables/internal/env"
	"github.com/relabs-tech/badge_l0dables/internal/sensors"
)

// RunLogger runs the BMP085 monitor/logger until LEFT or Ctrl+C.
func RunLogger() error {
	cfg := config.Get()

	src, err := sensors.Open(cfg)
	if err != nil {
		return err
	}
	defer src.Close()

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

	interval := time.Duration(cfg.BMPRefreshInterval) * time.Millisecond
	session := NewLoggerSession(src, screens, in, interval)

	if cfg.LogEnabled {
		l, err := env.CreateLog(cfg.LogFile)
		if err != nil {
			// Sampling goes on without a log, as after a failed append.
			log.Printf("logger: %v", err)
			if serr := screens.Show([][]string{{"File Error", "(f_open)"}}); serr != nil {
				log.Printf("logger: display: %v", serr)
			}
			time.Sleep(fileErrorDisplay)
		} else {
			log.Printf("logger: logging to %s", cfg.LogFile)
			session.EnableLog(l)
		}
	}

	if cfg.MQTTBroker != "" {
		// The badge keeps sampling without a broker, as it does without a log.
		client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDLogger)
		if err != nil {
			log.Printf("logger: mqtt disabled: %v", err)
		} else {
			defer client.Disconnect(250)
			session.SetPublisher(&mqttPublisher{client: client, topic: cfg.TopicBMP})
			log.Printf("logger: publishing samples on %s", cfg.TopicBMP)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("logger: sampling every %s", interval)
	if err := session.Run(ctx); err != nil {
		return err
	}
	if e := session.Extremes(); e != nil {
		log.Printf("logger: session done, temp %s..%sC, pressure %d..%dPa",
			formatDeci(e.MinDeciCelsius), formatDeci(e.MaxDeciCelsius), e.MinPascal, e.MaxPascal)
	}
	return nil
}
