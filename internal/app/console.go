// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/relabs-tech/badge_l0dables/internal/config"
	"github.com/relabs-tech/badge_l0dables/internal/env"
	"github.com/relabs-tech/badge_l0dables/internal/sensors"
)

// RunConsole prints samples from the configured sensor to stdout.
func RunConsole() error {
	cfg := config.Get()
	src, err := sensors.Open(cfg)
	if err != nil {
		return err
	}
	defer src.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return pollSamples(ctx, src, time.Duration(cfg.BMPRefreshInterval)*time.Millisecond, func(s env.Sample) error {
		printSample(os.Stdout, s)
		return nil
	})
}

// RunProducer publishes samples from the configured sensor on MQTT without
// any display or buttons.
func RunProducer() error {
	cfg := config.Get()
	if cfg.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required for the producer")
	}
	src, err := sensors.Open(cfg)
	if err != nil {
		return err
	}
	defer src.Close()

	client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDLogger)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)
	pub := &mqttPublisher{client: client, topic: cfg.TopicBMP}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return pollSamples(ctx, src, time.Duration(cfg.BMPRefreshInterval)*time.Millisecond, func(s env.Sample) error {
		if err := pub.Publish(s); err != nil {
			log.Printf("producer: publish error: %v", err)
		}
		return nil
	})
}

// pollSamples reads src on every tick and hands each sample to fn.
func pollSamples(ctx context.Context, src sensors.EnvSource, interval time.Duration, fn func(env.Sample) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		s, err := src.Next()
		if err != nil {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func printSample(w io.Writer, s env.Sample) {
	fmt.Fprintf(w, "[%-6s] %s  T=%5.1fC  P=%6dPa (%7.2fhPa)\n",
		s.Source, s.Time.Format("15:04:05.000"), s.Celsius(), s.Pascal, s.HPa())
}
