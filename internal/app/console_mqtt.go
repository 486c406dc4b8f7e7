// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/relabs-tech/badge_l0dables/internal/config"
	"github.com/relabs-tech/badge_l0dables/internal/env"
)

// RunConsoleMQTT prints every sample published by the logger.
func RunConsoleMQTT() error {
	cfg := config.Get()
	if cfg.MQTTBroker == "" {
		return fmt.Errorf("MQTT_BROKER is required for the MQTT console")
	}
	client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDConsole)
	if err != nil {
		return err
	}

	var (
		mu  sync.Mutex
		ext *env.Extremes
	)
	err = subscribeSamples(client, cfg.TopicBMP, "console", func(s env.Sample) {
		mu.Lock()
		defer mu.Unlock()
		if ext == nil {
			ext = env.NewExtremes(s)
		} else {
			ext.Observe(s)
		}
		printSample(os.Stdout, s)
	})
	if err != nil {
		return err
	}

	// Wait for Ctrl+C
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("console: shutting down")
	client.Disconnect(250)
	mu.Lock()
	defer mu.Unlock()
	if ext != nil {
		fmt.Printf("[range ] T=%s..%sC  P=%d..%dPa\n",
			formatDeci(ext.MinDeciCelsius), formatDeci(ext.MaxDeciCelsius), ext.MinPascal, ext.MaxPascal)
	}
	return nil
}
