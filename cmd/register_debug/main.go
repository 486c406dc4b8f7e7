// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"flag"
	"log"

	"github.com/relabs-tech/badge_l0dables/internal/app"
	"github.com/relabs-tech/badge_l0dables/internal/config"
	"github.com/relabs-tech/badge_l0dables/internal/sensors"
)

func main() {
	configPath := flag.String("config", "badge_config.txt", "path to the configuration file")
	port := flag.Int("port", 8081, "HTTP port")
	flag.Parse()

	log.Println("starting BMP085 register debug tool (standalone)")

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	bmp, err := sensors.OpenBMP085(config.Get())
	if err != nil {
		log.Fatalf("failed to open BMP085: %v", err)
	}
	defer bmp.Close()

	cal := bmp.Dev().Calibration()
	log.Printf("calibration: %+v", cal)
	log.Printf("Open http://localhost:%d in your browser", *port)

	if err := app.RunRegisterDebug(bmp.Dev(), *port); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
