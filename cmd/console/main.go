// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"flag"
	"log"

	"github.com/relabs-tech/badge_l0dables/internal/app"
	"github.com/relabs-tech/badge_l0dables/internal/config"
)

func main() {
	configPath := flag.String("config", "badge_config.txt", "path to the configuration file")
	flag.Parse()

	log.Println("starting BMP085 console (direct sensor read)")

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunConsole(); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
