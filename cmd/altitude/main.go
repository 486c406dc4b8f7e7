// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/relabs-tech/badge_l0dables/internal/altitude"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <path/to/BMP085.log> <n>\n"+
		"       n = display the average over n entries\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	p0 := flag.Float64("p0", altitude.StandardPressure, "reference pressure in Pa")
	sentence := flag.String("nmea", "", "GGA sentence giving the altitude of the first log entry")
	gpsPort := flag.String("gps", "", "serial port of a GPS receiver giving the altitude of the first log entry")
	gpsBaud := flag.Uint("gps-baud", 9600, "GPS serial baud rate")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(1)
	}
	path := flag.Arg(0)
	n, err := strconv.Atoi(flag.Arg(1))
	if err != nil || n <= 0 {
		log.Fatalf("n must be a positive integer, got %q", flag.Arg(1))
	}

	reference := *p0
	if *sentence != "" || *gpsPort != "" {
		var alt float64
		if *sentence != "" {
			alt, err = altitude.ParseGGA(*sentence)
		} else {
			alt, err = altitude.ReadGPS(*gpsPort, *gpsBaud)
		}
		if err != nil {
			log.Fatalf("fatal: %v", err)
		}
		reference, err = referenceFromLog(path, alt)
		if err != nil {
			log.Fatalf("fatal: %v", err)
		}
		log.Printf("GPS altitude %.1fm, reference pressure %.0fPa", alt, reference)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
	defer f.Close()

	avgs, err := altitude.Averages(f, n, reference)
	for _, a := range avgs {
		fmt.Printf("%.2f\n", a)
	}
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

// referenceFromLog solves the sea level pressure for which the first
// logged pressure sits at alt metres.
func referenceFromLog(path string, alt float64) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	first, err := altitude.FirstPressure(f)
	if err != nil {
		return 0, err
	}
	return altitude.SeaLevelPressure(float64(first), alt), nil
}
