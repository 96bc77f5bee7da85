// Package config loads runtime configuration from the environment, with an
// optional .env file picked up from the working directory.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ForecastHorizon is fixed at three periods.
const ForecastHorizon = 3

// Config is the runtime configuration surface.
type Config struct {
	ListenAddr     string
	HotspotCap     int
	FrequencyCap   int
	ClosedSynonyms []string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ListenAddr:     ":8085",
		HotspotCap:     15,
		FrequencyCap:   15,
		ClosedSynonyms: []string{"close"},
	}
}

// Load reads COMPLAINTSCOPE_* environment variables over the defaults.
// A missing .env file is not an error.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("[Config] loaded .env file")
	}

	cfg := Default()
	if addr := os.Getenv("COMPLAINTSCOPE_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if n := intEnv("COMPLAINTSCOPE_HOTSPOT_CAP"); n > 0 {
		cfg.HotspotCap = n
	}
	if n := intEnv("COMPLAINTSCOPE_FREQUENCY_CAP"); n > 0 {
		cfg.FrequencyCap = n
	}
	if syns := os.Getenv("COMPLAINTSCOPE_CLOSED_SYNONYMS"); syns != "" {
		cfg.ClosedSynonyms = nil
		for _, s := range strings.Split(syns, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.ClosedSynonyms = append(cfg.ClosedSynonyms, s)
			}
		}
	}
	return cfg
}

func intEnv(name string) int {
	raw := os.Getenv(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[Config] ignoring %s=%q: %v", name, raw, err)
		return 0
	}
	return n
}
