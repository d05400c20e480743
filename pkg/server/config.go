/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"time"

	"golang.org/x/time/rate"
)

// Config holds metrics server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Listen address
	Address string
	Port    int

	// Rate limiting configuration for the scrape endpoint
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns sensible defaults for a scrape endpoint: generous
// rate limits (a scraper polls, it does not flood) and short timeouts.
func DefaultConfig() *Config {
	return &Config{
		Name:            "netpeek",
		Version:         "undefined",
		Address:         "",
		Port:            9100,
		RateLimit:       50,
		RateLimitBurst:  100,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}
