/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package exporter

import (
	"fmt"
	"os"
	"strings"
)

// Mode identifies the sink an exporter run publishes to.
type Mode string

const (
	// ModeLocal resolves once and writes a report to stdout.
	ModeLocal Mode = "local"
	// ModePrometheus serves a pull-based gauge set over HTTP.
	ModePrometheus Mode = "prometheus"
	// ModeInfluxDB pushes points to an InfluxDB write endpoint.
	ModeInfluxDB Mode = "influxdb"
)

// Required environment variables for the InfluxDB sink.
const (
	EnvInfluxURL    = "INFLUXDB_URL"
	EnvInfluxToken  = "INFLUXDB_TOKEN"
	EnvInfluxOrg    = "INFLUXDB_ORG"
	EnvInfluxBucket = "INFLUXDB_BUCKET"
)

// RequiredInfluxEnvVars returns the environment variables the InfluxDB
// sink requires, in the order they are reported when missing.
func RequiredInfluxEnvVars() []string {
	return []string{EnvInfluxURL, EnvInfluxToken, EnvInfluxOrg, EnvInfluxBucket}
}

// PrometheusConfig carries the settings the Prometheus sink needs.
type PrometheusConfig struct {
	Port int
}

// InfluxConfig carries the settings the InfluxDB sink needs.
type InfluxConfig struct {
	URL    string
	Token  string
	Org    string
	Bucket string
}

// Config is a closed tagged variant over the sink modes: exactly one mode is
// active per process run, selected at startup and immutable thereafter. Only
// the field matching Mode is meaningful; the constructors below are the only
// supported way to build one.
type Config struct {
	Mode       Mode
	Prometheus PrometheusConfig
	Influx     InfluxConfig
}

// NewLocalConfig returns a configuration for one-shot local output.
func NewLocalConfig() Config {
	return Config{Mode: ModeLocal}
}

// NewPrometheusConfig returns a configuration for the Prometheus sink
// listening on the given port.
func NewPrometheusConfig(port int) (Config, error) {
	if port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("invalid prometheus port: %d", port)
	}
	return Config{
		Mode:       ModePrometheus,
		Prometheus: PrometheusConfig{Port: port},
	}, nil
}

// NewInfluxConfigFromEnv reads the InfluxDB sink configuration from the
// environment. All four variables are required; the returned error names
// every missing one so operators can fix the configuration in a single pass.
func NewInfluxConfigFromEnv() (Config, error) {
	cfg := InfluxConfig{
		URL:    os.Getenv(EnvInfluxURL),
		Token:  os.Getenv(EnvInfluxToken),
		Org:    os.Getenv(EnvInfluxOrg),
		Bucket: os.Getenv(EnvInfluxBucket),
	}

	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{EnvInfluxURL, cfg.URL},
		{EnvInfluxToken, cfg.Token},
		{EnvInfluxOrg, cfg.Org},
		{EnvInfluxBucket, cfg.Bucket},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return Config{Mode: ModeInfluxDB, Influx: cfg}, nil
}

// Validate checks that the configuration names a known mode with the fields
// that mode requires.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeLocal:
		return nil
	case ModePrometheus:
		if c.Prometheus.Port < 1 || c.Prometheus.Port > 65535 {
			return fmt.Errorf("invalid prometheus port: %d", c.Prometheus.Port)
		}
		return nil
	case ModeInfluxDB:
		if c.Influx.URL == "" || c.Influx.Token == "" || c.Influx.Org == "" || c.Influx.Bucket == "" {
			return fmt.Errorf("incomplete influxdb configuration")
		}
		return nil
	default:
		return fmt.Errorf("unknown exporter mode: %q", c.Mode)
	}
}
