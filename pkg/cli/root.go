/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/netpeek/netpeek/pkg/docker"
	"github.com/netpeek/netpeek/pkg/exporter"
	"github.com/netpeek/netpeek/pkg/inventory"
	"github.com/netpeek/netpeek/pkg/logging"
	"github.com/netpeek/netpeek/pkg/serializer"
)

const (
	name           = "netpeek"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// rootFlags returns fresh flag instances. Flags hold parse state, so a
// command must never share instances with a previously run command.
func rootFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "networks",
			Aliases: []string{"n"},
			Value:   inventory.DefaultNetworks(),
			Usage:   "Docker networks to inspect (repeatable)",
		},
		&cli.IntFlag{
			Name:    "prometheus",
			Aliases: []string{"p"},
			Usage:   "Run continuously as a Prometheus exporter on the given port",
		},
		&cli.BoolFlag{
			Name:    "influxdb",
			Aliases: []string{"i"},
			Usage: fmt.Sprintf("Run continuously as an InfluxDB exporter (requires %s)",
				strings.Join(exporter.RequiredInfluxEnvVars(), ", ")),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path, local mode only (default: stdout)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"t"},
			Value:   serializer.FormatJSON.String(),
			Usage: fmt.Sprintf("Output format, local mode only (supported values: %s)",
				strings.Join(serializer.SupportedFormats(), ", ")),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Sources: cli.EnvVars("LOG_LEVEL"),
			Usage:   "Log level (debug, info, warn, error)",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Sources: cli.EnvVars("NETPEEK_CONFIG"),
			Usage:   "Config file with flag defaults (JSON or YAML by extension)",
		},
	}
}

// fileConfig mirrors the command flags for file-based configuration.
// Explicit flags always win over file values.
type fileConfig struct {
	Networks   []string `json:"networks" yaml:"networks"`
	Prometheus int      `json:"prometheus" yaml:"prometheus"`
	InfluxDB   bool     `json:"influxdb" yaml:"influxdb"`
	Output     string   `json:"output" yaml:"output"`
	Format     string   `json:"format" yaml:"format"`
	LogLevel   string   `json:"log-level" yaml:"log-level"`
}

// loadFileConfig reads the config file at path. An empty path means no
// file configuration; a path that cannot be read or parsed is a startup
// error, not something to degrade around.
func loadFileConfig(path string) (*fileConfig, error) {
	if path == "" {
		return nil, nil
	}
	cfg, err := serializer.FromFile[fileConfig](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %q: %w", path, err)
	}
	return cfg, nil
}

// settings is the merged runtime configuration: flag values layered over
// file config values layered over flag defaults.
type settings struct {
	networks       []string
	prometheusPort int
	influxDB       bool
	output         string
	format         string
	logLevel       string
}

func resolveSettings(cmd *cli.Command, fc *fileConfig) settings {
	s := settings{
		networks:       cmd.StringSlice("networks"),
		prometheusPort: int(cmd.Int("prometheus")),
		influxDB:       cmd.Bool("influxdb"),
		output:         cmd.String("output"),
		format:         cmd.String("format"),
		logLevel:       cmd.String("log-level"),
	}
	if fc == nil {
		return s
	}

	if !cmd.IsSet("networks") && len(fc.Networks) > 0 {
		s.networks = fc.Networks
	}
	if !cmd.IsSet("prometheus") && fc.Prometheus != 0 {
		s.prometheusPort = fc.Prometheus
	}
	if !cmd.IsSet("influxdb") && fc.InfluxDB {
		s.influxDB = true
	}
	if !cmd.IsSet("output") && fc.Output != "" {
		s.output = fc.Output
	}
	if !cmd.IsSet("format") && fc.Format != "" {
		s.format = fc.Format
	}
	if !cmd.IsSet("log-level") && fc.LogLevel != "" {
		s.logLevel = fc.LogLevel
	}
	return s
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Inspect Docker container network interfaces",
		Description: fmt.Sprintf(`netpeek - Docker container network interface inspector

Version: %s
Commit:  %s
Built:   %s

Resolves the network attachments of running containers on the selected
Docker networks and reports each interface with its positional id,
IP address, and MAC address.

Without mode flags the inventory is printed once and the process exits.
With --prometheus the inventory is republished as gauges on a metrics
endpoint every cycle; with --influxdb each attachment is pushed as a
measurement point.`, version, commit, date),
		Flags:  rootFlags(),
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	fc, err := loadFileConfig(cmd.String("config"))
	if err != nil {
		return err
	}
	set := resolveSettings(cmd, fc)

	logging.SetDefaultStructuredLoggerWithLevel(name, version, set.logLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date)

	cfg, err := set.exporterConfig()
	if err != nil {
		return err
	}

	outFormat := serializer.Format(set.format)
	if outFormat.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", outFormat)
	}

	dc, err := docker.New()
	if err != nil {
		return fmt.Errorf("failed to create docker client: %w", err)
	}
	defer func() {
		if cerr := dc.Close(); cerr != nil {
			slog.Warn("failed to close docker client", "error", cerr)
		}
	}()

	ctrl := &exporter.Controller{
		Resolver:   &inventory.Resolver{API: dc.API()},
		Networks:   set.networks,
		Config:     cfg,
		Version:    version,
		Format:     outFormat,
		OutputPath: set.output,
	}

	if err := ctrl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// exporterConfig maps the merged mode settings onto exactly one sink
// configuration. The continuous modes are mutually exclusive.
func (s settings) exporterConfig() (exporter.Config, error) {
	if s.prometheusPort != 0 && s.influxDB {
		return exporter.Config{}, errors.New("--prometheus and --influxdb are mutually exclusive")
	}

	switch {
	case s.prometheusPort != 0:
		return exporter.NewPrometheusConfig(s.prometheusPort)
	case s.influxDB:
		return exporter.NewInfluxConfigFromEnv()
	default:
		return exporter.NewLocalConfig(), nil
	}
}

// Execute runs the root command. It is called by main.main() and only
// needs to happen once per process.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
