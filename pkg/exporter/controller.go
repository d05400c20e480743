/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package exporter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/google/uuid"

	"github.com/netpeek/netpeek/pkg/inventory"
	"github.com/netpeek/netpeek/pkg/serializer"
)

const (
	toolName = "netpeek"

	// measurementName is the metric/measurement identity shared by the
	// Prometheus and InfluxDB sinks.
	measurementName = "container_network_interface"

	// DefaultInterval is the fixed delay between export cycles.
	DefaultInterval = 15 * time.Second
)

// Controller owns the process lifetime for exactly one sink mode: a single
// resolve for local mode, or a fixed-delay resolve-then-publish loop for the
// continuous sinks. Construct it once at startup; it is not safe for reuse
// across concurrent Run calls.
type Controller struct {
	Resolver *inventory.Resolver
	Networks []string
	Config   Config

	// Version is reported in local output and on the metrics endpoint.
	Version string

	// Interval overrides the cycle cadence. Zero means DefaultInterval.
	Interval time.Duration

	// Format and OutputPath shape local-mode output. Zero values mean
	// JSON to Out.
	Format     serializer.Format
	OutputPath string

	// Out is the local-mode destination, defaulting to stdout.
	Out io.Writer

	runID string
}

// Run dispatches to the driver selected by the configuration and blocks
// until it finishes: a single cycle for local mode, or until ctx is
// cancelled for the continuous sinks.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if c.Resolver == nil {
		return fmt.Errorf("resolver is not configured")
	}
	if len(c.Networks) == 0 {
		c.Networks = inventory.DefaultNetworks()
	}
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	c.runID = uuid.New().String()

	slog.Info("starting exporter",
		"mode", c.Config.Mode,
		"networks", c.Networks,
		"runID", c.runID)

	switch c.Config.Mode {
	case ModeLocal:
		return c.runOnce(ctx)
	case ModePrometheus:
		return c.runPrometheus(ctx)
	case ModeInfluxDB:
		return c.runInflux(ctx)
	default:
		return fmt.Errorf("unknown exporter mode: %q", c.Config.Mode)
	}
}

// runLoop drives cycle on a fixed-delay cadence: the next cycle starts
// Interval after the previous one's work completed, so a slow publish delays
// the schedule instead of causing a catch-up burst. Cancellation is checked
// at the top of every cycle, which lets tests bound the loop deterministically.
func (c *Controller) runLoop(ctx context.Context, cycle func(context.Context)) error {
	for {
		if err := ctx.Err(); err != nil {
			slog.Info("export loop stopping", "runID", c.runID, "reason", err)
			return err
		}

		start := time.Now()
		cycle(ctx)
		cycleDuration.Observe(time.Since(start).Seconds())

		select {
		case <-ctx.Done():
			slog.Info("export loop stopping", "runID", c.runID, "reason", ctx.Err())
			return ctx.Err()
		case <-time.After(c.Interval):
		}
	}
}

// notifySystemd signals service readiness when running under systemd.
// Outside systemd this is a no-op.
func notifySystemd() {
	sent, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		slog.Warn("systemd readiness notification failed", "error", err)
		return
	}
	if sent {
		slog.Debug("notified systemd of readiness")
	}
}
