/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package exporter

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// pointWriter is the subset of the InfluxDB blocking write API the push
// sink uses. The narrow interface enables fake implementations in tests.
type pointWriter interface {
	WritePoint(ctx context.Context, point ...*write.Point) error
}

// runInflux establishes one write client at startup, reused across cycles,
// and drives the push loop until ctx is cancelled.
func (c *Controller) runInflux(ctx context.Context) error {
	cfg := c.Config.Influx

	client := influxdb2.NewClient(cfg.URL, cfg.Token)
	defer client.Close()
	writer := client.WriteAPIBlocking(cfg.Org, cfg.Bucket)

	slog.Info("influxdb exporter started",
		"url", cfg.URL,
		"org", cfg.Org,
		"bucket", cfg.Bucket,
		"runID", c.runID)
	notifySystemd()

	return c.runLoop(ctx, func(ctx context.Context) {
		c.pushCycle(ctx, writer)
	})
}

// pushCycle writes one point per attachment, synchronously, point by point.
// A failed write loses that one sample: it is logged and counted, and the
// cycle moves on to the next point. Losing a sample is acceptable; killing
// the exporter is not.
func (c *Controller) pushCycle(ctx context.Context, w pointWriter) {
	inv := c.Resolver.Resolve(ctx, c.Networks)

	for containerName, networks := range inv {
		for networkName, att := range networks {
			point := influxdb2.NewPoint(
				measurementName,
				map[string]string{
					"container_name": containerName,
					"network_name":   networkName,
					"eth_interface":  att.EthInterface,
				},
				map[string]any{
					"ip_address":  att.IPAddress,
					"mac_address": att.MacAddress,
				},
				time.Now(),
			)

			if err := w.WritePoint(ctx, point); err != nil {
				influxWriteErrors.Inc()
				slog.Error("failed to write point",
					"error", err,
					"container", containerName,
					"network", networkName)
				continue
			}
			influxPointsWritten.Inc()
		}
	}

	observeCycle(inv.Attachments())
}
