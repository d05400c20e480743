/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package exporter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// containerNetworkInfo is the exported gauge set: one series valued 1
	// per container network attachment, fully reset each cycle so series
	// for departed containers disappear rather than linger.
	containerNetworkInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "container_network_interface",
			Help: "Container network interface information",
		},
		[]string{"container_name", "network_name", "eth_interface", "ip_address", "mac_address"},
	)

	// Operational self-metrics
	cycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netpeek_cycle_duration_seconds",
			Help:    "Time taken by one resolve-then-publish cycle",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15},
		},
	)

	cyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netpeek_cycles_total",
			Help: "Total number of export cycles",
		},
		[]string{"status"}, // ok or empty
	)

	inventoryAttachments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "netpeek_inventory_attachments",
			Help: "Number of network attachments in the last resolved inventory",
		},
	)

	influxPointsWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netpeek_influx_points_written_total",
			Help: "Total number of points successfully written to InfluxDB",
		},
	)

	influxWriteErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netpeek_influx_write_errors_total",
			Help: "Total number of failed InfluxDB point writes",
		},
	)
)

func observeCycle(attachments int) {
	inventoryAttachments.Set(float64(attachments))
	if attachments == 0 {
		cyclesTotal.WithLabelValues("empty").Inc()
		return
	}
	cyclesTotal.WithLabelValues("ok").Inc()
}
