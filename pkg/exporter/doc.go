// Package exporter drives netpeek's export drivers: a one-shot local
// report, a pull-based Prometheus gauge set, and a push-based InfluxDB
// writer.
//
// The Controller holds exactly one sink configuration, selected at startup
// and immutable thereafter, and dispatches to the matching driver. The
// continuous drivers share a fixed-delay loop: each cycle resolves a fresh
// inventory and republishes it, and the next cycle starts a fixed interval
// after the previous one's work completed. Recoverable failures (a failed
// runtime query, a failed point write) are logged and absorbed by the
// cycle; the loop only ends when its context is cancelled.
package exporter
