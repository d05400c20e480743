// Package cli implements the command-line interface for the netpeek tool.
//
// # Overview
//
// The netpeek CLI inspects the network attachments of running Docker
// containers on a set of allowed networks and exports the result through
// one of three sinks: a one-shot local report, a Prometheus metrics
// endpoint, or an InfluxDB write API.
//
// # Modes
//
// Local (default) - resolve once and print:
//
//	netpeek [--networks bridge,host] [--output FILE] [--format json|yaml|table]
//
// Prometheus - serve gauges continuously:
//
//	netpeek --prometheus 9100
//
// Serves container_network_interface gauges on /metrics, republished every
// cycle so stale series disappear as containers come and go.
//
// InfluxDB - push points continuously:
//
//	INFLUXDB_URL=... INFLUXDB_TOKEN=... INFLUXDB_ORG=... INFLUXDB_BUCKET=... \
//	  netpeek --influxdb
//
// Writes one container_network_interface point per attachment each cycle.
// All four environment variables are required; the process refuses to start
// without them.
//
// # Flags
//
//	--networks, -n    Docker networks to inspect (default: bridge, host)
//	--prometheus, -p  Run as Prometheus exporter on the given port
//	--influxdb, -i    Run as InfluxDB exporter
//	--output, -o      Output file path, local mode only (default: stdout)
//	--format, -t      Output format, local mode only: json, yaml, table
//	--log-level       Log level: debug, info, warn, error
//	--config, -c      Config file with flag defaults (JSON or YAML)
//
// The two continuous modes are mutually exclusive. A config file supplies
// defaults for any flag not set explicitly; flags on the command line win.
// An unreadable or unparseable config file is a startup error.
//
// # Exit Codes
//
//	0  Success, including graceful shutdown on SIGINT/SIGTERM
//	1  Startup or configuration error
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/netpeek/netpeek/pkg/cli.version=1.0.0'"
package cli
