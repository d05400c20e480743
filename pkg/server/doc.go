// Package server implements the HTTP surface for the Prometheus sink mode:
// the /metrics scrape endpoint plus /healthz and /readyz probes.
//
// The server binds its listener explicitly (Listen) before serving so the
// caller can treat a bind failure as fatal, then serves until its context
// is cancelled (Serve). Scrape requests pass through request-ID, panic
// recovery, rate limiting, and Prometheus instrumentation middleware.
package server
