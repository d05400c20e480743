/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package exporter

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/netpeek/netpeek/pkg/server"
)

// runPrometheus serves the pull endpoint and drives the publish loop until
// ctx is cancelled. The listener is bound before the loop starts; a bind
// failure is returned to the caller and is fatal, since the sink is
// unusable without the endpoint.
func (c *Controller) runPrometheus(ctx context.Context) error {
	cfg := server.DefaultConfig()
	cfg.Name = toolName
	cfg.Version = c.Version
	cfg.Port = c.Config.Prometheus.Port

	srv := server.New(cfg)
	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(gctx, ln)
	})

	srv.SetReady(true)
	notifySystemd()

	g.Go(func() error {
		return c.runLoop(gctx, c.publishGaugeCycle)
	})

	return g.Wait()
}

// publishGaugeCycle republishes the gauge set from a fresh inventory.
// The vector is cleared first so series for containers or networks that
// disappeared since the previous cycle vanish instead of holding their
// last value. A failed resolve therefore leaves the endpoint empty for
// this cycle, which is the intended reading of "nothing to report".
func (c *Controller) publishGaugeCycle(ctx context.Context) {
	containerNetworkInfo.Reset()

	inv := c.Resolver.Resolve(ctx, c.Networks)
	for containerName, networks := range inv {
		for networkName, att := range networks {
			// Absent IP/MAC stay as empty-string label values to keep
			// the label set stable across samples.
			containerNetworkInfo.WithLabelValues(
				containerName,
				networkName,
				att.EthInterface,
				att.IPAddress,
				att.MacAddress,
			).Set(1)
		}
	}

	observeCycle(inv.Attachments())
}
