/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/distribution/reference"
	"github.com/docker/docker/api/types/container"

	"github.com/netpeek/netpeek/pkg/docker"
)

// Resolver derives the per-container network attachment inventory from the
// Docker Engine API.
type Resolver struct {
	API docker.API
}

// Resolve lists the currently running containers and returns their
// attachments to the allowed networks. Containers with no matching network
// are omitted. A runtime query failure is logged and yields an empty
// Inventory; it is never propagated, so callers treat the cycle as
// "nothing to report".
func (r *Resolver) Resolve(ctx context.Context, allowed []string) Inventory {
	summaries, err := r.list(ctx)
	if err != nil {
		slog.Error("failed to list containers", "error", err)
		return Inventory{}
	}
	return buildInventory(summaries, allowed)
}

// Report resolves the inventory and wraps it with run metadata, including
// the normalized image reference per retained container. Used by the
// one-shot output mode; the continuous sinks consume Resolve directly.
func (r *Resolver) Report(ctx context.Context, allowed []string) *Report {
	rep := &Report{
		GeneratedAt: time.Now().UTC(),
		Networks:    allowed,
		Containers:  Inventory{},
	}

	summaries, err := r.list(ctx)
	if err != nil {
		slog.Error("failed to list containers", "error", err)
		return rep
	}

	rep.Containers = buildInventory(summaries, allowed)
	rep.Images = make(map[string]string, len(rep.Containers))
	for _, c := range summaries {
		name := containerName(c)
		if _, ok := rep.Containers[name]; !ok {
			continue
		}
		rep.Images[name] = normalizeImage(c.Image)
	}
	return rep
}

func (r *Resolver) list(ctx context.Context) ([]container.Summary, error) {
	if r.API == nil {
		return nil, fmt.Errorf("docker API is not configured")
	}
	summaries, err := r.API.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("container list: %w", err)
	}
	slog.Debug("listed running containers", "count", len(summaries))
	return summaries, nil
}

// buildInventory filters each container's network attachments by the
// allow-list and assigns eth interface ids positionally over the retained
// set, in the iteration order the runtime query produced. The ordering is
// whatever the daemon reported for this call; ids can differ between cycles.
func buildInventory(summaries []container.Summary, allowed []string) Inventory {
	allowSet := make(map[string]struct{}, len(allowed))
	for _, n := range allowed {
		allowSet[n] = struct{}{}
	}

	inv := make(Inventory)
	for _, c := range summaries {
		if c.NetworkSettings == nil {
			continue
		}

		var nets map[string]Attachment
		idx := 0
		for netName, ep := range c.NetworkSettings.Networks {
			if _, ok := allowSet[netName]; !ok {
				continue
			}
			att := Attachment{
				EthInterface: fmt.Sprintf("eth%d", idx),
			}
			if ep != nil {
				att.IPAddress = ep.IPAddress
				att.MacAddress = ep.MacAddress
			}
			if nets == nil {
				nets = make(map[string]Attachment)
			}
			nets[netName] = att
			idx++
		}

		if len(nets) > 0 {
			inv[containerName(c)] = nets
		}
	}
	return inv
}

// containerName returns the container's primary name without the leading
// slash the API reports, falling back to the short container ID.
func containerName(c container.Summary) string {
	for _, n := range c.Names {
		if trimmed := strings.TrimPrefix(n, "/"); trimmed != "" {
			return trimmed
		}
	}
	if len(c.ID) >= 12 {
		return c.ID[:12]
	}
	return c.ID
}

// normalizeImage renders an image reference in its familiar form
// (e.g. "nginx:latest" rather than "docker.io/library/nginx:latest").
// Unparseable references are returned as reported.
func normalizeImage(image string) string {
	named, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return image
	}
	return reference.FamiliarString(reference.TagNameOnly(named))
}
