/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package exporter

import (
	"context"
	"fmt"

	"github.com/netpeek/netpeek/pkg/serializer"
)

// emptyNotice is the exact line written when no container is attached to
// any of the allowed networks.
const emptyNotice = "No containers found in the specified networks."

// runOnce resolves the inventory a single time and writes it as a
// structured report. An empty inventory produces the fixed notice line
// instead of an empty document.
func (c *Controller) runOnce(ctx context.Context) error {
	rep := c.Resolver.Report(ctx, c.Networks)
	rep.Tool = toolName
	rep.Version = c.Version

	if rep.Containers.Empty() {
		_, err := fmt.Fprintln(c.Out, emptyNotice)
		return err
	}

	format := c.Format
	if format.IsUnknown() {
		format = serializer.FormatJSON
	}

	if c.OutputPath != "" {
		w := serializer.NewFileWriterOrStdout(format, c.OutputPath)
		defer w.Close()
		return w.Serialize(ctx, rep)
	}

	return serializer.NewWriter(format, c.Out).Serialize(ctx, rep)
}
