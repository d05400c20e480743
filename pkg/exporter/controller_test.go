/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package exporter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRejectsInvalidConfig(t *testing.T) {
	c := &Controller{
		Resolver: newResolver(func() ([]container.Summary, error) { return nil, nil }),
		Config:   Config{Mode: Mode("bogus")},
	}

	err := c.Run(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown exporter mode")
}

func TestRunRejectsMissingResolver(t *testing.T) {
	c := &Controller{Config: NewLocalConfig()}

	err := c.Run(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolver")
}

func TestRunLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Controller{Interval: time.Millisecond}
	cycles := 0
	err := c.runLoop(ctx, func(context.Context) {
		cycles++
		if cycles == 3 {
			cancel()
		}
	})

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 3, cycles)
}

func TestRunLoopChecksCancellationBeforeFirstCycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Controller{Interval: time.Millisecond}
	cycles := 0
	err := c.runLoop(ctx, func(context.Context) { cycles++ })

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, cycles)
}

func TestRunLoopFixedDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Controller{Interval: 20 * time.Millisecond}
	var stamps []time.Time
	_ = c.runLoop(ctx, func(context.Context) {
		stamps = append(stamps, time.Now())
		// Simulate slow publish work; the delay applies after it completes.
		time.Sleep(10 * time.Millisecond)
		if len(stamps) == 2 {
			cancel()
		}
	})

	require.Len(t, stamps, 2)
	gap := stamps[1].Sub(stamps[0])
	assert.GreaterOrEqual(t, gap, 30*time.Millisecond, "next cycle should start work+interval after the previous one")
}
