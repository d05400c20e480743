/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package exporter

import (
	"context"
	"errors"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePointWriter records written points and fails on selected attempts.
type fakePointWriter struct {
	calls  int
	failOn map[int]bool // 1-based attempt numbers that fail
	points []*write.Point
}

func (f *fakePointWriter) WritePoint(_ context.Context, point ...*write.Point) error {
	f.calls++
	if f.failOn[f.calls] {
		return errors.New("write failed")
	}
	f.points = append(f.points, point...)
	return nil
}

func threeAttachmentResolver() func() ([]container.Summary, error) {
	return func() ([]container.Summary, error) {
		return []container.Summary{
			runningContainer("web", "nginx", map[string]*network.EndpointSettings{
				"bridge": {IPAddress: "172.17.0.2", MacAddress: "AA:BB"},
				"host":   {IPAddress: "", MacAddress: ""},
			}),
			bridgeOnly("db", "172.17.0.3", "CC:DD"),
		}, nil
	}
}

func TestPushCycleWritesOnePointPerAttachment(t *testing.T) {
	c := &Controller{
		Resolver: newResolver(threeAttachmentResolver()),
		Networks: []string{"bridge", "host"},
	}
	w := &fakePointWriter{}

	c.pushCycle(t.Context(), w)

	require.Equal(t, 3, w.calls)
	require.Len(t, w.points, 3)
	for _, p := range w.points {
		assert.Equal(t, measurementName, p.Name())
		tags := map[string]string{}
		for _, tag := range p.TagList() {
			tags[tag.Key] = tag.Value
		}
		assert.Contains(t, tags, "container_name")
		assert.Contains(t, tags, "network_name")
		assert.Contains(t, tags, "eth_interface")

		fields := map[string]any{}
		for _, f := range p.FieldList() {
			fields[f.Key] = f.Value
		}
		assert.Contains(t, fields, "ip_address")
		assert.Contains(t, fields, "mac_address")
	}
}

func TestPushCycleContinuesAfterWriteFailure(t *testing.T) {
	c := &Controller{
		Resolver: newResolver(threeAttachmentResolver()),
		Networks: []string{"bridge", "host"},
	}
	w := &fakePointWriter{failOn: map[int]bool{1: true}}

	c.pushCycle(t.Context(), w)

	// one failed write must not prevent the remaining points
	assert.Equal(t, 3, w.calls)
	assert.Len(t, w.points, 2)
}

func TestPushCycleLaterCyclesSurviveEarlierFailures(t *testing.T) {
	c := &Controller{
		Resolver: newResolver(threeAttachmentResolver()),
		Networks: []string{"bridge", "host"},
	}
	w := &fakePointWriter{failOn: map[int]bool{1: true, 2: true, 3: true}}

	c.pushCycle(t.Context(), w)
	require.Equal(t, 3, w.calls)

	c.pushCycle(t.Context(), w)
	assert.Equal(t, 6, w.calls)
	assert.Len(t, w.points, 3)
}

func TestPushCycleEmptyInventoryWritesNothing(t *testing.T) {
	c := &Controller{
		Resolver: newResolver(func() ([]container.Summary, error) {
			return nil, errors.New("daemon unavailable")
		}),
		Networks: []string{"bridge"},
	}
	w := &fakePointWriter{}

	c.pushCycle(t.Context(), w)
	assert.Zero(t, w.calls)
}
