/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package exporter

import (
	"context"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"

	"github.com/netpeek/netpeek/pkg/docker"
	"github.com/netpeek/netpeek/pkg/inventory"
)

// fakeDockerAPI implements docker.API with a pluggable list function.
type fakeDockerAPI struct {
	listFn func() ([]container.Summary, error)
}

func (f *fakeDockerAPI) ContainerList(_ context.Context, _ container.ListOptions) ([]container.Summary, error) {
	return f.listFn()
}

func newResolver(listFn func() ([]container.Summary, error)) *inventory.Resolver {
	dc := docker.NewWithAPI(&fakeDockerAPI{listFn: listFn})
	return &inventory.Resolver{API: dc.API()}
}

func runningContainer(name, image string, networks map[string]*network.EndpointSettings) container.Summary {
	return container.Summary{
		ID:              "0123456789abcdef",
		Names:           []string{"/" + name},
		Image:           image,
		NetworkSettings: &container.NetworkSettingsSummary{Networks: networks},
	}
}

func bridgeOnly(name, ip, mac string) container.Summary {
	return runningContainer(name, "busybox", map[string]*network.EndpointSettings{
		"bridge": {IPAddress: ip, MacAddress: mac},
	})
}
