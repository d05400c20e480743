/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package docker

import (
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// API is the subset of the Docker Engine client used by netpeek.
// The narrow interface enables fake implementations in tests.
type API interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
}

// Client is an explicit handle around the Docker Engine API, constructed
// once at startup and passed by reference into the components that need it.
type Client struct {
	api    API
	closer io.Closer
}

// New creates a Client from the environment (DOCKER_HOST and friends),
// negotiating the API version with the daemon.
func New() (*Client, error) {
	c, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &Client{api: c, closer: c}, nil
}

// NewWithAPI wraps an existing API implementation. Intended for tests.
func NewWithAPI(api API) *Client {
	return &Client{api: api}
}

// API returns the underlying Docker Engine API.
func (c *Client) API() API {
	return c.api
}

// Close releases the underlying connection, if any.
func (c *Client) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
