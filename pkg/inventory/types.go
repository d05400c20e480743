/*
Copyright © 2025 netpeek authors
SPDX-License-Identifier: Apache-2.0
*/
package inventory

import "time"

// DefaultNetworks returns the network allow-list used when the caller
// does not select networks explicitly.
func DefaultNetworks() []string {
	return []string{"bridge", "host"}
}

// Attachment describes a single container's membership in one named network.
// The eth interface id is positional within the container's retained
// networks for the cycle in which it was resolved; it carries no stability
// guarantee across cycles.
type Attachment struct {
	EthInterface string `json:"eth_interface" yaml:"eth_interface"`
	IPAddress    string `json:"ip_address" yaml:"ip_address"`
	MacAddress   string `json:"mac_address" yaml:"mac_address"`
}

// Inventory maps container name to network name to attachment.
// It is rebuilt from scratch on every resolve; no identity is carried
// across calls.
type Inventory map[string]map[string]Attachment

// Empty reports whether the inventory contains no attachments.
func (inv Inventory) Empty() bool {
	return len(inv) == 0
}

// Attachments returns the total number of attachments across all containers.
func (inv Inventory) Attachments() int {
	n := 0
	for _, nets := range inv {
		n += len(nets)
	}
	return n
}

// Report wraps an Inventory with run metadata for one-shot output.
type Report struct {
	Tool        string    `json:"tool,omitempty" yaml:"tool,omitempty"`
	Version     string    `json:"version,omitempty" yaml:"version,omitempty"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// Networks is the allow-list the inventory was resolved against.
	Networks []string `json:"networks" yaml:"networks"`

	// Images maps container name to its normalized image reference.
	Images map[string]string `json:"images,omitempty" yaml:"images,omitempty"`

	Containers Inventory `json:"containers" yaml:"containers"`
}
