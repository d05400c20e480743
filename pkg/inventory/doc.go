// Package inventory resolves which running containers are attached to a
// configured set of Docker networks.
//
// The Resolver produces an immutable per-cycle Inventory snapshot mapping
// container name to network name to attachment (synthetic eth interface id,
// IP address, MAC address). Each attachment's eth id is assigned
// positionally over the container's retained networks for that cycle only.
//
// A failed runtime query is logged and resolves to an empty Inventory so a
// continuous export loop can treat it as "nothing to report this cycle"
// rather than a fatal condition.
package inventory
