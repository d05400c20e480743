// Package docker wraps the Docker Engine API client behind a narrow
// interface so the rest of netpeek depends only on the operations it uses
// (listing running containers with their network attachments).
//
// The Client handle is constructed once at startup and passed explicitly to
// consumers; there is no package-level singleton.
package docker
