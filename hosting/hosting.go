// Package hosting defines the provider-neutral contract for publishing
// rendered site bundles: site provisioning, atomic deploys and deployment
// state reads.
package hosting

import (
	"context"
	"time"

	"github.com/pagemint/pagemint/render"
)

// DeployState lifecycle state of a deployment
type DeployState string

const (
	StateBuilding DeployState = "building"
	StateReady    DeployState = "ready"
	StateError    DeployState = "error"
)

// Terminal reports whether the state can no longer change
func (s DeployState) Terminal() bool {
	return s == StateReady || s == StateError
}

// Site a hosting resource representing one logical website's deploy target
type Site struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	AdminURL     string `json:"adminUrl"`
	CustomDomain string `json:"customDomain,omitempty"`
}

// Deployment one publish attempt of a bundle to a site.
// State transitions building -> ready or building -> error; terminal
// states are never re-entered.
type Deployment struct {
	ID        string      `json:"id"`
	SiteID    string      `json:"siteId"`
	DeployURL string      `json:"deployUrl"`
	State     DeployState `json:"state"`
	ErrorMsg  string      `json:"errorMessage,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Provider is the hosting backend contract.
//
// Callers must complete EnsureSite before the first Deploy for a logical
// website, and Deploy before polling GetDeployment for the resulting id.
// The provider does not enforce this ordering. Concurrent deploys to one
// site produce independent Deployment records whose "which one is live"
// ordering is the backend's last-write-wins - serialize per site if that
// matters.
type Provider interface {
	// EnsureSite returns the existing site for the normalized name or
	// creates it. First-publish path only: callers are expected to store
	// the site id and pass it to Deploy on subsequent publishes.
	EnsureSite(ctx context.Context, desiredName, customDomain string) (*Site, error)

	// Deploy uploads the bundle as one atomic unit. The returned
	// deployment may still be building; it must not report ready before
	// the complete file set is live.
	Deploy(ctx context.Context, siteID string, site render.Site) (*Deployment, error)

	// GetDeployment reads the current state of a deployment
	GetDeployment(ctx context.Context, deploymentID string) (*Deployment, error)
}
