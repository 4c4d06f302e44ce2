// Package mock provides an in-memory hosting.Provider for tests and dry
// runs. Sites are idempotent per normalized name, deploys transition from
// building to a terminal state after a configurable number of polls, and
// terminal states never change again.
package mock

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pagemint/pagemint/hosting"
	"github.com/pagemint/pagemint/render"
)

type (
	Provider struct {
		mu          sync.Mutex
		sites       map[string]*hosting.Site
		deploys     map[string]*trackedDeploy
		readyAfter  int
		failDeploys string
		rejectSites bool
	}
	Option func(*Provider)
)

type trackedDeploy struct {
	deployment hosting.Deployment
	polls      int
	files      render.Site
}

func New(opts ...Option) *Provider {
	inst := &Provider{
		sites:      map[string]*hosting.Site{},
		deploys:    map[string]*trackedDeploy{},
		readyAfter: 2,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// WithReadyAfter sets how many GetDeployment calls a deploy stays in
// building state before turning ready.
func WithReadyAfter(v int) Option {
	return func(o *Provider) {
		o.readyAfter = v
	}
}

// WithFailingDeploys makes every deploy end in error state with the given
// message.
func WithFailingDeploys(msg string) Option {
	return func(o *Provider) {
		o.failDeploys = msg
	}
}

// WithRejectedProvisioning makes EnsureSite fail for sites that do not
// exist yet.
func WithRejectedProvisioning() Option {
	return func(o *Provider) {
		o.rejectSites = true
	}
}

func (p *Provider) EnsureSite(_ context.Context, desiredName, customDomain string) (*hosting.Site, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	name := hosting.NormalizeSiteName(desiredName)
	if site, ok := p.sites[name]; ok {
		return site, nil
	}
	if p.rejectSites {
		return nil, &hosting.ProvisioningError{
			StatusCode: http.StatusUnprocessableEntity,
			Reason:     "site name is taken",
		}
	}
	site := &hosting.Site{
		ID:           uuid.NewString(),
		Name:         name,
		URL:          "https://" + name + ".mock.test",
		AdminURL:     "https://app.mock.test/sites/" + name,
		CustomDomain: customDomain,
	}
	p.sites[name] = site
	return site, nil
}

func (p *Provider) Deploy(_ context.Context, siteID string, site render.Site) (*hosting.Deployment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var target *hosting.Site
	for _, s := range p.sites {
		if s.ID == siteID {
			target = s
			break
		}
	}
	if target == nil {
		return nil, &hosting.ValidationError{
			StatusCode: http.StatusNotFound,
			Reason:     "unknown site id " + siteID,
		}
	}

	now := time.Now()
	d := &trackedDeploy{
		deployment: hosting.Deployment{
			ID:        uuid.NewString(),
			SiteID:    siteID,
			DeployURL: target.URL,
			State:     hosting.StateBuilding,
			CreatedAt: now,
			UpdatedAt: now,
		},
		files: site,
	}
	p.deploys[d.deployment.ID] = d
	out := d.deployment
	return &out, nil
}

func (p *Provider) GetDeployment(_ context.Context, deploymentID string) (*hosting.Deployment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	d, ok := p.deploys[deploymentID]
	if !ok {
		return nil, &hosting.ValidationError{
			StatusCode: http.StatusNotFound,
			Reason:     "unknown deployment id " + deploymentID,
		}
	}
	if !d.deployment.State.Terminal() {
		d.polls++
		if d.polls >= p.readyAfter {
			if p.failDeploys != "" {
				d.deployment.State = hosting.StateError
				d.deployment.ErrorMsg = p.failDeploys
			} else {
				d.deployment.State = hosting.StateReady
			}
			d.deployment.UpdatedAt = time.Now()
		}
	}
	out := d.deployment
	return &out, nil
}

// Files returns the bundle uploaded with the given deployment
func (p *Provider) Files(deploymentID string) render.Site {
	p.mu.Lock()
	defer p.mu.Unlock()
	if d, ok := p.deploys[deploymentID]; ok {
		return d.files
	}
	return nil
}
