// Package publish orchestrates the full render-and-deploy sequence:
// validate content, render the bundle, ensure the hosting site exists,
// deploy atomically and follow the deployment to a terminal state.
package publish

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/pagemint/pagemint/content"
	"github.com/pagemint/pagemint/hosting"
	"github.com/pagemint/pagemint/pkg/metrics"
	"github.com/pagemint/pagemint/render"
)

type (
	Pipeline struct {
		l               *zap.Logger
		provider        hosting.Provider
		deployAttempts  uint
		retryDelay      time.Duration
		pollInterval    time.Duration
		maxPollInterval time.Duration
	}
	Option func(*Pipeline)
)

// Request one render-and-publish cycle. The caller owns content and links
// and passes them by value; the pipeline holds no state across runs.
type Request struct {
	// RawContent is the unvalidated generator output, may be empty or malformed
	RawContent []byte
	// Fallback context used when RawContent does not validate
	Fallback content.FallbackContext
	Template render.TemplateID
	Links    render.Links
	// SiteName is the display name used to provision the site on first publish
	SiteName string
	// SiteID skips provisioning and deploys to a known site
	SiteID       string
	CustomDomain string
}

// Result of a publish run. Deployment may still be building; use
// AwaitReady for synchronous confirmation.
type Result struct {
	Site         *hosting.Site
	Deployment   *hosting.Deployment
	Bundle       render.Site
	FallbackUsed bool
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func New(l *zap.Logger, provider hosting.Provider, opts ...Option) *Pipeline {
	inst := &Pipeline{
		l:               l.Named("publish"),
		provider:        provider,
		deployAttempts:  3,
		retryDelay:      time.Second,
		pollInterval:    2 * time.Second,
		maxPollInterval: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func WithDeployAttempts(v uint) Option {
	return func(o *Pipeline) {
		o.deployAttempts = v
	}
}

func WithRetryDelay(v time.Duration) Option {
	return func(o *Pipeline) {
		o.retryDelay = v
	}
}

func WithPollInterval(v time.Duration) Option {
	return func(o *Pipeline) {
		o.pollInterval = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Run executes one publish cycle. Transport failures during deploy are
// retried with exponential backoff; provisioning, validation and auth
// failures surface immediately.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	model, fallbackUsed := content.Validate(req.RawContent, req.Fallback)
	if fallbackUsed {
		metrics.FallbackContentCounter.WithLabelValues().Inc()
		p.l.Info("substituted fallback content", zap.String("niche", req.Fallback.Niche))
	}

	bundle, err := p.renderBundle(model, req.Template, req.Links)
	if err != nil {
		metrics.PublishCounter.WithLabelValues("error").Inc()
		return nil, err
	}

	site, err := p.ensureSite(ctx, req)
	if err != nil {
		metrics.PublishCounter.WithLabelValues("error").Inc()
		return nil, err
	}

	deployment, err := p.deploy(ctx, site.ID, bundle)
	if err != nil {
		metrics.PublishCounter.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.PublishCounter.WithLabelValues("success").Inc()
	p.l.Info("published",
		zap.String("siteID", site.ID),
		zap.String("deployID", deployment.ID),
		zap.String("state", string(deployment.State)),
	)
	return &Result{
		Site:         site,
		Deployment:   deployment,
		Bundle:       bundle,
		FallbackUsed: fallbackUsed,
	}, nil
}

// AwaitReady polls the deployment with growing intervals until it reaches
// a terminal state or ctx expires. On expiry the last observed deployment
// is returned together with the context error: the deploy is abandoned
// but possibly completed, callers should report it as still building and
// reconcile later rather than assume failure.
func (p *Pipeline) AwaitReady(ctx context.Context, deploymentID string) (*hosting.Deployment, error) {
	interval := p.pollInterval
	var last *hosting.Deployment
	for {
		deployment, err := p.provider.GetDeployment(ctx, deploymentID)
		if err != nil {
			if !hosting.Retryable(err) {
				return nil, err
			}
			p.l.Debug("status poll failed, retrying", zap.Error(err))
		} else {
			last = deployment
			if deployment.State.Terminal() {
				return deployment, nil
			}
		}

		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-time.After(interval):
		}
		if interval < p.maxPollInterval {
			interval *= 2
			if interval > p.maxPollInterval {
				interval = p.maxPollInterval
			}
		}
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (p *Pipeline) renderBundle(model *content.Model, id render.TemplateID, links render.Links) (render.Site, error) {
	start := time.Now()
	bundle, err := render.Render(model, id, links)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render bundle")
	}
	metrics.RenderCounter.WithLabelValues(string(id)).Inc()
	metrics.RenderDuration.WithLabelValues(string(id)).Observe(time.Since(start).Seconds())
	return bundle, nil
}

func (p *Pipeline) ensureSite(ctx context.Context, req Request) (*hosting.Site, error) {
	if req.SiteID != "" {
		return &hosting.Site{ID: req.SiteID}, nil
	}
	site, err := p.provider.EnsureSite(ctx, req.SiteName, req.CustomDomain)
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure site")
	}
	return site, nil
}

func (p *Pipeline) deploy(ctx context.Context, siteID string, bundle render.Site) (*hosting.Deployment, error) {
	var deployment *hosting.Deployment
	err := retry.Do(
		func() error {
			d, err := p.provider.Deploy(ctx, siteID, bundle)
			if err != nil {
				return err
			}
			deployment = d
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(p.deployAttempts),
		retry.Delay(p.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(hosting.Retryable),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			metrics.PublishRetryCounter.WithLabelValues().Inc()
			p.l.Warn("retrying deploy", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to deploy bundle")
	}
	return deployment, nil
}
