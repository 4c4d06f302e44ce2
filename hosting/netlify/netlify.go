// Package netlify implements hosting.Provider against the Netlify deploy
// API using digest-based atomic deploys: a deploy is created from a SHA-1
// file manifest, the backend answers with the digests it is missing, and
// only those files are uploaded. The deploy stays in building state until
// the backend has confirmed the complete file set.
package netlify

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pagemint/pagemint/hosting"
	"github.com/pagemint/pagemint/pkg/metrics"
	"github.com/pagemint/pagemint/render"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultBaseURL       = "https://api.netlify.com/api/v1"
	maxConcurrentUploads = 4
)

type (
	// Client talks to the Netlify API
	Client struct {
		l          *zap.Logger
		baseURL    string
		token      string
		httpClient *http.Client
	}
	Option func(*Client)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func New(l *zap.Logger, token string, opts ...Option) *Client {
	inst := &Client{
		l:          l.Named("netlify"),
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func WithHTTPClient(v *http.Client) Option {
	return func(o *Client) {
		o.httpClient = v
	}
}

func WithBaseURL(v string) Option {
	return func(o *Client) {
		o.baseURL = strings.TrimSuffix(v, "/")
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Wire types
// ------------------------------------------------------------------------------------------------

type apiSite struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"ssl_url"`
	AdminURL     string `json:"admin_url"`
	CustomDomain string `json:"custom_domain"`
}

type apiDeploy struct {
	ID           string    `json:"id"`
	SiteID       string    `json:"site_id"`
	State        string    `json:"state"`
	DeploySSLURL string    `json:"deploy_ssl_url"`
	ErrorMessage string    `json:"error_message"`
	Required     []string  `json:"required"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *apiSite) toSite() *hosting.Site {
	return &hosting.Site{
		ID:           s.ID,
		Name:         s.Name,
		URL:          s.URL,
		AdminURL:     s.AdminURL,
		CustomDomain: s.CustomDomain,
	}
}

func (d *apiDeploy) toDeployment() *hosting.Deployment {
	return &hosting.Deployment{
		ID:        d.ID,
		SiteID:    d.SiteID,
		DeployURL: d.DeploySSLURL,
		State:     mapState(d.State),
		ErrorMsg:  d.ErrorMessage,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// mapState collapses Netlify's deploy states onto the three-state model.
// Anything that is neither ready nor error is still building.
func mapState(state string) hosting.DeployState {
	switch state {
	case "ready", "current":
		return hosting.StateReady
	case "error":
		return hosting.StateError
	default:
		return hosting.StateBuilding
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// EnsureSite looks the site up by its normalized name and creates it only
// when it does not exist yet, so repeated calls return the same site id.
func (c *Client) EnsureSite(ctx context.Context, desiredName, customDomain string) (*hosting.Site, error) {
	name := hosting.NormalizeSiteName(desiredName)

	existing, err := c.findSite(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		c.l.Info("reusing existing site", zap.String("name", name), zap.String("siteID", existing.ID))
		return existing, nil
	}

	body, err := json.Marshal(map[string]string{
		"name":          name,
		"custom_domain": customDomain,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal site request")
	}

	resp, err := c.do(ctx, http.MethodPost, "/sites", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, &hosting.ProvisioningError{
			StatusCode: resp.StatusCode,
			Reason:     readReason(resp.Body),
		}
	}

	var site apiSite
	if err := json.NewDecoder(resp.Body).Decode(&site); err != nil {
		return nil, errors.Wrap(err, "failed to decode site response")
	}
	c.l.Info("created site", zap.String("name", name), zap.String("siteID", site.ID))
	return site.toSite(), nil
}

// Deploy creates a digest deploy for the bundle and uploads whatever the
// backend reports as missing. Re-deploying the same bundle uploads nothing.
func (c *Client) Deploy(ctx context.Context, siteID string, site render.Site) (*hosting.Deployment, error) {
	files := make(map[string]string, len(site))
	pathsByDigest := make(map[string][]string, len(site))
	for path, contents := range site {
		sum := sha1.Sum([]byte(contents))
		digest := hex.EncodeToString(sum[:])
		files["/"+path] = digest
		pathsByDigest[digest] = append(pathsByDigest[digest], "/"+path)
	}

	body, err := json.Marshal(map[string]interface{}{"files": files})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal deploy manifest")
	}

	resp, err := c.do(ctx, http.MethodPost, "/sites/"+url.PathEscape(siteID)+"/deploys", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkDeployStatus(resp); err != nil {
		return nil, err
	}

	var deploy apiDeploy
	if err := json.NewDecoder(resp.Body).Decode(&deploy); err != nil {
		return nil, errors.Wrap(err, "failed to decode deploy response")
	}
	metrics.ProviderDeployCounter.WithLabelValues("netlify").Inc()
	c.l.Info("created deploy",
		zap.String("deployID", deploy.ID),
		zap.String("siteID", siteID),
		zap.Int("files", len(files)),
		zap.Int("required", len(deploy.Required)),
	)

	if err := c.uploadRequired(ctx, deploy.ID, deploy.Required, pathsByDigest, site); err != nil {
		return nil, err
	}

	return deploy.toDeployment(), nil
}

// GetDeployment reads the deployment state once. Polling is the caller's
// loop.
func (c *Client) GetDeployment(ctx context.Context, deploymentID string) (*hosting.Deployment, error) {
	resp, err := c.do(ctx, http.MethodGet, "/deploys/"+url.PathEscape(deploymentID), "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var deploy apiDeploy
	if err := json.NewDecoder(resp.Body).Decode(&deploy); err != nil {
		return nil, errors.Wrap(err, "failed to decode deploy response")
	}
	return deploy.toDeployment(), nil
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (c *Client) findSite(ctx context.Context, name string) (*hosting.Site, error) {
	resp, err := c.do(ctx, http.MethodGet, "/sites?name="+url.QueryEscape(name), "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var sites []apiSite
	if err := json.NewDecoder(resp.Body).Decode(&sites); err != nil {
		return nil, errors.Wrap(err, "failed to decode site list")
	}
	// the name filter is a substring match on the backend side
	for _, s := range sites {
		if s.Name == name {
			return s.toSite(), nil
		}
	}
	return nil, nil
}

// uploadRequired pushes the file contents the backend is missing. Uploads
// run concurrently but the deploy stays one atomic unit: the backend keeps
// it in building state until every required digest arrived.
func (c *Client) uploadRequired(ctx context.Context, deployID string, required []string, pathsByDigest map[string][]string, site render.Site) error {
	if len(required) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUploads)
	for _, digest := range required {
		paths, ok := pathsByDigest[digest]
		if !ok {
			return &hosting.ValidationError{
				StatusCode: http.StatusUnprocessableEntity,
				Reason:     "provider requested unknown file digest " + digest,
			}
		}
		for _, path := range paths {
			contents := site[strings.TrimPrefix(path, "/")]
			g.Go(func() error {
				return c.uploadFile(ctx, deployID, path, contents)
			})
		}
	}
	return g.Wait()
}

func (c *Client) uploadFile(ctx context.Context, deployID, path, contents string) error {
	resp, err := c.do(ctx, http.MethodPut, "/deploys/"+url.PathEscape(deployID)+"/files"+path, "application/octet-stream", strings.NewReader(contents))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	c.l.Debug("uploaded file", zap.String("deployID", deployID), zap.String("path", path))
	return nil
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	metrics.ProviderRequestCounter.WithLabelValues("netlify", method).Inc()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &hosting.TransportError{Err: err}
	}
	return resp, nil
}

// ------------------------------------------------------------------------------------------------
// ~ Helpers
// ------------------------------------------------------------------------------------------------

func statusError(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &hosting.AuthError{StatusCode: resp.StatusCode}
	case resp.StatusCode >= http.StatusInternalServerError:
		return &hosting.TransportError{Err: errors.Errorf("provider returned status %d", resp.StatusCode)}
	default:
		return &hosting.ValidationError{
			StatusCode: resp.StatusCode,
			Reason:     readReason(resp.Body),
		}
	}
}

func checkDeployStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		return nil
	}
	return statusError(resp)
}

func readReason(body io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(body, 1024))
	if err != nil || len(b) == 0 {
		return "no response body"
	}
	return string(b)
}
