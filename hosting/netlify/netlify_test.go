package netlify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pagemint/pagemint/hosting"
	"github.com/pagemint/pagemint/render"
)

type fakeAPI struct {
	mu          sync.Mutex
	sites       []map[string]string
	createCalls int
	deployState string
	uploads     map[string]string
	failSites   int
	failCreate  int
	failDeploys int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		deployState: "uploading",
		uploads:     map[string]string{},
	}
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /sites", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failSites != 0 {
			w.WriteHeader(f.failSites)
			return
		}
		name := r.URL.Query().Get("name")
		matches := []map[string]string{}
		for _, s := range f.sites {
			if strings.Contains(s["name"], name) {
				matches = append(matches, s)
			}
		}
		require.NoError(t, json.NewEncoder(w).Encode(matches))
	})

	mux.HandleFunc("POST /sites", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failCreate != 0 {
			w.WriteHeader(f.failCreate)
			_, _ = w.Write([]byte("name is taken"))
			return
		}
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		f.createCalls++
		site := map[string]string{
			"id":        "site-1",
			"name":      req["name"],
			"ssl_url":   "https://" + req["name"] + ".netlify.app",
			"admin_url": "https://app.netlify.com/sites/" + req["name"],
		}
		f.sites = append(f.sites, site)
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(site))
	})

	mux.HandleFunc("POST /sites/{site}/deploys", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failDeploys != 0 {
			w.WriteHeader(f.failDeploys)
			_, _ = w.Write([]byte("file too large"))
			return
		}
		var req struct {
			Files map[string]string `json:"files"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		required := make([]string, 0, len(req.Files))
		for _, digest := range req.Files {
			required = append(required, digest)
		}
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
			"id":             "deploy-1",
			"site_id":        r.PathValue("site"),
			"state":          "uploading",
			"deploy_ssl_url": "https://deploy-1.netlify.app",
			"required":       required,
		}))
	})

	mux.HandleFunc("PUT /deploys/{deploy}/files/{path}", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		f.mu.Lock()
		f.uploads[r.PathValue("path")] = string(body)
		f.mu.Unlock()
		_, _ = w.Write([]byte("{}"))
	})

	mux.HandleFunc("GET /deploys/{deploy}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		require.NoError(t, json.NewEncoder(w).Encode(map[string]string{
			"id":             r.PathValue("deploy"),
			"site_id":        "site-1",
			"state":          f.deployState,
			"deploy_ssl_url": "https://deploy-1.netlify.app",
		}))
	})

	return mux
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	server := httptest.NewServer(api.handler(t))
	t.Cleanup(server.Close)
	return New(zap.NewNop(), "test-token", WithBaseURL(server.URL))
}

func testBundle() render.Site {
	return render.Site{
		"index.html": "<!DOCTYPE html><title>t</title>",
		"styles.css": "body{}",
		"script.js":  "(function(){})();",
		"_redirects": "/*    /index.html   200\n",
	}
}

func TestEnsureSiteCreatesOnce(t *testing.T) {
	api := newFakeAPI()
	c := newTestClient(t, api)

	first, err := c.EnsureSite(context.Background(), "My Site", "")
	require.NoError(t, err)
	assert.Equal(t, "site-1", first.ID)
	assert.Equal(t, "my-site", first.Name)

	second, err := c.EnsureSite(context.Background(), "My Site", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, api.createCalls, "existing site must be reused, not recreated")
}

func TestEnsureSiteRejected(t *testing.T) {
	api := newFakeAPI()
	api.failCreate = http.StatusUnprocessableEntity
	c := newTestClient(t, api)

	_, err := c.EnsureSite(context.Background(), "My Site", "")
	var provErr *hosting.ProvisioningError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusUnprocessableEntity, provErr.StatusCode)
	assert.Contains(t, provErr.Reason, "name is taken")
}

func TestEnsureSiteAuthFailure(t *testing.T) {
	api := newFakeAPI()
	api.failSites = http.StatusUnauthorized
	c := newTestClient(t, api)

	_, err := c.EnsureSite(context.Background(), "My Site", "")
	var authErr *hosting.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.False(t, hosting.Retryable(err))
}

func TestDeployUploadsRequiredFiles(t *testing.T) {
	api := newFakeAPI()
	c := newTestClient(t, api)

	deployment, err := c.Deploy(context.Background(), "site-1", testBundle())
	require.NoError(t, err)
	assert.Equal(t, "deploy-1", deployment.ID)
	assert.Equal(t, hosting.StateBuilding, deployment.State, "deploy is building until the provider confirms")

	assert.Len(t, api.uploads, 4)
	assert.Contains(t, api.uploads, "index.html")
	assert.Equal(t, "<!DOCTYPE html><title>t</title>", api.uploads["index.html"])
}

func TestDeployRejected(t *testing.T) {
	api := newFakeAPI()
	api.failDeploys = http.StatusUnprocessableEntity
	c := newTestClient(t, api)

	_, err := c.Deploy(context.Background(), "site-1", testBundle())
	var valErr *hosting.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.False(t, hosting.Retryable(err))
}

func TestDeployServerErrorIsRetryable(t *testing.T) {
	api := newFakeAPI()
	api.failDeploys = http.StatusServiceUnavailable
	c := newTestClient(t, api)

	_, err := c.Deploy(context.Background(), "site-1", testBundle())
	require.Error(t, err)
	assert.True(t, hosting.Retryable(err))
}

func TestDeployTransportErrorIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()
	c := New(zap.NewNop(), "test-token", WithBaseURL(server.URL))

	_, err := c.Deploy(context.Background(), "site-1", testBundle())
	require.Error(t, err)
	assert.True(t, hosting.Retryable(err))
}

func TestGetDeploymentStateMapping(t *testing.T) {
	api := newFakeAPI()
	c := newTestClient(t, api)

	for state, expected := range map[string]hosting.DeployState{
		"uploading":  hosting.StateBuilding,
		"processing": hosting.StateBuilding,
		"ready":      hosting.StateReady,
		"current":    hosting.StateReady,
		"error":      hosting.StateError,
	} {
		api.mu.Lock()
		api.deployState = state
		api.mu.Unlock()

		deployment, err := c.GetDeployment(context.Background(), "deploy-1")
		require.NoError(t, err)
		assert.Equal(t, expected, deployment.State, "provider state %q", state)
		assert.Equal(t, "https://deploy-1.netlify.app", deployment.DeployURL)
	}
}
