package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const trackPath = "/api/track"

type (
	// Preview serves a rendered bundle from disk the way the hosting
	// provider would: known files directly, everything else falls back to
	// index.html with a 200, and the click beacon endpoint is accepted
	// and logged.
	Preview struct {
		l   *zap.Logger
		dir string
	}
	PreviewOption func(*Preview)
)

type clickEvent struct {
	Event     string `json:"event"`
	Section   string `json:"section"`
	URL       string `json:"url"`
	Timestamp string `json:"timestamp"`
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

// NewPreview returns a handler serving the bundle in dir
func NewPreview(l *zap.Logger, dir string, opts ...PreviewOption) http.Handler {
	inst := &Preview{
		l:   l.Named("preview"),
		dir: dir,
	}

	for _, opt := range opts {
		opt(inst)
	}

	return inst
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (h *Preview) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost && r.URL.Path == trackPath {
		h.handleTrack(w, r)
		return
	}

	name := strings.TrimPrefix(filepath.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = "index.html"
	}
	path := filepath.Join(h.dir, name)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	// single-page fallback, served with a 200 like the `_redirects` rule
	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

// handleTrack accepts the affiliate click beacon. The contract is
// fire-and-forget: malformed payloads are still answered with 204 so the
// client never sees an error.
func (h *Preview) handleTrack(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 4096))
	if err == nil {
		var event clickEvent
		if jsonErr := json.Unmarshal(body, &event); jsonErr != nil {
			h.l.Debug("discarding malformed click beacon", zap.Error(jsonErr))
		} else {
			h.l.Info("affiliate click",
				zap.String("event", event.Event),
				zap.String("section", event.Section),
				zap.String("url", event.URL),
				zap.String("timestamp", event.Timestamp),
			)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
