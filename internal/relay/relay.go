// Package relay serves remote media assets to the browser from this origin,
// avoiding the mixed-content and cross-origin failures that come with
// embedding CMS-hosted assets directly.
package relay

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// Some upstreams reject Go's default request identifier.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

var extensionTypes = map[string]string{
	".svg":  "image/svg+xml",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type Handler struct {
	allowedHost string
	maxAge      time.Duration
	client      *http.Client
	logger      *log.Logger
}

func NewHandler(allowedHost string, maxAge time.Duration, client *http.Client, logger *log.Logger) *Handler {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		allowedHost: allowedHost,
		maxAge:      maxAge,
		client:      client,
		logger:      logger,
	}
}

// target extracts and validates the ?url= parameter. The raw query is parsed
// explicitly so broken percent-encoding surfaces as a 400 instead of being
// silently dropped.
func (h *Handler) target(r *http.Request) (*url.URL, int, error) {
	q, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("invalid query encoding")
	}
	raw := q.Get("url")
	if raw == "" {
		return nil, http.StatusBadRequest, fmt.Errorf("missing url parameter")
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, http.StatusBadRequest, fmt.Errorf("invalid target url")
	}
	return u, 0, nil
}

func (h *Handler) hostAllowed(host string) bool {
	if host == "localhost" || host == "127.0.0.1" {
		return true
	}
	return h.allowedHost != "" && host == h.allowedHost
}

func (h *Handler) fetch(r *http.Request, target *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	return h.client.Do(req)
}

func (h *Handler) setCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.maxAge.Seconds())))
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// contentTypeFor resolves the served content type: trust the upstream
// header, else infer from the target's file extension, else image/jpeg.
func contentTypeFor(upstream string, target *url.URL) string {
	if upstream != "" {
		return upstream
	}
	ext := strings.ToLower(path.Ext(target.Path))
	if ct, ok := extensionTypes[ext]; ok {
		return ct
	}
	return "image/jpeg"
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
