package relay

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SVG relays an inline vector graphic as text. Any host is accepted; the
// target still has to parse as an absolute URL.
func (h *Handler) SVG(w http.ResponseWriter, r *http.Request) {
	target, status, err := h.target(r)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	resp, err := h.fetch(r, target)
	if err != nil {
		h.logger.Printf("relay: svg fetch failed for %s: %v", target, err)
		writeError(w, http.StatusInternalServerError, "failed to fetch target")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		writeError(w, resp.StatusCode, fmt.Sprintf("upstream returned status %d", resp.StatusCode))
		return
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.logger.Printf("relay: svg read failed for %s: %v", target, err)
		writeError(w, http.StatusInternalServerError, "failed to read target response")
		return
	}

	// A whitespace-only document is missing content, not an empty success.
	if strings.TrimSpace(string(body)) == "" {
		writeError(w, http.StatusNotFound, "empty content")
		return
	}

	h.setCacheHeaders(w)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
