package relay

import (
	"fmt"
	"io"
	"net/http"
)

// Image relays a binary image asset. This is the restricted variant: the
// target host must be the configured media host or a local address.
func (h *Handler) Image(w http.ResponseWriter, r *http.Request) {
	target, status, err := h.target(r)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	if !h.hostAllowed(target.Hostname()) {
		writeError(w, http.StatusForbidden, fmt.Sprintf("host %q is not allowed", target.Hostname()))
		return
	}

	resp, err := h.fetch(r, target)
	if err != nil {
		h.logger.Printf("relay: image fetch failed for %s: %v", target, err)
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
		h.logger.Printf("relay: image read failed for %s: %v", target, err)
		writeError(w, http.StatusInternalServerError, "failed to read target response")
		return
	}

	h.setCacheHeaders(w)
	w.Header().Set("Content-Type", contentTypeFor(resp.Header.Get("Content-Type"), target))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
