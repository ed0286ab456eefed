package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitecontent/internal/cms"
	"sitecontent/internal/content"
	"sitecontent/internal/relay"
)

// newTestServer wires the real pipeline with remote content disabled, so
// page endpoints serve the default literals.
func newTestServer() *Server {
	logger := log.New(io.Discard, "", 0)
	client := cms.NewClient("", "", nil, logger)
	pages := content.NewService(client, content.DefaultContent(), 100, logger)
	relayHandler := relay.NewHandler("cms.example.com", time.Hour, nil, logger)
	return New(pages, relayHandler, logger)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestPageEndpointsServeDefaultsWhenRemoteDisabled(t *testing.T) {
	router := newTestServer().Router()

	for _, path := range []string{
		"/api/pages/home",
		"/api/pages/products",
		"/api/pages/press",
		"/api/pages/notices",
		"/api/pages/share-price",
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"), path)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), path)
	}
}

func TestProductsEndpointBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pages/products", nil))

	var vm content.ProductsPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vm))

	require.NotNil(t, vm.Intro)
	assert.NotEmpty(t, vm.Products)
	assert.Contains(t, vm.Facets, "geography")
}

func TestRelayRoutesAreMounted(t *testing.T) {
	router := newTestServer().Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/relay/image", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "missing url parameter reaches the relay handler")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/relay/svg", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPageEndpointsAreGetOnly(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/pages/home", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
