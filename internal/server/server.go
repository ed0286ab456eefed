package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"sitecontent/internal/content"
	"sitecontent/internal/relay"
)

type Server struct {
	pages  *content.Service
	relay  *relay.Handler
	logger *log.Logger
}

func New(pages *content.Service, relayHandler *relay.Handler, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		pages:  pages,
		relay:  relayHandler,
		logger: logger,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLog)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/relay/image", s.relay.Image).Methods(http.MethodGet)
	r.HandleFunc("/relay/svg", s.relay.SVG).Methods(http.MethodGet)

	api := r.PathPrefix("/api/pages").Subrouter()
	api.HandleFunc("/home", s.homePage).Methods(http.MethodGet)
	api.HandleFunc("/products", s.productsPage).Methods(http.MethodGet)
	api.HandleFunc("/press", s.pressPage).Methods(http.MethodGet)
	api.HandleFunc("/notices", s.noticesPage).Methods(http.MethodGet)
	api.HandleFunc("/share-price", s.sharePricePage).Methods(http.MethodGet)

	return r
}

// homePage is the only page without a fallback: remote failure surfaces as
// an error response instead of defaulted content.
func (s *Server) homePage(w http.ResponseWriter, r *http.Request) {
	vm, err := s.pages.HomePage(r.Context())
	if err != nil {
		s.logger.Printf("server: home page failed: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "home content unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, vm)
}

func (s *Server) productsPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pages.ProductsPage(r.Context()))
}

func (s *Server) pressPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pages.PressPage(r.Context()))
}

func (s *Server) noticesPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pages.NoticesPage(r.Context()))
}

func (s *Server) sharePricePage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pages.SharePricePage(r.Context()))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
