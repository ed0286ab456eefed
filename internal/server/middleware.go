package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Printf("%s %s %s (%v)", id[:8], r.Method, r.URL.Path, time.Since(start))
	})
}
