package endpoints

import (
	"net/http"

	"github.com/nwcdlabs/codecommit-admin/pkg/server"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
)

// RegisterStatusEndpoints registers the health check route
func RegisterStatusEndpoints(s *server.Server) {
	// GET /health - Database connectivity check
	s.Router.HandleFunc("/health", handleHealth(s.HealthStore)).Methods("GET")
}

// handleHealth reports database connectivity. Unlike the business routes,
// this is an infrastructure probe: a failed check answers 503 so load
// balancers and `ccadmin wait` can tell a broken server from a ready one.
func handleHealth(health store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := health.CheckConnectivity(); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, "ok")
	}
}
