package endpoints

import (
	"github.com/nwcdlabs/codecommit-admin/pkg/server"
)

// RegisterAll wires every endpoint group onto the server's router. The docs,
// health, register and get_token routes are public so that operators can
// bootstrap accounts and fetch tokens; everything else sits behind the token
// middleware.
func RegisterAll(s *server.Server) {
	RegisterDocsEndpoints(s)
	RegisterStatusEndpoints(s)
	RegisterAuthEndpoints(s)
	RegisterUsersEndpoints(s)
	RegisterTeamsEndpoints(s)
	RegisterProjectsEndpoints(s)
	RegisterReposEndpoints(s)
	RegisterPoliciesEndpoints(s)
}
