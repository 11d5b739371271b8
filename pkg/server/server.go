package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	gormdb "gorm.io/gorm"

	"github.com/nwcdlabs/codecommit-admin/pkg/cloud"
	"github.com/nwcdlabs/codecommit-admin/pkg/config"
	"github.com/nwcdlabs/codecommit-admin/pkg/policydoc"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/middleware"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store/gorm"
	"github.com/nwcdlabs/codecommit-admin/pkg/token"
)

// Server wires the router, the registry stores, the cloud adapter and the
// token service together.
type Server struct {
	Router    *mux.Router
	DB        *gormdb.DB
	Logger    *zap.Logger
	Identity  cloud.Identity
	Templates *policydoc.Templates
	Tokens    *token.Service

	UsersStore    store.UsersStore
	TeamsStore    store.TeamsStore
	ProjectsStore store.ProjectsStore
	ReposStore    store.ReposStore
	PoliciesStore store.PoliciesStore
	HealthStore   store.HealthStore

	TokenMiddleware *middleware.TokenAuthenticator

	srv *http.Server
}

// NewServer creates a server over the given database handle and cloud
// adapter.
func NewServer(
	db *gormdb.DB,
	ident cloud.Identity,
	templates *policydoc.Templates,
	cfg *config.Config,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	usersStore := gorm.NewUsersStore(db)
	tokens := token.NewService(usersStore, cfg.TokenSecret, cfg.TokenTTL())

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    cfg.BindAddress + ":" + cfg.Port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:    router,
		DB:        db,
		Logger:    logger,
		Identity:  ident,
		Templates: templates,
		Tokens:    tokens,

		UsersStore:    usersStore,
		TeamsStore:    gorm.NewTeamsStore(db),
		ProjectsStore: gorm.NewProjectsStore(db),
		ReposStore:    gorm.NewReposStore(db),
		PoliciesStore: gorm.NewPoliciesStore(db),
		HealthStore:   gorm.NewHealthStore(db),

		TokenMiddleware: middleware.NewTokenAuthenticator(tokens),

		srv: srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
