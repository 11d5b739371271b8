package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/nwcdlabs/codecommit-admin/pkg/model"
	"github.com/nwcdlabs/codecommit-admin/pkg/server"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
	"github.com/nwcdlabs/codecommit-admin/pkg/token"
)

// RegisterAuthEndpoints registers the registration route
func RegisterAuthEndpoints(s *server.Server) {
	authRouter := s.Router.PathPrefix("/auth").Subrouter()

	// POST /auth/register - Register a local-only user row
	authRouter.HandleFunc("/register", handleRegister(s.UsersStore)).Methods("POST")
}

// handleRegister inserts a user row without touching the cloud provider.
// The initial password is derived from the email and is expected to be
// changed through the console.
func handleRegister(users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		userName := r.PostFormValue("username")
		email := r.PostFormValue("email")
		if userName == "" {
			failedWithMessage(w, "User name is required")
			return
		}
		if email == "" {
			failedWithMessage(w, "Email is required")
			return
		}

		operator, _ := strconv.ParseInt(r.Header.Get("operator"), 10, 64)

		passwordHash, err := token.HashPassword(email)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		err = users.CreateUser(&model.User{
			UserName: userName,
			Email:    email,
			Password: passwordHash,
			Operator: operator,
		})
		if err != nil {
			if errors.Is(err, store.ErrUserExists) {
				failedWithMessage(w, fmt.Sprintf("User %s is already existed", userName))
				return
			}
			failedWithMessage(w, err.Error())
			return
		}

		succeededWithMessage(w, fmt.Sprintf("User %s register successfully", userName))
	}
}
