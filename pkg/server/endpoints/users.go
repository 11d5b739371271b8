package endpoints

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/nwcdlabs/codecommit-admin/pkg/cloud"
	"github.com/nwcdlabs/codecommit-admin/pkg/model"
	"github.com/nwcdlabs/codecommit-admin/pkg/server"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
	"github.com/nwcdlabs/codecommit-admin/pkg/token"
)

// RegisterUsersEndpoints registers the /user routes. The token route stays
// outside the authenticated subrouter so a client can obtain its first token.
func RegisterUsersEndpoints(s *server.Server) {
	// GET /user/get_token - Issue a token from email + password headers
	s.Router.HandleFunc("/user/get_token", handleGetToken(s.UsersStore, s.Tokens)).Methods("GET")

	userRouter := s.Router.PathPrefix("/user").Subrouter()
	userRouter.Use(s.TokenMiddleware.Middleware)

	// GET /user/index - List all users
	userRouter.HandleFunc("/index", handleListUsers(s.UsersStore)).Methods("GET")

	// PUT /user/create - Create an IAM user with console and key access
	userRouter.HandleFunc("/create", handleCreateUser(s.UsersStore, s.Identity)).Methods("PUT")

	// GET /user/get/{email} - Fetch a single user
	userRouter.HandleFunc("/get/{email}", handleGetUser(s.UsersStore, s.Identity)).Methods("GET")

	// DELETE /user/delete/{email} - Remove the IAM user and the cache row
	userRouter.HandleFunc("/delete/{email}", handleDeleteUser(s.UsersStore, s.Identity, s.Logger)).Methods("DELETE")
}

func handleListUsers(users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := users.ListUsers()
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithData(w, rows)
	}
}

func handleCreateUser(users store.UsersStore, ident cloud.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		userName := r.PostFormValue("user_name")
		email := r.PostFormValue("email")
		password := r.PostFormValue("password")
		status := r.PostFormValue("status")
		if userName == "" || email == "" || password == "" {
			failedWithMessage(w, "user_name, email and password are required")
			return
		}

		ctx := r.Context()

		remote, err := ident.GetUser(ctx, email)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if remote != nil {
			succeededWithMessage(w, fmt.Sprintf("User %s existed already, please use another one", userName))
			return
		}

		remote, err = ident.CreateUser(ctx, email)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if err := ident.CreateLoginProfile(ctx, email, password); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		key, err := ident.CreateAccessKey(ctx, email)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		passwordHash, err := token.HashPassword(password)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		err = users.CreateUser(&model.User{
			UserName:    userName,
			Email:       email,
			Password:    passwordHash,
			Status:      status,
			Operator:    1,
			IamArn:      remote.Arn,
			AccessKeyID: key.ID,
			SecretKey:   key.Secret,
		})
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		succeededWithMessage(w, fmt.Sprintf("User %s added successfully", email))
	}
}

func handleGetUser(users store.UsersStore, ident cloud.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)["email"]

		remote, err := ident.GetUser(r.Context(), email)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if remote == nil {
			succeededWithMessage(w, fmt.Sprintf("User %s not existed", email))
			return
		}

		user, err := users.GetUserByEmail(email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				succeededWithData(w, nil)
				return
			}
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithData(w, user)
	}
}

// handleDeleteUser removes the remote account and the cache row. The remote
// account cannot be deleted while it still has an access key or login
// profile, so those are removed first; a failure in any single cleanup step
// is logged and the remaining steps still execute.
func handleDeleteUser(users store.UsersStore, ident cloud.Identity, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)["email"]
		ctx := r.Context()

		remote, err := ident.GetUser(ctx, email)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if remote == nil {
			succeededWithMessage(w, fmt.Sprintf("User %s not found in iam", email))
			return
		}

		user, err := users.GetUserByEmail(email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				succeededWithMessage(w, fmt.Sprintf("User %s not found in database", email))
				return
			}
			failedWithMessage(w, err.Error())
			return
		}

		if err := ident.DeleteAccessKey(ctx, email, user.AccessKeyID); err != nil {
			logger.Warn("delete access key failed", zap.String("email", email), zap.Error(err))
		}
		if err := ident.DeleteLoginProfile(ctx, email); err != nil {
			logger.Warn("delete login profile failed", zap.String("email", email), zap.Error(err))
		}
		if err := ident.DeleteUser(ctx, email); err != nil {
			logger.Warn("delete user failed", zap.String("email", email), zap.Error(err))
		}

		if err := users.DeleteUserByEmail(email); err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		succeededWithMessage(w, fmt.Sprintf("User %s removed successfully", email))
	}
}

// handleGetToken issues a token for the email and password supplied in the
// X-USER-NAME and X-USER-PASSWORD headers. The token is returned in the
// envelope's message field.
func handleGetToken(users store.UsersStore, tokens *token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get("X-USER-NAME")
		password := r.Header.Get("X-USER-PASSWORD")
		if email == "" || password == "" {
			succeededWithMessage(w, "Please specify user name and password")
			return
		}

		if _, err := users.GetUserByEmail(email); err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				failedWithMessage(w, fmt.Sprintf("User %s not found", email))
				return
			}
			failedWithMessage(w, err.Error())
			return
		}

		tokenString, err := tokens.Issue(email, password)
		if err != nil {
			if errors.Is(err, token.ErrInvalidCredentials) {
				failedWithMessage(w, "Invalid user or password, please try again")
				return
			}
			failedWithMessage(w, err.Error())
			return
		}

		succeededWithMessage(w, tokenString)
	}
}
