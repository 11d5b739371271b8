package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nwcdlabs/codecommit-admin/pkg/cloud"
	"github.com/nwcdlabs/codecommit-admin/pkg/model"
	"github.com/nwcdlabs/codecommit-admin/pkg/server"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
)

// RegisterReposEndpoints registers the /repo routes
func RegisterReposEndpoints(s *server.Server) {
	repoRouter := s.Router.PathPrefix("/repo").Subrouter()
	repoRouter.Use(s.TokenMiddleware.Middleware)

	// GET /repo/index - List all repositories
	repoRouter.HandleFunc("/index", handleListRepos(s.ReposStore)).Methods("GET")

	// PUT /repo/create - Create a CodeCommit repository and cache it
	repoRouter.HandleFunc("/create", handleCreateRepo(s.ReposStore, s.Identity)).Methods("PUT")

	// GET /repo/get/{repo_name} - Fetch a single repository
	repoRouter.HandleFunc("/get/{repo_name}", handleGetRepo(s.ReposStore)).Methods("GET")

	// DELETE /repo/delete/{repo_name} - Remove the repository and the cache row
	repoRouter.HandleFunc("/delete/{repo_name}", handleDeleteRepo(s.ReposStore, s.Identity)).Methods("DELETE")
}

func handleListRepos(repos store.ReposStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := repos.ListRepos()
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithData(w, rows)
	}
}

// handleCreateRepo creates the remote repository and caches its ARN and
// clone URLs. The owning project and owner are recorded as tags on the
// remote repository so they survive a registry loss.
func handleCreateRepo(repos store.ReposStore, ident cloud.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		repoName := r.PostFormValue("repo_name")
		description := r.PostFormValue("description")
		status := r.PostFormValue("status")
		projectID, _ := strconv.ParseInt(r.PostFormValue("project_id"), 10, 64)
		projectName := r.PostFormValue("project_name")
		ownerID, _ := strconv.ParseInt(r.PostFormValue("owner_id"), 10, 64)
		ownerName := r.PostFormValue("owner_name")
		originLink := r.PostFormValue("origin_link")
		if repoName == "" {
			failedWithMessage(w, "repo_name is required")
			return
		}

		tags := map[string]string{
			"project_id":   strconv.FormatInt(projectID, 10),
			"project_name": projectName,
			"owner_id":     strconv.FormatInt(ownerID, 10),
			"owner_name":   ownerName,
		}

		remote, err := ident.CreateRepository(r.Context(), repoName, description, tags)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		err = repos.CreateRepo(&model.Repo{
			ProjectID:     projectID,
			ProjectName:   projectName,
			OwnerID:       ownerID,
			OwnerName:     ownerName,
			RepoName:      repoName,
			Description:   description,
			Status:        status,
			OriginLink:    originLink,
			Operator:      1,
			AwsArn:        remote.Arn,
			CloneURLHTTPS: remote.CloneURLHTTPS,
			CloneURLSSH:   remote.CloneURLSSH,
		})
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		succeededWithMessage(w, fmt.Sprintf("CodeCommit repository %s created successfully", repoName))
	}
}

func handleGetRepo(repos store.ReposStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repoName := mux.Vars(r)["repo_name"]

		repo, err := repos.GetRepoByName(repoName)
		if err != nil {
			if errors.Is(err, store.ErrRepoNotFound) {
				succeededWithMessage(w, fmt.Sprintf("No repo found by name %s", repoName))
				return
			}
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithData(w, repo)
	}
}

func handleDeleteRepo(repos store.ReposStore, ident cloud.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repoName := mux.Vars(r)["repo_name"]

		if err := ident.DeleteRepository(r.Context(), repoName); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if err := repos.DeleteRepoByName(repoName); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, fmt.Sprintf("%s removed", repoName))
	}
}
