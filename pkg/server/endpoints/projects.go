package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nwcdlabs/codecommit-admin/pkg/model"
	"github.com/nwcdlabs/codecommit-admin/pkg/server"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
)

// RegisterProjectsEndpoints registers the /project routes. Projects are
// local-only rows; none of these handlers call the cloud provider.
func RegisterProjectsEndpoints(s *server.Server) {
	projectRouter := s.Router.PathPrefix("/project").Subrouter()
	projectRouter.Use(s.TokenMiddleware.Middleware)

	// GET /project/index - List all projects
	projectRouter.HandleFunc("/index", handleListProjects(s.ProjectsStore)).Methods("GET")

	// PUT /project/create - Create a project row
	projectRouter.HandleFunc("/create", handleCreateProject(s.ProjectsStore)).Methods("PUT")

	// GET /project/get/{project_id} - Fetch a single project
	projectRouter.HandleFunc("/get/{project_id:[0-9]+}", handleGetProject(s.ProjectsStore)).Methods("GET")

	// POST /project/update_name/{project_id} - Rename a project
	projectRouter.HandleFunc("/update_name/{project_id:[0-9]+}", handleUpdateProjectName(s.ProjectsStore)).Methods("POST")

	// POST /project/update_status/{project_id} - Change a project's status
	projectRouter.HandleFunc("/update_status/{project_id:[0-9]+}", handleUpdateProjectStatus(s.ProjectsStore)).Methods("POST")

	// DELETE /project/delete/{project_id} - Remove a project row
	projectRouter.HandleFunc("/delete/{project_id:[0-9]+}", handleDeleteProject(s.ProjectsStore)).Methods("DELETE")

	// DELETE /project/batch_delete - Remove several projects by id
	projectRouter.HandleFunc("/batch_delete", handleBatchDeleteProjects(s.ProjectsStore)).Methods("DELETE")

	// PUT /project/add_group - Associate a team with a project
	projectRouter.HandleFunc("/add_group", handleAddGroup(s.ProjectsStore)).Methods("PUT")

	// GET /project/get_groups/{project_id} - List a project's team associations
	projectRouter.HandleFunc("/get_groups/{project_id:[0-9]+}", handleGetProjectGroups(s.ProjectsStore)).Methods("GET")
}

func handleListProjects(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := projects.ListProjects()
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithData(w, rows)
	}
}

func handleCreateProject(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		projectName := r.PostFormValue("project_name")
		status := r.PostFormValue("status")
		ownerID, _ := strconv.ParseInt(r.PostFormValue("owner_id"), 10, 64)
		ownerName := r.PostFormValue("owner_name")
		if projectName == "" || status == "" {
			failedWithMessage(w, "project_name and status are required")
			return
		}

		err := projects.CreateProject(&model.Project{
			ProjectName: projectName,
			Status:      status,
			OwnerID:     ownerID,
			OwnerName:   ownerName,
			Operator:    1,
		})
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, fmt.Sprintf("project %s added successfully", projectName))
	}
}

func handleGetProject(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, _ := strconv.ParseInt(mux.Vars(r)["project_id"], 10, 64)

		project, err := projects.GetProject(projectID)
		if err != nil {
			if errors.Is(err, store.ErrProjectNotFound) {
				succeededWithMessage(w, fmt.Sprintf("project %d not found", projectID))
				return
			}
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithData(w, project)
	}
}

func handleUpdateProjectName(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, _ := strconv.ParseInt(mux.Vars(r)["project_id"], 10, 64)

		if err := r.ParseForm(); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		projectName := r.PostFormValue("project_name")
		if projectName == "" {
			failedWithMessage(w, "project_name is required")
			return
		}

		if err := projects.UpdateProjectName(projectID, projectName); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, fmt.Sprintf("project %s name changed successfully", projectName))
	}
}

func handleUpdateProjectStatus(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, _ := strconv.ParseInt(mux.Vars(r)["project_id"], 10, 64)

		if err := r.ParseForm(); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		status := r.PostFormValue("status")
		if status == "" {
			failedWithMessage(w, "status is required")
			return
		}

		if err := projects.UpdateProjectStatus(projectID, status); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, fmt.Sprintf("project status is changed to %s successfully", status))
	}
}

func handleDeleteProject(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, _ := strconv.ParseInt(mux.Vars(r)["project_id"], 10, 64)

		if err := projects.DeleteProject(projectID); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, "project deleted successfully")
	}
}

func handleBatchDeleteProjects(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := formValues(r)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		raw := form.Get("project_ids")
		if raw == "" {
			failedWithMessage(w, "Please specify project")
			return
		}
		ids, ok := parseIDList(raw)
		if !ok {
			failedWithMessage(w, "project_ids must be a comma-separated list of ids")
			return
		}

		if err := projects.BatchDeleteProjects(ids); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, "project delete in batch successfully")
	}
}

func handleAddGroup(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		groupID, _ := strconv.ParseInt(r.PostFormValue("group_id"), 10, 64)
		groupName := r.PostFormValue("group_name")
		projectID, _ := strconv.ParseInt(r.PostFormValue("project_id"), 10, 64)
		projectName := r.PostFormValue("project_name")
		if groupName == "" || projectName == "" {
			failedWithMessage(w, "group_name and project_name are required")
			return
		}

		err := projects.AddGroup(&model.TeamProject{
			TeamID:      groupID,
			TeamName:    groupName,
			ProjectID:   projectID,
			ProjectName: projectName,
			Operator:    1,
		})
		if err != nil {
			failedWithMessage(w, fmt.Sprintf("When adding group %s to project %s occurred error %v", groupName, projectName, err))
			return
		}
		succeededWithMessage(w, fmt.Sprintf("Added group %s to project %s successfully", groupName, projectName))
	}
}

func handleGetProjectGroups(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, _ := strconv.ParseInt(mux.Vars(r)["project_id"], 10, 64)

		rows, err := projects.ListGroups(projectID)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithData(w, rows)
	}
}
