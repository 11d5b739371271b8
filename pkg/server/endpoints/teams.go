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

// RegisterTeamsEndpoints registers the /team routes
func RegisterTeamsEndpoints(s *server.Server) {
	teamRouter := s.Router.PathPrefix("/team").Subrouter()
	teamRouter.Use(s.TokenMiddleware.Middleware)

	// GET /team/index - List all teams
	teamRouter.HandleFunc("/index", handleListTeams(s.TeamsStore)).Methods("GET")

	// PUT /team/create - Create an IAM group and cache it
	teamRouter.HandleFunc("/create", handleCreateTeam(s.TeamsStore, s.Identity)).Methods("PUT")

	// GET /team/get/{team_id} - Fetch a single team
	teamRouter.HandleFunc("/get/{team_id:[0-9]+}", handleGetTeam(s.TeamsStore, s.Identity)).Methods("GET")

	// POST /team/update_name/{team_id} - Rename a team
	teamRouter.HandleFunc("/update_name/{team_id:[0-9]+}", handleUpdateTeamName(s.TeamsStore)).Methods("POST")

	// POST /team/update_status/{team_id} - Change a team's status
	teamRouter.HandleFunc("/update_status/{team_id:[0-9]+}", handleUpdateTeamStatus(s.TeamsStore)).Methods("POST")

	// DELETE /team/delete/{team_id} - Remove the IAM group and the cache row
	teamRouter.HandleFunc("/delete/{team_id:[0-9]+}", handleDeleteTeam(s.TeamsStore, s.Identity)).Methods("DELETE")

	// DELETE /team/batch_delete - Remove several teams by id
	teamRouter.HandleFunc("/batch_delete", handleBatchDeleteTeams(s.TeamsStore)).Methods("DELETE")

	// PUT /team/add_member - Add a user to a team
	teamRouter.HandleFunc("/add_member", handleAddMember(s.TeamsStore, s.Identity)).Methods("PUT")

	// DELETE /team/delete_member - Remove a user from a team
	teamRouter.HandleFunc("/delete_member", handleDeleteMember(s.TeamsStore, s.Identity)).Methods("DELETE")

	// PUT /team/attach_policy - Attach a managed policy to a team
	teamRouter.HandleFunc("/attach_policy", handleAttachPolicy(s.TeamsStore, s.Identity)).Methods("PUT")

	// DELETE /team/detach_policy - Detach a managed policy from a team
	teamRouter.HandleFunc("/detach_policy", handleDetachPolicy(s.TeamsStore, s.Identity)).Methods("DELETE")

	// GET /team/get_policies/{team_name} - List a team's policy attachments
	teamRouter.HandleFunc("/get_policies/{team_name}", handleGetTeamPolicies(s.TeamsStore)).Methods("GET")

	// GET /team/get_users/{team_name} - List a team's members
	teamRouter.HandleFunc("/get_users/{team_name}", handleGetTeamUsers(s.TeamsStore)).Methods("GET")
}

func handleListTeams(teams store.TeamsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := teams.ListTeams()
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithData(w, rows)
	}
}

// handleCreateTeam creates the remote group first and caches the row only on
// remote success. An existing remote group short-circuits as a no-op
// success, avoiding a duplicate.
func handleCreateTeam(teams store.TeamsStore, ident cloud.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		teamName := r.PostFormValue("team_name")
		status := r.PostFormValue("status")
		leaderID, _ := strconv.ParseInt(r.PostFormValue("leader_id"), 10, 64)
		leaderName := r.PostFormValue("leader_name")
		if teamName == "" || status == "" {
			failedWithMessage(w, "team_name and status are required")
			return
		}

		ctx := r.Context()

		group, err := ident.GetGroup(ctx, teamName)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if group != nil {
			succeededWithMessage(w, fmt.Sprintf("team %s is existed", teamName))
			return
		}

		group, err = ident.CreateGroup(ctx, teamName)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		err = teams.CreateTeam(&model.Team{
			TeamName:   teamName,
			Status:     status,
			LeaderID:   leaderID,
			LeaderName: leaderName,
			Operator:   1,
			AwsArn:     group.Arn,
		})
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		succeededWithMessage(w, fmt.Sprintf("team %s added successfully", teamName))
	}
}

func handleGetTeam(teams store.TeamsStore, ident cloud.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, _ := strconv.ParseInt(mux.Vars(r)["team_id"], 10, 64)

		team, err := teams.GetTeam(teamID)
		if err != nil {
			if errors.Is(err, store.ErrTeamNotFound) {
				succeededWithMessage(w, fmt.Sprintf("team %d not found", teamID))
				return
			}
			failedWithMessage(w, err.Error())
			return
		}

		group, err := ident.GetGroup(r.Context(), team.TeamName)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if group == nil {
			succeededWithMessage(w, fmt.Sprintf("Group %s not found", team.TeamName))
			return
		}

		succeededWithData(w, team)
	}
}

func handleUpdateTeamName(teams store.TeamsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, _ := strconv.ParseInt(mux.Vars(r)["team_id"], 10, 64)

		if err := r.ParseForm(); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		teamName := r.PostFormValue("team_name")
		if teamName == "" {
			failedWithMessage(w, "team_name is required")
			return
		}

		if err := teams.UpdateTeamName(teamID, teamName); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, fmt.Sprintf("team %s name changed successfully", teamName))
	}
}

func handleUpdateTeamStatus(teams store.TeamsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, _ := strconv.ParseInt(mux.Vars(r)["team_id"], 10, 64)

		if err := r.ParseForm(); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		status := r.PostFormValue("status")
		if status == "" {
			failedWithMessage(w, "status is required")
			return
		}

		if err := teams.UpdateTeamStatus(teamID, status); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, fmt.Sprintf("team status is changed to %s successfully", status))
	}
}

func handleDeleteTeam(teams store.TeamsStore, ident cloud.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, _ := strconv.ParseInt(mux.Vars(r)["team_id"], 10, 64)
		ctx := r.Context()

		team, err := teams.GetTeam(teamID)
		if err != nil {
			if errors.Is(err, store.ErrTeamNotFound) {
				succeededWithMessage(w, "Team not found")
				return
			}
			failedWithMessage(w, err.Error())
			return
		}

		group, err := ident.GetGroup(ctx, team.TeamName)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if group != nil {
			if err := ident.DeleteGroup(ctx, team.TeamName); err != nil {
				failedWithMessage(w, err.Error())
				return
			}
		}

		if err := teams.DeleteTeam(teamID); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, "team removed successfully")
	}
}

func handleBatchDeleteTeams(teams store.TeamsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := formValues(r)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		raw := form.Get("team_ids")
		if raw == "" {
			failedWithMessage(w, "Please specify team")
			return
		}
		ids, ok := parseIDList(raw)
		if !ok {
			failedWithMessage(w, "team_ids must be a comma-separated list of ids")
			return
		}

		if err := teams.BatchDeleteTeams(ids); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, "team delete in batch successfully")
	}
}

func handleAddMember(teams store.TeamsStore, ident cloud.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		userName := r.PostFormValue("user_name")
		teamName := r.PostFormValue("team_name")
		if userName == "" || teamName == "" {
			failedWithMessage(w, "user_name and team_name are required")
			return
		}

		if err := teams.AddMember(teamName, userName); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if err := ident.AddUserToGroup(r.Context(), userName, teamName); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, fmt.Sprintf("Assigned user %s to team %s", userName, teamName))
	}
}

func handleDeleteMember(teams store.TeamsStore, ident cloud.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := formValues(r)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		userName := form.Get("user_name")
		teamName := form.Get("team_name")
		if userName == "" || teamName == "" {
			failedWithMessage(w, "user_name and team_name are required")
			return
		}

		if err := teams.DeleteMember(teamName, userName); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if err := ident.RemoveUserFromGroup(r.Context(), userName, teamName); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, fmt.Sprintf("Removed user %s from team %s", userName, teamName))
	}
}

func handleAttachPolicy(teams store.TeamsStore, ident cloud.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		policyArn := r.PostFormValue("policy_arn")
		teamName := r.PostFormValue("team_name")
		if policyArn == "" || teamName == "" {
			failedWithMessage(w, "policy_arn and team_name are required")
			return
		}

		if err := ident.AttachGroupPolicy(r.Context(), teamName, policyArn); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if err := teams.AttachPolicy(teamName, policyArn); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, fmt.Sprintf("Attached policy %s to team %s", policyArn, teamName))
	}
}

func handleDetachPolicy(teams store.TeamsStore, ident cloud.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := formValues(r)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		policyArn := form.Get("policy_arn")
		teamName := form.Get("team_name")
		if policyArn == "" || teamName == "" {
			failedWithMessage(w, "policy_arn and team_name are required")
			return
		}

		if err := ident.DetachGroupPolicy(r.Context(), teamName, policyArn); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if err := teams.DetachPolicy(teamName, policyArn); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, fmt.Sprintf("Removed policy %s from team %s", policyArn, teamName))
	}
}

func handleGetTeamPolicies(teams store.TeamsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamName := mux.Vars(r)["team_name"]

		rows, err := teams.ListPolicies(teamName)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if len(rows) == 0 {
			succeededWithMessage(w, fmt.Sprintf("No policies found within team %s", teamName))
			return
		}
		succeededWithData(w, rows)
	}
}

func handleGetTeamUsers(teams store.TeamsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamName := mux.Vars(r)["team_name"]

		rows, err := teams.ListMembers(teamName)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if len(rows) == 0 {
			succeededWithMessage(w, fmt.Sprintf("No users found within team %s", teamName))
			return
		}
		succeededWithData(w, rows)
	}
}
