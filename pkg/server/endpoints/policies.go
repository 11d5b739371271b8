package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/nwcdlabs/codecommit-admin/pkg/cloud"
	"github.com/nwcdlabs/codecommit-admin/pkg/model"
	"github.com/nwcdlabs/codecommit-admin/pkg/policydoc"
	"github.com/nwcdlabs/codecommit-admin/pkg/server"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
)

// RegisterPoliciesEndpoints registers the /policy routes
func RegisterPoliciesEndpoints(s *server.Server) {
	policyRouter := s.Router.PathPrefix("/policy").Subrouter()
	policyRouter.Use(s.TokenMiddleware.Middleware)

	// GET /policy/index - List all policies
	policyRouter.HandleFunc("/index", handleListPolicies(s.PoliciesStore)).Methods("GET")

	// PUT /policy/create - Generate and create a managed policy
	policyRouter.HandleFunc("/create", handleCreatePolicy(s.PoliciesStore, s.ReposStore, s.Identity, s.Templates)).Methods("PUT")

	// GET /policy/get_policy/{policy_name} - Fetch a single policy
	policyRouter.HandleFunc("/get_policy/{policy_name}", handleGetPolicy(s.PoliciesStore)).Methods("GET")

	// DELETE /policy/delete_policy/{policy_name} - Remove the managed policy
	// and the cache row
	policyRouter.HandleFunc("/delete_policy/{policy_name}", handleDeletePolicy(s.PoliciesStore, s.Identity)).Methods("DELETE")
}

func handleListPolicies(policies store.PoliciesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := policies.ListPolicies()
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithData(w, rows)
	}
}

// handleCreatePolicy generates a policy document from the named template,
// scoped to the given repositories, and creates it as a managed policy. The
// repos form value is a comma-separated list of repository names; empty or
// "*" grants access to every repository.
func handleCreatePolicy(
	policies store.PoliciesStore,
	repos store.ReposStore,
	ident cloud.Identity,
	templates *policydoc.Templates,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		policyType, err := policydoc.PolicyTypeString(r.PostFormValue("policy_type"))
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		var resourceArns []string
		repoNames := strings.TrimSpace(r.PostFormValue("repos"))
		if repoNames != "" && repoNames != "*" {
			names := strings.Split(repoNames, ",")
			for i := range names {
				names[i] = strings.TrimSpace(names[i])
			}
			resourceArns, err = repos.GetRepoArns(names)
			if err != nil {
				failedWithMessage(w, err.Error())
				return
			}
			if len(resourceArns) == 0 {
				failedWithMessage(w, "No repo found, please verify repo name and try again")
				return
			}
		}

		policyName := policydoc.Name(policyType, time.Now())
		document, err := templates.Build(policyType, resourceArns)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		remote, err := ident.CreatePolicy(r.Context(), policyName, document)
		if err != nil {
			failedWithMessage(w, fmt.Sprintf("Policy %s created failed: %v", policyName, err))
			return
		}

		err = policies.CreatePolicy(&model.Policy{
			PolicyName: policyName,
			Detail:     document,
			Operator:   1,
			AwsArn:     remote.Arn,
		})
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}

		succeededWithMessage(w, fmt.Sprintf("Policy %s created successfully", policyName))
	}
}

func handleGetPolicy(policies store.PoliciesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		policyName := mux.Vars(r)["policy_name"]

		policy, err := policies.GetPolicyByName(policyName)
		if err != nil {
			if errors.Is(err, store.ErrPolicyNotFound) {
				succeededWithMessage(w, fmt.Sprintf("Policy %s not found", policyName))
				return
			}
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithData(w, policy)
	}
}

func handleDeletePolicy(policies store.PoliciesStore, ident cloud.Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		policyName := mux.Vars(r)["policy_name"]
		ctx := r.Context()

		policy, err := policies.GetPolicyByName(policyName)
		if err != nil {
			if errors.Is(err, store.ErrPolicyNotFound) {
				succeededWithMessage(w, fmt.Sprintf("Policy %s not found", policyName))
				return
			}
			failedWithMessage(w, err.Error())
			return
		}

		remote, err := ident.GetPolicy(ctx, policy.AwsArn)
		if err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		if remote != nil {
			if err := ident.DeletePolicy(ctx, policy.AwsArn); err != nil {
				failedWithMessage(w, err.Error())
				return
			}
		}

		if err := policies.DeletePolicyByName(policyName); err != nil {
			failedWithMessage(w, err.Error())
			return
		}
		succeededWithMessage(w, fmt.Sprintf("Policy %s removed", policyName))
	}
}
