package endpoints

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/nwcdlabs/codecommit-admin/pkg/cloud"
	"github.com/nwcdlabs/codecommit-admin/pkg/model"
	"github.com/nwcdlabs/codecommit-admin/pkg/policydoc"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
)

func testTemplates(t *testing.T) *policydoc.Templates {
	t.Helper()
	templates, err := policydoc.NewTemplates("", zap.NewNop())
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}
	return templates
}

func TestCreatePolicyEndpoint(t *testing.T) {
	repoArn := "arn:aws-cn:codecommit:cn-north-1:123456789012:xxx_web"
	policyArn := "arn:aws-cn:iam::123456789012:policy/generated"

	t.Run("scoped to named repositories", func(t *testing.T) {
		policies := NewMockPoliciesStore()
		repos := NewMockReposStore()
		ident := NewMockIdentity()

		repos.On("GetRepoArns", []string{"xxx_web"}).Return([]string{repoArn}, nil)
		ident.On("CreatePolicy", mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "codecommit_readonly_")
		}), mock.MatchedBy(func(document string) bool {
			var doc policydoc.Document
			if err := json.Unmarshal([]byte(document), &doc); err != nil {
				return false
			}
			return doc.Statement[0].Resource == repoArn
		})).Return(&cloud.RemotePolicy{Arn: policyArn}, nil)
		policies.On("CreatePolicy", mock.MatchedBy(func(policy *model.Policy) bool {
			return strings.HasPrefix(policy.PolicyName, "codecommit_readonly_") && policy.AwsArn == policyArn
		})).Return(nil)

		form := url.Values{}
		form.Set("policy_type", "readonly")
		form.Set("repos", "xxx_web")

		env := performForm(t, handleCreatePolicy(policies, repos, ident, testTemplates(t)), "PUT", "/policy/create", form, nil)

		if !env.Succeeded {
			t.Fatalf("expected success, got %q", message(env))
		}
		if !strings.HasPrefix(message(env), "Policy codecommit_readonly_") || !strings.HasSuffix(message(env), "created successfully") {
			t.Errorf("unexpected message %q", message(env))
		}
		policies.AssertExpectations(t)
		repos.AssertExpectations(t)
		ident.AssertExpectations(t)
	})

	t.Run("wildcard repos grant access to everything", func(t *testing.T) {
		policies := NewMockPoliciesStore()
		repos := NewMockReposStore()
		ident := NewMockIdentity()

		ident.On("CreatePolicy", mock.Anything, mock.MatchedBy(func(document string) bool {
			var doc policydoc.Document
			if err := json.Unmarshal([]byte(document), &doc); err != nil {
				return false
			}
			return doc.Statement[0].Resource == "*"
		})).Return(&cloud.RemotePolicy{Arn: policyArn}, nil)
		policies.On("CreatePolicy", mock.Anything).Return(nil)

		form := url.Values{}
		form.Set("policy_type", "admin")
		form.Set("repos", "*")

		env := performForm(t, handleCreatePolicy(policies, repos, ident, testTemplates(t)), "PUT", "/policy/create", form, nil)

		if !env.Succeeded {
			t.Fatalf("expected success, got %q", message(env))
		}
		repos.AssertNotCalled(t, "GetRepoArns", mock.Anything)
	})

	t.Run("unknown repositories fail", func(t *testing.T) {
		repos := NewMockReposStore()
		repos.On("GetRepoArns", []string{"missing"}).Return([]string{}, nil)

		form := url.Values{}
		form.Set("policy_type", "developer")
		form.Set("repos", "missing")

		env := performForm(t, handleCreatePolicy(NewMockPoliciesStore(), repos, NewMockIdentity(), testTemplates(t)), "PUT", "/policy/create", form, nil)

		if env.Succeeded {
			t.Fatal("expected failure")
		}
		if message(env) != "No repo found, please verify repo name and try again" {
			t.Errorf("unexpected message %q", message(env))
		}
	})

	t.Run("unknown type fails", func(t *testing.T) {
		form := url.Values{}
		form.Set("policy_type", "superuser")

		env := performForm(t, handleCreatePolicy(NewMockPoliciesStore(), NewMockReposStore(), NewMockIdentity(), testTemplates(t)), "PUT", "/policy/create", form, nil)

		if env.Succeeded {
			t.Fatal("expected failure")
		}
	})

	t.Run("provider failure is reported with the policy name", func(t *testing.T) {
		repos := NewMockReposStore()
		ident := NewMockIdentity()

		ident.On("CreatePolicy", mock.Anything, mock.Anything).Return(nil, errors.New("limit exceeded"))

		form := url.Values{}
		form.Set("policy_type", "readonly")

		env := performForm(t, handleCreatePolicy(NewMockPoliciesStore(), repos, ident, testTemplates(t)), "PUT", "/policy/create", form, nil)

		if env.Succeeded {
			t.Fatal("expected failure")
		}
		if !strings.HasPrefix(message(env), "Policy codecommit_readonly_") || !strings.HasSuffix(message(env), "created failed: limit exceeded") {
			t.Errorf("unexpected message %q", message(env))
		}
	})
}

func TestGetPolicyEndpoint(t *testing.T) {
	t.Run("returns the cached row", func(t *testing.T) {
		policies := NewMockPoliciesStore()
		policies.On("GetPolicyByName", "codecommit_readonly_20260829120000").Return(&model.Policy{
			PolicyName: "codecommit_readonly_20260829120000",
		}, nil)

		env := performForm(t, handleGetPolicy(policies), "GET", "/policy/get_policy/codecommit_readonly_20260829120000", nil,
			map[string]string{"policy_name": "codecommit_readonly_20260829120000"})

		if !env.Succeeded || env.Payload == nil {
			t.Fatalf("expected payload, got %q", message(env))
		}
	})

	t.Run("missing row reports not found", func(t *testing.T) {
		policies := NewMockPoliciesStore()
		policies.On("GetPolicyByName", "nope").Return(nil, store.ErrPolicyNotFound)

		env := performForm(t, handleGetPolicy(policies), "GET", "/policy/get_policy/nope", nil,
			map[string]string{"policy_name": "nope"})

		if message(env) != "Policy nope not found" {
			t.Errorf("unexpected message %q", message(env))
		}
	})
}

func TestDeletePolicyEndpoint(t *testing.T) {
	policyName := "codecommit_readonly_20260829120000"
	policyArn := "arn:aws-cn:iam::123456789012:policy/" + policyName

	t.Run("removes the managed policy and the row", func(t *testing.T) {
		policies := NewMockPoliciesStore()
		ident := NewMockIdentity()

		policies.On("GetPolicyByName", policyName).Return(&model.Policy{PolicyName: policyName, AwsArn: policyArn}, nil)
		ident.On("GetPolicy", policyArn).Return(&cloud.RemotePolicy{Arn: policyArn}, nil)
		ident.On("DeletePolicy", policyArn).Return(nil)
		policies.On("DeletePolicyByName", policyName).Return(nil)

		env := performForm(t, handleDeletePolicy(policies, ident), "DELETE", "/policy/delete_policy/"+policyName, nil,
			map[string]string{"policy_name": policyName})

		if message(env) != "Policy "+policyName+" removed" {
			t.Errorf("unexpected message %q", message(env))
		}
		policies.AssertExpectations(t)
		ident.AssertExpectations(t)
	})

	t.Run("missing remote policy still removes the row", func(t *testing.T) {
		policies := NewMockPoliciesStore()
		ident := NewMockIdentity()

		policies.On("GetPolicyByName", policyName).Return(&model.Policy{PolicyName: policyName, AwsArn: policyArn}, nil)
		ident.On("GetPolicy", policyArn).Return(nil, nil)
		policies.On("DeletePolicyByName", policyName).Return(nil)

		env := performForm(t, handleDeletePolicy(policies, ident), "DELETE", "/policy/delete_policy/"+policyName, nil,
			map[string]string{"policy_name": policyName})

		if message(env) != "Policy "+policyName+" removed" {
			t.Errorf("unexpected message %q", message(env))
		}
		ident.AssertNotCalled(t, "DeletePolicy", mock.Anything)
	})

	t.Run("missing row reports not found", func(t *testing.T) {
		policies := NewMockPoliciesStore()
		policies.On("GetPolicyByName", policyName).Return(nil, store.ErrPolicyNotFound)

		env := performForm(t, handleDeletePolicy(policies, NewMockIdentity()), "DELETE", "/policy/delete_policy/"+policyName, nil,
			map[string]string{"policy_name": policyName})

		if message(env) != "Policy "+policyName+" not found" {
			t.Errorf("unexpected message %q", message(env))
		}
	})
}
