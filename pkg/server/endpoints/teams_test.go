package endpoints

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/nwcdlabs/codecommit-admin/pkg/cloud"
	"github.com/nwcdlabs/codecommit-admin/pkg/model"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
)

func TestCreateTeam(t *testing.T) {
	t.Run("creates the group and caches the row", func(t *testing.T) {
		teams := NewMockTeamsStore()
		ident := NewMockIdentity()

		ident.On("GetGroup", "team1").Return(nil, nil)
		ident.On("CreateGroup", "team1").Return(&cloud.RemoteGroup{Arn: "arn:aws-cn:iam::123456789012:group/team1"}, nil)
		teams.On("CreateTeam", mock.MatchedBy(func(team *model.Team) bool {
			return team.TeamName == "team1" && team.Status == "正常" && team.AwsArn != ""
		})).Return(nil)

		form := url.Values{}
		form.Set("team_name", "team1")
		form.Set("status", "正常")
		form.Set("leader_id", "1")
		form.Set("leader_name", "lead")

		env := performForm(t, handleCreateTeam(teams, ident), "PUT", "/team/create", form, nil)

		if !env.Succeeded {
			t.Fatalf("expected success, got %q", message(env))
		}
		if message(env) != "team team1 added successfully" {
			t.Errorf("unexpected message %q", message(env))
		}
		teams.AssertExpectations(t)
		ident.AssertExpectations(t)
	})

	t.Run("existing group short-circuits without creating", func(t *testing.T) {
		teams := NewMockTeamsStore()
		ident := NewMockIdentity()

		ident.On("GetGroup", "team1").Return(&cloud.RemoteGroup{Arn: "arn:aws-cn:iam::123456789012:group/team1"}, nil)

		form := url.Values{}
		form.Set("team_name", "team1")
		form.Set("status", "正常")

		env := performForm(t, handleCreateTeam(teams, ident), "PUT", "/team/create", form, nil)

		if !env.Succeeded {
			t.Fatalf("expected success, got %q", message(env))
		}
		if message(env) != "team team1 is existed" {
			t.Errorf("unexpected message %q", message(env))
		}
		ident.AssertNotCalled(t, "CreateGroup", mock.Anything)
		teams.AssertNotCalled(t, "CreateTeam", mock.Anything)
	})

	t.Run("missing fields fail", func(t *testing.T) {
		env := performForm(t, handleCreateTeam(NewMockTeamsStore(), NewMockIdentity()), "PUT", "/team/create", url.Values{}, nil)
		if env.Succeeded {
			t.Fatal("expected failure")
		}
	})
}

func TestGetTeam(t *testing.T) {
	t.Run("returns the cached row when the group exists", func(t *testing.T) {
		teams := NewMockTeamsStore()
		ident := NewMockIdentity()

		teams.On("GetTeam", int64(7)).Return(&model.Team{ID: 7, TeamName: "team1"}, nil)
		ident.On("GetGroup", "team1").Return(&cloud.RemoteGroup{Arn: "arn:aws-cn:iam::123456789012:group/team1"}, nil)

		env := performForm(t, handleGetTeam(teams, ident), "GET", "/team/get/7", nil, map[string]string{"team_id": "7"})

		if !env.Succeeded {
			t.Fatalf("expected success, got %q", message(env))
		}
		if env.Payload == nil {
			t.Error("expected a payload")
		}
	})

	t.Run("missing row reports not found", func(t *testing.T) {
		teams := NewMockTeamsStore()
		teams.On("GetTeam", int64(9)).Return(nil, store.ErrTeamNotFound)

		env := performForm(t, handleGetTeam(teams, NewMockIdentity()), "GET", "/team/get/9", nil, map[string]string{"team_id": "9"})

		if !env.Succeeded {
			t.Fatal("expected success envelope")
		}
		if message(env) != "team 9 not found" {
			t.Errorf("unexpected message %q", message(env))
		}
	})

	t.Run("missing group reports not found", func(t *testing.T) {
		teams := NewMockTeamsStore()
		ident := NewMockIdentity()

		teams.On("GetTeam", int64(7)).Return(&model.Team{ID: 7, TeamName: "team1"}, nil)
		ident.On("GetGroup", "team1").Return(nil, nil)

		env := performForm(t, handleGetTeam(teams, ident), "GET", "/team/get/7", nil, map[string]string{"team_id": "7"})

		if message(env) != "Group team1 not found" {
			t.Errorf("unexpected message %q", message(env))
		}
	})
}

func TestUpdateTeam(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		teams := NewMockTeamsStore()
		teams.On("UpdateTeamName", int64(3), "team2").Return(nil)

		form := url.Values{}
		form.Set("team_name", "team2")

		env := performForm(t, handleUpdateTeamName(teams), "POST", "/team/update_name/3", form, map[string]string{"team_id": "3"})

		if message(env) != "team team2 name changed successfully" {
			t.Errorf("unexpected message %q", message(env))
		}
		teams.AssertExpectations(t)
	})

	t.Run("status change", func(t *testing.T) {
		teams := NewMockTeamsStore()
		teams.On("UpdateTeamStatus", int64(3), "停用").Return(nil)

		form := url.Values{}
		form.Set("status", "停用")

		env := performForm(t, handleUpdateTeamStatus(teams), "POST", "/team/update_status/3", form, map[string]string{"team_id": "3"})

		if message(env) != "team status is changed to 停用 successfully" {
			t.Errorf("unexpected message %q", message(env))
		}
		teams.AssertExpectations(t)
	})
}

func TestDeleteTeam(t *testing.T) {
	t.Run("deletes the group and the row", func(t *testing.T) {
		teams := NewMockTeamsStore()
		ident := NewMockIdentity()

		teams.On("GetTeam", int64(4)).Return(&model.Team{ID: 4, TeamName: "team1"}, nil)
		ident.On("GetGroup", "team1").Return(&cloud.RemoteGroup{Arn: "arn:aws-cn:iam::123456789012:group/team1"}, nil)
		ident.On("DeleteGroup", "team1").Return(nil)
		teams.On("DeleteTeam", int64(4)).Return(nil)

		env := performForm(t, handleDeleteTeam(teams, ident), "DELETE", "/team/delete/4", nil, map[string]string{"team_id": "4"})

		if message(env) != "team removed successfully" {
			t.Errorf("unexpected message %q", message(env))
		}
		teams.AssertExpectations(t)
		ident.AssertExpectations(t)
	})

	t.Run("missing group is still removed locally", func(t *testing.T) {
		teams := NewMockTeamsStore()
		ident := NewMockIdentity()

		teams.On("GetTeam", int64(4)).Return(&model.Team{ID: 4, TeamName: "team1"}, nil)
		ident.On("GetGroup", "team1").Return(nil, nil)
		teams.On("DeleteTeam", int64(4)).Return(nil)

		env := performForm(t, handleDeleteTeam(teams, ident), "DELETE", "/team/delete/4", nil, map[string]string{"team_id": "4"})

		if message(env) != "team removed successfully" {
			t.Errorf("unexpected message %q", message(env))
		}
		ident.AssertNotCalled(t, "DeleteGroup", mock.Anything)
	})

	t.Run("missing row reports not found", func(t *testing.T) {
		teams := NewMockTeamsStore()
		teams.On("GetTeam", int64(4)).Return(nil, store.ErrTeamNotFound)

		env := performForm(t, handleDeleteTeam(teams, NewMockIdentity()), "DELETE", "/team/delete/4", nil, map[string]string{"team_id": "4"})

		if message(env) != "Team not found" {
			t.Errorf("unexpected message %q", message(env))
		}
	})
}

func TestBatchDeleteTeams(t *testing.T) {
	t.Run("deletes all named ids", func(t *testing.T) {
		teams := NewMockTeamsStore()
		teams.On("BatchDeleteTeams", []int64{1, 2, 3}).Return(nil)

		form := url.Values{}
		form.Set("team_ids", "1,2,3")

		env := performForm(t, handleBatchDeleteTeams(teams), "DELETE", "/team/batch_delete", form, nil)

		if message(env) != "team delete in batch successfully" {
			t.Errorf("unexpected message %q", message(env))
		}
		teams.AssertExpectations(t)
	})

	t.Run("missing ids fail", func(t *testing.T) {
		env := performForm(t, handleBatchDeleteTeams(NewMockTeamsStore()), "DELETE", "/team/batch_delete", url.Values{}, nil)

		if env.Succeeded {
			t.Fatal("expected failure")
		}
		if message(env) != "Please specify team" {
			t.Errorf("unexpected message %q", message(env))
		}
	})

	t.Run("non-numeric ids are rejected", func(t *testing.T) {
		teams := NewMockTeamsStore()

		form := url.Values{}
		form.Set("team_ids", "1,2); DROP TABLE teams;--")

		env := performForm(t, handleBatchDeleteTeams(teams), "DELETE", "/team/batch_delete", form, nil)

		if env.Succeeded {
			t.Fatal("expected failure")
		}
		teams.AssertNotCalled(t, "BatchDeleteTeams", mock.Anything)
	})
}

func TestTeamMembership(t *testing.T) {
	t.Run("add member", func(t *testing.T) {
		teams := NewMockTeamsStore()
		ident := NewMockIdentity()

		teams.On("AddMember", "team1", "alice@example.com").Return(nil)
		ident.On("AddUserToGroup", "alice@example.com", "team1").Return(nil)

		form := url.Values{}
		form.Set("user_name", "alice@example.com")
		form.Set("team_name", "team1")

		env := performForm(t, handleAddMember(teams, ident), "PUT", "/team/add_member", form, nil)

		if message(env) != "Assigned user alice@example.com to team team1" {
			t.Errorf("unexpected message %q", message(env))
		}
		teams.AssertExpectations(t)
		ident.AssertExpectations(t)
	})

	t.Run("delete member", func(t *testing.T) {
		teams := NewMockTeamsStore()
		ident := NewMockIdentity()

		teams.On("DeleteMember", "team1", "alice@example.com").Return(nil)
		ident.On("RemoveUserFromGroup", "alice@example.com", "team1").Return(nil)

		form := url.Values{}
		form.Set("user_name", "alice@example.com")
		form.Set("team_name", "team1")

		env := performForm(t, handleDeleteMember(teams, ident), "DELETE", "/team/delete_member", form, nil)

		if message(env) != "Removed user alice@example.com from team team1" {
			t.Errorf("unexpected message %q", message(env))
		}
	})

	t.Run("list members", func(t *testing.T) {
		teams := NewMockTeamsStore()
		teams.On("ListMembers", "team1").Return([]model.TeamMember{
			{TeamName: "team1", UserName: "alice@example.com"},
		}, nil)

		env := performForm(t, handleGetTeamUsers(teams), "GET", "/team/get_users/team1", nil, map[string]string{"team_name": "team1"})

		if !env.Succeeded || env.Payload == nil {
			t.Fatalf("expected payload, got %q", message(env))
		}
	})

	t.Run("list members of an empty team", func(t *testing.T) {
		teams := NewMockTeamsStore()
		teams.On("ListMembers", "team1").Return([]model.TeamMember{}, nil)

		env := performForm(t, handleGetTeamUsers(teams), "GET", "/team/get_users/team1", nil, map[string]string{"team_name": "team1"})

		if message(env) != "No users found within team team1" {
			t.Errorf("unexpected message %q", message(env))
		}
	})
}

func TestTeamPolicies(t *testing.T) {
	policyArn := "arn:aws-cn:iam::123456789012:policy/codecommit_readonly_20260829120000"

	t.Run("attach", func(t *testing.T) {
		teams := NewMockTeamsStore()
		ident := NewMockIdentity()

		ident.On("AttachGroupPolicy", "team1", policyArn).Return(nil)
		teams.On("AttachPolicy", "team1", policyArn).Return(nil)

		form := url.Values{}
		form.Set("policy_arn", policyArn)
		form.Set("team_name", "team1")

		env := performForm(t, handleAttachPolicy(teams, ident), "PUT", "/team/attach_policy", form, nil)

		if message(env) != "Attached policy "+policyArn+" to team team1" {
			t.Errorf("unexpected message %q", message(env))
		}
		teams.AssertExpectations(t)
		ident.AssertExpectations(t)
	})

	t.Run("detach", func(t *testing.T) {
		teams := NewMockTeamsStore()
		ident := NewMockIdentity()

		ident.On("DetachGroupPolicy", "team1", policyArn).Return(nil)
		teams.On("DetachPolicy", "team1", policyArn).Return(nil)

		form := url.Values{}
		form.Set("policy_arn", policyArn)
		form.Set("team_name", "team1")

		env := performForm(t, handleDetachPolicy(teams, ident), "DELETE", "/team/detach_policy", form, nil)

		if message(env) != "Removed policy "+policyArn+" from team team1" {
			t.Errorf("unexpected message %q", message(env))
		}
	})

	t.Run("list attachments", func(t *testing.T) {
		teams := NewMockTeamsStore()
		teams.On("ListPolicies", "team1").Return([]model.TeamPolicy{
			{TeamName: "team1", PolicyArn: policyArn},
		}, nil)

		env := performForm(t, handleGetTeamPolicies(teams), "GET", "/team/get_policies/team1", nil, map[string]string{"team_name": "team1"})

		if !env.Succeeded || env.Payload == nil {
			t.Fatalf("expected payload, got %q", message(env))
		}
	})
}
