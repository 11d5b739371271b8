package endpoints

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/nwcdlabs/codecommit-admin/pkg/model"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
)

func TestCreateProject(t *testing.T) {
	projects := NewMockProjectsStore()
	projects.On("CreateProject", mock.MatchedBy(func(project *model.Project) bool {
		return project.ProjectName == "web" && project.Status == "正常" && project.OwnerID == 5
	})).Return(nil)

	form := url.Values{}
	form.Set("project_name", "web")
	form.Set("status", "正常")
	form.Set("owner_id", "5")
	form.Set("owner_name", "alice")

	env := performForm(t, handleCreateProject(projects), "PUT", "/project/create", form, nil)

	if message(env) != "project web added successfully" {
		t.Errorf("unexpected message %q", message(env))
	}
	projects.AssertExpectations(t)
}

func TestGetProject(t *testing.T) {
	t.Run("returns the row", func(t *testing.T) {
		projects := NewMockProjectsStore()
		projects.On("GetProject", int64(2)).Return(&model.Project{ID: 2, ProjectName: "web"}, nil)

		env := performForm(t, handleGetProject(projects), "GET", "/project/get/2", nil, map[string]string{"project_id": "2"})

		if !env.Succeeded || env.Payload == nil {
			t.Fatalf("expected payload, got %q", message(env))
		}
	})

	t.Run("missing row reports not found", func(t *testing.T) {
		projects := NewMockProjectsStore()
		projects.On("GetProject", int64(2)).Return(nil, store.ErrProjectNotFound)

		env := performForm(t, handleGetProject(projects), "GET", "/project/get/2", nil, map[string]string{"project_id": "2"})

		if message(env) != "project 2 not found" {
			t.Errorf("unexpected message %q", message(env))
		}
	})
}

func TestUpdateProject(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		projects := NewMockProjectsStore()
		projects.On("UpdateProjectName", int64(2), "web2").Return(nil)

		form := url.Values{}
		form.Set("project_name", "web2")

		env := performForm(t, handleUpdateProjectName(projects), "POST", "/project/update_name/2", form, map[string]string{"project_id": "2"})

		if message(env) != "project web2 name changed successfully" {
			t.Errorf("unexpected message %q", message(env))
		}
	})

	t.Run("status change", func(t *testing.T) {
		projects := NewMockProjectsStore()
		projects.On("UpdateProjectStatus", int64(2), "停用").Return(nil)

		form := url.Values{}
		form.Set("status", "停用")

		env := performForm(t, handleUpdateProjectStatus(projects), "POST", "/project/update_status/2", form, map[string]string{"project_id": "2"})

		if message(env) != "project status is changed to 停用 successfully" {
			t.Errorf("unexpected message %q", message(env))
		}
	})
}

func TestDeleteProject(t *testing.T) {
	projects := NewMockProjectsStore()
	projects.On("DeleteProject", int64(2)).Return(nil)

	env := performForm(t, handleDeleteProject(projects), "DELETE", "/project/delete/2", nil, map[string]string{"project_id": "2"})

	if message(env) != "project deleted successfully" {
		t.Errorf("unexpected message %q", message(env))
	}
}

func TestBatchDeleteProjects(t *testing.T) {
	t.Run("deletes all named ids", func(t *testing.T) {
		projects := NewMockProjectsStore()
		projects.On("BatchDeleteProjects", []int64{4, 5}).Return(nil)

		form := url.Values{}
		form.Set("project_ids", "4,5")

		env := performForm(t, handleBatchDeleteProjects(projects), "DELETE", "/project/batch_delete", form, nil)

		if message(env) != "project delete in batch successfully" {
			t.Errorf("unexpected message %q", message(env))
		}
		projects.AssertExpectations(t)
	})

	t.Run("missing ids fail", func(t *testing.T) {
		env := performForm(t, handleBatchDeleteProjects(NewMockProjectsStore()), "DELETE", "/project/batch_delete", url.Values{}, nil)

		if env.Succeeded {
			t.Fatal("expected failure")
		}
		if message(env) != "Please specify project" {
			t.Errorf("unexpected message %q", message(env))
		}
	})
}

func TestAddGroup(t *testing.T) {
	t.Run("records the association", func(t *testing.T) {
		projects := NewMockProjectsStore()
		projects.On("AddGroup", mock.MatchedBy(func(link *model.TeamProject) bool {
			return link.TeamID == 3 && link.TeamName == "team1" && link.ProjectID == 2 && link.ProjectName == "web"
		})).Return(nil)

		form := url.Values{}
		form.Set("group_id", "3")
		form.Set("group_name", "team1")
		form.Set("project_id", "2")
		form.Set("project_name", "web")

		env := performForm(t, handleAddGroup(projects), "PUT", "/project/add_group", form, nil)

		if message(env) != "Added group team1 to project web successfully" {
			t.Errorf("unexpected message %q", message(env))
		}
		projects.AssertExpectations(t)
	})

	t.Run("store failure is reported with context", func(t *testing.T) {
		projects := NewMockProjectsStore()
		projects.On("AddGroup", mock.Anything).Return(errors.New("boom"))

		form := url.Values{}
		form.Set("group_id", "3")
		form.Set("group_name", "team1")
		form.Set("project_id", "2")
		form.Set("project_name", "web")

		env := performForm(t, handleAddGroup(projects), "PUT", "/project/add_group", form, nil)

		if env.Succeeded {
			t.Fatal("expected failure")
		}
		if message(env) != "When adding group team1 to project web occurred error boom" {
			t.Errorf("unexpected message %q", message(env))
		}
	})
}

func TestGetProjectGroups(t *testing.T) {
	projects := NewMockProjectsStore()
	projects.On("ListGroups", int64(2)).Return([]model.TeamProject{
		{TeamID: 3, TeamName: "team1", ProjectID: 2, ProjectName: "web"},
	}, nil)

	env := performForm(t, handleGetProjectGroups(projects), "GET", "/project/get_groups/2", nil, map[string]string{"project_id": "2"})

	if !env.Succeeded || env.Payload == nil {
		t.Fatalf("expected payload, got %q", message(env))
	}
}
