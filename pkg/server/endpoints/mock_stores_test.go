package endpoints

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nwcdlabs/codecommit-admin/pkg/cloud"
	"github.com/nwcdlabs/codecommit-admin/pkg/model"
)

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) ListUsers() ([]model.User, error) {
	args := m.Called()
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUsersStore) GetUserByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUsersStore) DeleteUserByEmail(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

// MockTeamsStore implements store.TeamsStore for testing using testify/mock
type MockTeamsStore struct {
	mock.Mock
}

func NewMockTeamsStore() *MockTeamsStore {
	return &MockTeamsStore{}
}

func (m *MockTeamsStore) ListTeams() ([]model.Team, error) {
	args := m.Called()
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *MockTeamsStore) GetTeam(id int64) (*model.Team, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (m *MockTeamsStore) CreateTeam(team *model.Team) error {
	args := m.Called(team)
	return args.Error(0)
}

func (m *MockTeamsStore) UpdateTeamName(id int64, teamName string) error {
	args := m.Called(id, teamName)
	return args.Error(0)
}

func (m *MockTeamsStore) UpdateTeamStatus(id int64, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockTeamsStore) DeleteTeam(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockTeamsStore) BatchDeleteTeams(ids []int64) error {
	args := m.Called(ids)
	return args.Error(0)
}

func (m *MockTeamsStore) AddMember(teamName, userName string) error {
	args := m.Called(teamName, userName)
	return args.Error(0)
}

func (m *MockTeamsStore) DeleteMember(teamName, userName string) error {
	args := m.Called(teamName, userName)
	return args.Error(0)
}

func (m *MockTeamsStore) ListMembers(teamName string) ([]model.TeamMember, error) {
	args := m.Called(teamName)
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *MockTeamsStore) AttachPolicy(teamName, policyArn string) error {
	args := m.Called(teamName, policyArn)
	return args.Error(0)
}

func (m *MockTeamsStore) DetachPolicy(teamName, policyArn string) error {
	args := m.Called(teamName, policyArn)
	return args.Error(0)
}

func (m *MockTeamsStore) ListPolicies(teamName string) ([]model.TeamPolicy, error) {
	args := m.Called(teamName)
	return args.Get(0).([]model.TeamPolicy), args.Error(1)
}

// MockProjectsStore implements store.ProjectsStore for testing using testify/mock
type MockProjectsStore struct {
	mock.Mock
}

func NewMockProjectsStore() *MockProjectsStore {
	return &MockProjectsStore{}
}

func (m *MockProjectsStore) ListProjects() ([]model.Project, error) {
	args := m.Called()
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectsStore) GetProject(id int64) (*model.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectsStore) CreateProject(project *model.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectsStore) UpdateProjectName(id int64, projectName string) error {
	args := m.Called(id, projectName)
	return args.Error(0)
}

func (m *MockProjectsStore) UpdateProjectStatus(id int64, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockProjectsStore) DeleteProject(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProjectsStore) BatchDeleteProjects(ids []int64) error {
	args := m.Called(ids)
	return args.Error(0)
}

func (m *MockProjectsStore) AddGroup(link *model.TeamProject) error {
	args := m.Called(link)
	return args.Error(0)
}

func (m *MockProjectsStore) ListGroups(projectID int64) ([]model.TeamProject, error) {
	args := m.Called(projectID)
	return args.Get(0).([]model.TeamProject), args.Error(1)
}

// MockReposStore implements store.ReposStore for testing using testify/mock
type MockReposStore struct {
	mock.Mock
}

func NewMockReposStore() *MockReposStore {
	return &MockReposStore{}
}

func (m *MockReposStore) ListRepos() ([]model.Repo, error) {
	args := m.Called()
	return args.Get(0).([]model.Repo), args.Error(1)
}

func (m *MockReposStore) GetRepoByName(repoName string) (*model.Repo, error) {
	args := m.Called(repoName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Repo), args.Error(1)
}

func (m *MockReposStore) CreateRepo(repo *model.Repo) error {
	args := m.Called(repo)
	return args.Error(0)
}

func (m *MockReposStore) DeleteRepoByName(repoName string) error {
	args := m.Called(repoName)
	return args.Error(0)
}

func (m *MockReposStore) GetRepoArns(repoNames []string) ([]string, error) {
	args := m.Called(repoNames)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockPoliciesStore implements store.PoliciesStore for testing using testify/mock
type MockPoliciesStore struct {
	mock.Mock
}

func NewMockPoliciesStore() *MockPoliciesStore {
	return &MockPoliciesStore{}
}

func (m *MockPoliciesStore) ListPolicies() ([]model.Policy, error) {
	args := m.Called()
	return args.Get(0).([]model.Policy), args.Error(1)
}

func (m *MockPoliciesStore) GetPolicyByName(policyName string) (*model.Policy, error) {
	args := m.Called(policyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Policy), args.Error(1)
}

func (m *MockPoliciesStore) CreatePolicy(policy *model.Policy) error {
	args := m.Called(policy)
	return args.Error(0)
}

func (m *MockPoliciesStore) DeletePolicyByName(policyName string) error {
	args := m.Called(policyName)
	return args.Error(0)
}

// MockIdentity implements cloud.Identity for testing using testify/mock
type MockIdentity struct {
	mock.Mock
}

func NewMockIdentity() *MockIdentity {
	return &MockIdentity{}
}

func (m *MockIdentity) GetUser(ctx context.Context, userName string) (*cloud.RemoteUser, error) {
	args := m.Called(userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloud.RemoteUser), args.Error(1)
}

func (m *MockIdentity) CreateUser(ctx context.Context, userName string) (*cloud.RemoteUser, error) {
	args := m.Called(userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloud.RemoteUser), args.Error(1)
}

func (m *MockIdentity) DeleteUser(ctx context.Context, userName string) error {
	args := m.Called(userName)
	return args.Error(0)
}

func (m *MockIdentity) CreateLoginProfile(ctx context.Context, userName, password string) error {
	args := m.Called(userName, password)
	return args.Error(0)
}

func (m *MockIdentity) DeleteLoginProfile(ctx context.Context, userName string) error {
	args := m.Called(userName)
	return args.Error(0)
}

func (m *MockIdentity) CreateAccessKey(ctx context.Context, userName string) (*cloud.AccessKey, error) {
	args := m.Called(userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloud.AccessKey), args.Error(1)
}

func (m *MockIdentity) DeleteAccessKey(ctx context.Context, userName, accessKeyID string) error {
	args := m.Called(userName, accessKeyID)
	return args.Error(0)
}

func (m *MockIdentity) GetGroup(ctx context.Context, groupName string) (*cloud.RemoteGroup, error) {
	args := m.Called(groupName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloud.RemoteGroup), args.Error(1)
}

func (m *MockIdentity) CreateGroup(ctx context.Context, groupName string) (*cloud.RemoteGroup, error) {
	args := m.Called(groupName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloud.RemoteGroup), args.Error(1)
}

func (m *MockIdentity) DeleteGroup(ctx context.Context, groupName string) error {
	args := m.Called(groupName)
	return args.Error(0)
}

func (m *MockIdentity) AddUserToGroup(ctx context.Context, userName, groupName string) error {
	args := m.Called(userName, groupName)
	return args.Error(0)
}

func (m *MockIdentity) RemoveUserFromGroup(ctx context.Context, userName, groupName string) error {
	args := m.Called(userName, groupName)
	return args.Error(0)
}

func (m *MockIdentity) AttachGroupPolicy(ctx context.Context, groupName, policyArn string) error {
	args := m.Called(groupName, policyArn)
	return args.Error(0)
}

func (m *MockIdentity) DetachGroupPolicy(ctx context.Context, groupName, policyArn string) error {
	args := m.Called(groupName, policyArn)
	return args.Error(0)
}

func (m *MockIdentity) CreatePolicy(ctx context.Context, policyName, document string) (*cloud.RemotePolicy, error) {
	args := m.Called(policyName, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloud.RemotePolicy), args.Error(1)
}

func (m *MockIdentity) GetPolicy(ctx context.Context, policyArn string) (*cloud.RemotePolicy, error) {
	args := m.Called(policyArn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloud.RemotePolicy), args.Error(1)
}

func (m *MockIdentity) DeletePolicy(ctx context.Context, policyArn string) error {
	args := m.Called(policyArn)
	return args.Error(0)
}

func (m *MockIdentity) CreateRepository(ctx context.Context, repoName, description string, tags map[string]string) (*cloud.RemoteRepository, error) {
	args := m.Called(repoName, description, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloud.RemoteRepository), args.Error(1)
}

func (m *MockIdentity) DeleteRepository(ctx context.Context, repoName string) error {
	args := m.Called(repoName)
	return args.Error(0)
}
