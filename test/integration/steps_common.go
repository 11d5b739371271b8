package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/nwcdlabs/codecommit-admin/pkg/token"
)

// envelope mirrors the response shape of every endpoint
type envelope struct {
	Succeeded bool            `json:"succeeded"`
	Payload   json.RawMessage `json:"payload"`
	Message   *string         `json:"message"`
}

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc        *TestContext
	response  *envelope
	authEmail string
	authToken string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{tc: tc}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a ccadmin server is running$`, s.aServerIsRunning)
	sc.Step(`^the registry is empty$`, s.theRegistryIsEmpty)
	sc.Step(`^a console user "([^"]*)" with password "([^"]*)" exists$`, s.aConsoleUserExists)
	sc.Step(`^I am authenticated as "([^"]*)" with password "([^"]*)"$`, s.iAmAuthenticatedAs)

	// Team steps
	sc.Step(`^I create a team "([^"]*)" with status "([^"]*)"$`, s.iCreateATeam)
	sc.Step(`^team "([^"]*)" should exist in the registry$`, s.teamShouldExist)

	// Project steps
	sc.Step(`^I create a project "([^"]*)" with status "([^"]*)"$`, s.iCreateAProject)
	sc.Step(`^I batch delete all projects$`, s.iBatchDeleteAllProjects)
	sc.Step(`^I batch delete projects without naming any$`, s.iBatchDeleteProjectsEmpty)
	sc.Step(`^the registry should contain (\d+) projects?$`, s.registryShouldContainProjects)

	// Repo steps
	sc.Step(`^I create a repository "([^"]*)" in project "([^"]*)"$`, s.iCreateARepository)
	sc.Step(`^I delete the repository "([^"]*)"$`, s.iDeleteTheRepository)
	sc.Step(`^I fetch the repository "([^"]*)"$`, s.iFetchTheRepository)
	sc.Step(`^repository "([^"]*)" should not exist in the registry$`, s.repositoryShouldNotExist)

	// Response steps
	sc.Step(`^the response should succeed$`, s.theResponseShouldSucceed)
	sc.Step(`^the response should fail$`, s.theResponseShouldFail)
	sc.Step(`^the message should be "([^"]*)"$`, s.theMessageShouldBe)
}

func (s *StepsContext) aServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) theRegistryIsEmpty() error {
	for _, table := range []string{"team_projects", "team_policies", "team_members", "repos", "policies", "projects", "teams"} {
		if err := s.tc.DB.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return s.tc.DB.Exec(`DELETE FROM users`).Error
}

func (s *StepsContext) aConsoleUserExists(email, password string) error {
	hash, err := token.HashPassword(password)
	if err != nil {
		return err
	}
	return s.tc.DB.Exec(`
		INSERT INTO users (user_name, email, password, status, operator, ak)
		VALUES (?, ?, ?, '正常', 1, 'AKIAINTEGRATION')
	`, strings.Split(email, "@")[0], email, hash).Error
}

func (s *StepsContext) iAmAuthenticatedAs(email, password string) error {
	req, err := http.NewRequest("GET", s.tc.ServerURL+"/user/get_token", nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-USER-NAME", email)
	req.Header.Set("X-USER-PASSWORD", password)

	env, err := s.do(req)
	if err != nil {
		return err
	}
	if !env.Succeeded || env.Message == nil {
		return fmt.Errorf("token request failed: %+v", env)
	}

	s.authEmail = email
	s.authToken = *env.Message
	return nil
}

func (s *StepsContext) iCreateATeam(teamName, status string) error {
	form := url.Values{}
	form.Set("team_name", teamName)
	form.Set("status", status)
	form.Set("leader_id", "1")
	form.Set("leader_name", "lead")
	return s.submitForm("PUT", "/team/create", form)
}

func (s *StepsContext) teamShouldExist(teamName string) error {
	var count int64
	if err := s.tc.DB.Raw(`SELECT COUNT(*) FROM teams WHERE team_name = ?`, teamName).Scan(&count).Error; err != nil {
		return err
	}
	if count != 1 {
		return fmt.Errorf("expected 1 team named %s, found %d", teamName, count)
	}
	return nil
}

func (s *StepsContext) iCreateAProject(projectName, status string) error {
	form := url.Values{}
	form.Set("project_name", projectName)
	form.Set("status", status)
	form.Set("owner_id", "1")
	form.Set("owner_name", "owner")
	return s.submitForm("PUT", "/project/create", form)
}

func (s *StepsContext) iBatchDeleteAllProjects() error {
	var ids []int64
	if err := s.tc.DB.Raw(`SELECT id FROM projects`).Scan(&ids).Error; err != nil {
		return err
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	form := url.Values{}
	form.Set("project_ids", strings.Join(parts, ","))
	return s.submitForm("DELETE", "/project/batch_delete", form)
}

func (s *StepsContext) iBatchDeleteProjectsEmpty() error {
	return s.submitForm("DELETE", "/project/batch_delete", url.Values{})
}

func (s *StepsContext) registryShouldContainProjects(want int) error {
	var count int64
	if err := s.tc.DB.Raw(`SELECT COUNT(*) FROM projects`).Scan(&count).Error; err != nil {
		return err
	}
	if count != int64(want) {
		return fmt.Errorf("expected %d projects, found %d", want, count)
	}
	return nil
}

func (s *StepsContext) iCreateARepository(repoName, projectName string) error {
	form := url.Values{}
	form.Set("repo_name", repoName)
	form.Set("description", "integration test repository")
	form.Set("status", "正常")
	form.Set("project_id", "1")
	form.Set("project_name", projectName)
	form.Set("owner_id", "1")
	form.Set("owner_name", "owner")
	return s.submitForm("PUT", "/repo/create", form)
}

func (s *StepsContext) iDeleteTheRepository(repoName string) error {
	return s.submitForm("DELETE", "/repo/delete/"+repoName, nil)
}

func (s *StepsContext) iFetchTheRepository(repoName string) error {
	return s.submitForm("GET", "/repo/get/"+repoName, nil)
}

func (s *StepsContext) repositoryShouldNotExist(repoName string) error {
	var count int64
	if err := s.tc.DB.Raw(`SELECT COUNT(*) FROM repos WHERE repo_name = ?`, repoName).Scan(&count).Error; err != nil {
		return err
	}
	if count != 0 {
		return fmt.Errorf("expected no repos named %s, found %d", repoName, count)
	}
	return nil
}

func (s *StepsContext) theResponseShouldSucceed() error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if !s.response.Succeeded {
		return fmt.Errorf("expected success, got failure: %s", s.message())
	}
	return nil
}

func (s *StepsContext) theResponseShouldFail() error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if s.response.Succeeded {
		return fmt.Errorf("expected failure, got success: %s", s.message())
	}
	return nil
}

func (s *StepsContext) theMessageShouldBe(want string) error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if got := s.message(); got != want {
		return fmt.Errorf("expected message %q, got %q", want, got)
	}
	return nil
}

func (s *StepsContext) message() string {
	if s.response == nil || s.response.Message == nil {
		return ""
	}
	return *s.response.Message
}

func (s *StepsContext) submitForm(method, path string, form url.Values) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, s.tc.ServerURL+path, body)
	if err != nil {
		return err
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if s.authToken != "" {
		req.Header.Set("X-USER-NAME", s.authEmail)
		req.Header.Set("X-USER-TOKEN", s.authToken)
	}

	env, err := s.do(req)
	if err != nil {
		return err
	}
	s.response = env
	return nil
}

func (s *StepsContext) do(req *http.Request) (*envelope, error) {
	resp, err := s.tc.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode envelope: %w (%s)", err, string(data))
	}
	return &env, nil
}
