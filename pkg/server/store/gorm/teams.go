package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nwcdlabs/codecommit-admin/pkg/model"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
)

// Ensure TeamsStore implements store.TeamsStore
var _ store.TeamsStore = (*TeamsStore)(nil)

// TeamsStore implements store.TeamsStore using GORM
type TeamsStore struct {
	db *gorm.DB
}

// NewTeamsStore creates a new TeamsStore
func NewTeamsStore(db *gorm.DB) *TeamsStore {
	return &TeamsStore{db: db}
}

// ListTeams returns all cached team rows
func (s *TeamsStore) ListTeams() ([]model.Team, error) {
	teams := make([]model.Team, 0)
	if err := s.db.Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// GetTeam retrieves a team by id.
func (s *TeamsStore) GetTeam(id int64) (*model.Team, error) {
	var team model.Team
	tx := s.db.Where("id = ?", id).First(&team)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrTeamNotFound
		}
		return nil, tx.Error
	}
	return &team, nil
}

// CreateTeam inserts a new team row
func (s *TeamsStore) CreateTeam(team *model.Team) error {
	return s.db.Create(team).Error
}

// UpdateTeamName changes the team's name
func (s *TeamsStore) UpdateTeamName(id int64, teamName string) error {
	return s.db.Model(&model.Team{}).Where("id = ?", id).Update("team_name", teamName).Error
}

// UpdateTeamStatus changes the team's status
func (s *TeamsStore) UpdateTeamStatus(id int64, status string) error {
	return s.db.Model(&model.Team{}).Where("id = ?", id).Update("status", status).Error
}

// DeleteTeam removes the team row
func (s *TeamsStore) DeleteTeam(id int64) error {
	return s.db.Where("id = ?", id).Delete(&model.Team{}).Error
}

// BatchDeleteTeams removes all teams with the given ids in one statement
func (s *TeamsStore) BatchDeleteTeams(ids []int64) error {
	return s.db.Where("id IN ?", ids).Delete(&model.Team{}).Error
}

// AddMember records a user's membership of a team
func (s *TeamsStore) AddMember(teamName, userName string) error {
	return s.db.Create(&model.TeamMember{TeamName: teamName, UserName: userName}).Error
}

// DeleteMember removes a user's membership of a team
func (s *TeamsStore) DeleteMember(teamName, userName string) error {
	return s.db.Where("team_name = ? AND user_name = ?", teamName, userName).Delete(&model.TeamMember{}).Error
}

// ListMembers returns the membership rows for a team
func (s *TeamsStore) ListMembers(teamName string) ([]model.TeamMember, error) {
	members := make([]model.TeamMember, 0)
	if err := s.db.Where("team_name = ?", teamName).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// AttachPolicy records a policy attachment to a team
func (s *TeamsStore) AttachPolicy(teamName, policyArn string) error {
	return s.db.Create(&model.TeamPolicy{TeamName: teamName, PolicyArn: policyArn}).Error
}

// DetachPolicy removes a policy attachment from a team
func (s *TeamsStore) DetachPolicy(teamName, policyArn string) error {
	return s.db.Where("team_name = ? AND policy_arn = ?", teamName, policyArn).Delete(&model.TeamPolicy{}).Error
}

// ListPolicies returns the policy attachment rows for a team
func (s *TeamsStore) ListPolicies(teamName string) ([]model.TeamPolicy, error) {
	policies := make([]model.TeamPolicy, 0)
	if err := s.db.Where("team_name = ?", teamName).Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}
