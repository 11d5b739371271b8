package store

import (
	"errors"

	"github.com/nwcdlabs/codecommit-admin/pkg/model"
)

// ErrTeamNotFound is returned when a team doesn't exist in the registry
var ErrTeamNotFound = errors.New("team not found")

// TeamsStore abstracts team registry operations, including the member and
// policy association rows
type TeamsStore interface {
	// ListTeams returns all cached team rows
	ListTeams() ([]model.Team, error)

	// GetTeam retrieves a team by id.
	// Returns ErrTeamNotFound if no row exists.
	GetTeam(id int64) (*model.Team, error)

	// CreateTeam inserts a new team row
	CreateTeam(team *model.Team) error

	// UpdateTeamName changes the team's name
	UpdateTeamName(id int64, teamName string) error

	// UpdateTeamStatus changes the team's status
	UpdateTeamStatus(id int64, status string) error

	// DeleteTeam removes the team row
	DeleteTeam(id int64) error

	// BatchDeleteTeams removes all teams with the given ids in one statement
	BatchDeleteTeams(ids []int64) error

	// AddMember records a user's membership of a team
	AddMember(teamName, userName string) error

	// DeleteMember removes a user's membership of a team
	DeleteMember(teamName, userName string) error

	// ListMembers returns the membership rows for a team
	ListMembers(teamName string) ([]model.TeamMember, error)

	// AttachPolicy records a policy attachment to a team
	AttachPolicy(teamName, policyArn string) error

	// DetachPolicy removes a policy attachment from a team
	DetachPolicy(teamName, policyArn string) error

	// ListPolicies returns the policy attachment rows for a team
	ListPolicies(teamName string) ([]model.TeamPolicy, error)
}
