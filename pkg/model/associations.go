package model

import "time"

// TeamMember links a user (by remote user name, i.e. email) to a team.
// Link rows have no independent lifecycle.
type TeamMember struct {
	TeamName string `gorm:"column:team_name;primaryKey" json:"team_name"`
	UserName string `gorm:"column:user_name;primaryKey" json:"user_name"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

// TeamPolicy links a policy (by provider ARN) to a team.
type TeamPolicy struct {
	TeamName  string `gorm:"column:team_name;primaryKey" json:"team"`
	PolicyArn string `gorm:"column:policy_arn;primaryKey" json:"policy_arn"`
}

func (TeamPolicy) TableName() string {
	return "team_policies"
}

// TeamProject links a team to a project. Names are denormalized alongside
// the ids, matching the registry schema.
type TeamProject struct {
	TeamID      int64     `gorm:"column:team_id;primaryKey" json:"group_id"`
	TeamName    string    `gorm:"column:team_name" json:"group_name"`
	ProjectID   int64     `gorm:"column:project_id;primaryKey" json:"project_id"`
	ProjectName string    `gorm:"column:project_name" json:"project_name"`
	Created     time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Updated     time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
	Operator    int64     `gorm:"column:operator" json:"operator"`
}

func (TeamProject) TableName() string {
	return "team_projects"
}
