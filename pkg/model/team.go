package model

import "time"

// Team mirrors an IAM group. TeamName is the natural key and the remote
// group name.
type Team struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TeamName   string    `gorm:"column:team_name;uniqueIndex" json:"team_name"`
	Status     string    `gorm:"column:status" json:"status"`
	Created    time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Updated    time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
	LeaderID   int64     `gorm:"column:leader_id" json:"leader_id"`
	LeaderName string    `gorm:"column:leader_name" json:"leader_name"`
	Operator   int64     `gorm:"column:operator" json:"operator"`
	AwsArn     string    `gorm:"column:aws_arn" json:"aws_arn"`
}

func (Team) TableName() string {
	return "teams"
}
