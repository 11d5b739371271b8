package model

import "time"

// Repo mirrors a CodeCommit repository. RepoName is the natural key and is
// expected to be unique at the provider.
type Repo struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProjectID     int64     `gorm:"column:project_id" json:"project_id"`
	ProjectName   string    `gorm:"column:project_name" json:"project_name"`
	OwnerID       int64     `gorm:"column:owner_id" json:"owner_id"`
	OwnerName     string    `gorm:"column:owner_name" json:"owner_name"`
	RepoName      string    `gorm:"column:repo_name;uniqueIndex" json:"repo_name"`
	Description   string    `gorm:"column:description" json:"description"`
	Status        string    `gorm:"column:status" json:"status"`
	OriginLink    string    `gorm:"column:origin_link" json:"origin_link"`
	Created       time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Updated       time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
	Operator      int64     `gorm:"column:operator" json:"operator"`
	AwsArn        string    `gorm:"column:aws_arn" json:"aws_arn"`
	CloneURLHTTPS string    `gorm:"column:clone_url_https" json:"clone_url_https"`
	CloneURLSSH   string    `gorm:"column:clone_url_ssh" json:"clone_url_ssh"`
}

func (Repo) TableName() string {
	return "repos"
}
