package model

import "time"

// Project is a local-only container; it has no remote counterpart.
type Project struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProjectName string    `gorm:"column:project_name" json:"project_name"`
	Status      string    `gorm:"column:status" json:"status"`
	Created     time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Updated     time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
	OwnerID     int64     `gorm:"column:owner_id" json:"owner_id"`
	OwnerName   string    `gorm:"column:owner_name" json:"owner_name"`
	Operator    int64     `gorm:"column:operator" json:"operator"`
}

func (Project) TableName() string {
	return "projects"
}
