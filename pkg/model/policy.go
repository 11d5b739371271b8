package model

import "time"

// Policy is a generated IAM managed policy. Detail holds the JSON document
// that was submitted to the provider; AwsArn caches the resulting policy ARN
// so attach/detach and delete never need a lookup.
type Policy struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PolicyName string    `gorm:"column:policy_name;uniqueIndex" json:"policy_name"`
	Detail     string    `gorm:"column:detail" json:"detail"`
	Status     string    `gorm:"column:status" json:"status"`
	Created    time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Updated    time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
	Operator   int64     `gorm:"column:operator" json:"operator"`
	AwsArn     string    `gorm:"column:aws_arn" json:"aws_arn"`
}

func (Policy) TableName() string {
	return "policies"
}
