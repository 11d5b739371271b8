package model

import "time"

// User is a console user mirrored to an IAM account. Email doubles as the
// remote IAM user name and is the natural key.
type User struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserName    string    `gorm:"column:user_name" json:"user_name"`
	Email       string    `gorm:"column:email;uniqueIndex" json:"email"`
	Password    string    `gorm:"column:password" json:"password"`
	Status      string    `gorm:"column:status" json:"status"`
	Created     time.Time `gorm:"column:created;autoCreateTime" json:"created"`
	Updated     time.Time `gorm:"column:updated;autoUpdateTime" json:"updated"`
	Operator    int64     `gorm:"column:operator" json:"operator"`
	IamArn      string    `gorm:"column:iam_arn" json:"iam_arn"`
	AccessKeyID string    `gorm:"column:ak" json:"ak"`
	SecretKey   string    `gorm:"column:sk" json:"sk"`
}

func (User) TableName() string {
	return "users"
}
