package model

import "time"

// AccessGrant links a group to a secret its members may read. The pair is
// the entire identity; there is nothing to update on an existing grant.
type AccessGrant struct {
	SecretID  int64     `gorm:"column:secret_id;primaryKey"`
	GroupID   int64     `gorm:"column:group_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (AccessGrant) TableName() string {
	return "accessgrants"
}
