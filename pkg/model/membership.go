package model

import "time"

// Membership enrolls a client in a group. Like AccessGrant, the pair is the
// entire identity.
type Membership struct {
	ClientID  int64     `gorm:"column:client_id;primaryKey"`
	GroupID   int64     `gorm:"column:group_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Membership) TableName() string {
	return "memberships"
}
