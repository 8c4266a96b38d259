package model

import "time"

// Client represents a consumer of secrets, typically a service instance.
type Client struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;not null;uniqueIndex"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
	CreatedBy   string    `gorm:"column:created_by"`
	UpdatedBy   string    `gorm:"column:updated_by"`
}

func (Client) TableName() string {
	return "clients"
}
