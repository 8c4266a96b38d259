package model

import "time"

// SecretSeries is the versionless identity of a secret. Secret content and
// its versions live outside this service; the series row is what grants and
// lookups hang off.
type SecretSeries struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;not null;uniqueIndex"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
	CreatedBy   string    `gorm:"column:created_by"`
	UpdatedBy   string    `gorm:"column:updated_by"`
}

func (SecretSeries) TableName() string {
	return "secrets"
}
