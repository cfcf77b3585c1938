package models

import "time"

type Device struct {
	ID              uint   `gorm:"primaryKey"`
	SerialNumber    string `gorm:"uniqueIndex;size:191;not null"`
	AssetTag        string `gorm:"size:128"`
	DeviceName      string `gorm:"size:255"`
	LastSubmittedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
