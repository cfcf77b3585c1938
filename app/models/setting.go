package models

import "time"

type Setting struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:64;not null"`
	Value     string `gorm:"size:512"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
