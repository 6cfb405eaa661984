package models

import "time"

type User struct {
	ID       uint    `gorm:"column:_id;primaryKey"`
	Name     string  `gorm:"uniqueIndex;not null"`
	Password string  `gorm:"not null"`
	Email    *string `gorm:"default:null"`

	CreatedAt time.Time
}
