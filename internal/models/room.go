package models

import "time"

type Room struct {
	ID      uint   `gorm:"column:_id;primaryKey"`
	Name    string `gorm:"uniqueIndex;not null"`
	AdminID uint   `gorm:"not null"`

	CreatedAt time.Time

	Admin    User      `gorm:"foreignKey:AdminID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Messages []Message `gorm:"foreignKey:RoomID"`
}
