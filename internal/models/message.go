package models

import "time"

type Message struct {
	ID       uint   `gorm:"column:_id;primaryKey"`
	Body     string `gorm:"type:text;not null"`
	SenderID uint   `gorm:"not null"`
	RoomID   uint   `gorm:"not null"`

	CreatedAt time.Time

	Sender User `gorm:"foreignKey:SenderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Room   Room `gorm:"foreignKey:RoomID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
