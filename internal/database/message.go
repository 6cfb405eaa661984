package database

import (
	"github.com/suyashdayal/treechat-api/internal/models"
)

func (d *Database) CreateMessage(message *models.Message) error {
	return d.db.Create(message).Error
}

// FindMessagesByRoom returns a room's messages in insertion order.
func (d *Database) FindMessagesByRoom(roomID uint) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Where("room_id = ?", roomID).
		Order("_id ASC").
		Preload("Sender").
		Preload("Room").
		Find(&messages).Error

	if err != nil {
		return nil, err
	}

	return messages, nil
}
