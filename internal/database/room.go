package database

import (
	"github.com/suyashdayal/treechat-api/internal/models"
)

func (d *Database) CreateRoom(room *models.Room) error {
	return d.db.Create(room).Error
}

func (d *Database) FindRoomByName(name string) (*models.Room, error) {
	var room models.Room
	if err := d.db.Preload("Admin").Where("name = ?", name).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (d *Database) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := d.db.Preload("Admin").Order("_id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// RoomsAdministeredBy lists the rooms a user owns, oldest first.
func (d *Database) RoomsAdministeredBy(userID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := d.db.Where("admin_id = ?", userID).Order("_id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}
