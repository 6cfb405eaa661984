package database

import (
	"github.com/suyashdayal/treechat-api/internal/models"
)

func (d *Database) CreateUser(user *models.User) error {
	if err := d.db.Create(user).Error; err != nil {
		return err
	}
	return nil
}

// FindUserByName does an exact, case-sensitive match on the unique name column.
func (d *Database) FindUserByName(name string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("name = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := d.db.Order("_id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
