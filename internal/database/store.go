package database

import "github.com/suyashdayal/treechat-api/internal/models"

// Store is the persistence contract the resource handlers depend on.
type Store interface {
	ListUsers() ([]models.User, error)
	FindUserByName(name string) (*models.User, error)
	CreateUser(user *models.User) error

	ListRooms() ([]models.Room, error)
	FindRoomByName(name string) (*models.Room, error)
	CreateRoom(room *models.Room) error
	RoomsAdministeredBy(userID uint) ([]models.Room, error)

	FindMessagesByRoom(roomID uint) ([]models.Message, error)
	CreateMessage(message *models.Message) error
}
