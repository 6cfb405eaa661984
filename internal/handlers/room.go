package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/suyashdayal/treechat-api/internal/database"
	"github.com/suyashdayal/treechat-api/internal/handlers/dto"
	"github.com/suyashdayal/treechat-api/internal/models"
)

type RoomHandler struct {
	db database.Store
}

func NewRoomHandler(db database.Store) *RoomHandler {
	return &RoomHandler{db: db}
}

func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.db.ListRooms()
	if err != nil {
		respondError(c, NewInternalError(err))
		return
	}

	if len(rooms) == 0 {
		respondError(c, NewNotFoundError("no rooms found"))
		return
	}

	result := make([]dto.RoomResponse, len(rooms))
	for i, room := range rooms {
		result[i] = dto.RoomResponse{
			ID:        room.ID,
			Name:      room.Name,
			AdminName: room.Admin.Name,
		}
	}

	c.JSON(http.StatusOK, result)
}

func (h *RoomHandler) GetByName(c *gin.Context) {
	name := c.Param("name")

	room, err := h.db.FindRoomByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, NewNotFoundError("room not found"))
			return
		}
		respondError(c, NewInternalError(err))
		return
	}

	c.JSON(http.StatusOK, dto.RoomResponse{
		ID:        room.ID,
		Name:      room.Name,
		AdminName: room.Admin.Name,
	})
}

// Create validates in order: required fields, duplicate room name, admin existence.
func (h *RoomHandler) Create(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, NewValidationError("name and room_admin_name are required"))
		return
	}

	if _, err := h.db.FindRoomByName(req.Name); err == nil {
		respondError(c, NewConflictError("a room with that name already exists"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, NewInternalError(err))
		return
	}

	admin, err := h.db.FindUserByName(req.RoomAdminName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, NewConflictError("room admin does not exist"))
			return
		}
		respondError(c, NewInternalError(err))
		return
	}

	room := &models.Room{
		Name:    req.Name,
		AdminID: admin.ID,
	}

	if err := h.db.CreateRoom(room); err != nil {
		respondError(c, storeError(err))
		return
	}

	c.JSON(http.StatusCreated, dto.RoomResponse{
		ID:        room.ID,
		Name:      room.Name,
		AdminName: admin.Name,
	})
}
