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

type MessageHandler struct {
	db database.Store
}

func NewMessageHandler(db database.Store) *MessageHandler {
	return &MessageHandler{db: db}
}

// ListByRoom returns a room's messages in insertion order. Both an unknown
// room and a room with no messages yield 404.
func (h *MessageHandler) ListByRoom(c *gin.Context) {
	roomName := c.Param("room_name")

	room, err := h.db.FindRoomByName(roomName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, NewNotFoundError("room not found"))
			return
		}
		respondError(c, NewInternalError(err))
		return
	}

	messages, err := h.db.FindMessagesByRoom(room.ID)
	if err != nil {
		respondError(c, NewInternalError(err))
		return
	}

	if len(messages) == 0 {
		respondError(c, NewNotFoundError("no messages in room"))
		return
	}

	result := make([]dto.MessageResponse, len(messages))
	for i, message := range messages {
		result[i] = dto.MessageResponse{
			ID:         message.ID,
			Body:       message.Body,
			SenderName: message.Sender.Name,
			RoomName:   message.Room.Name,
		}
	}

	c.JSON(http.StatusOK, result)
}

// Create validates in order: required fields, sender existence, room
// existence, non-empty body.
func (h *MessageHandler) Create(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, NewValidationError("body, sender_name and room_name are required"))
		return
	}

	sender, err := h.db.FindUserByName(req.SenderName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, NewConflictError("sender does not exist"))
			return
		}
		respondError(c, NewInternalError(err))
		return
	}

	room, err := h.db.FindRoomByName(req.RoomName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, NewConflictError("room does not exist"))
			return
		}
		respondError(c, NewInternalError(err))
		return
	}

	if *req.Body == "" {
		respondError(c, NewConflictError("message body must not be empty"))
		return
	}

	message := &models.Message{
		Body:     *req.Body,
		SenderID: sender.ID,
		RoomID:   room.ID,
	}

	if err := h.db.CreateMessage(message); err != nil {
		respondError(c, storeError(err))
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		ID:         message.ID,
		Body:       message.Body,
		SenderName: sender.Name,
		RoomName:   room.Name,
	})
}
