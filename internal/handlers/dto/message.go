package dto

// CreateMessageRequest references sender and room by their unique names.
type CreateMessageRequest struct {
	Body       *string `json:"body" form:"body" binding:"required"`
	SenderName string  `json:"sender_name" form:"sender_name" binding:"required"`
	RoomName   string  `json:"room_name" form:"room_name" binding:"required"`
}

type MessageResponse struct {
	ID         uint   `json:"id"`
	Body       string `json:"body"`
	SenderName string `json:"sender_name"`
	RoomName   string `json:"room_name"`
}
