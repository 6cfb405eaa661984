package dto

type CreateRoomRequest struct {
	Name          string `json:"name" form:"name" binding:"required"`
	RoomAdminName string `json:"room_admin_name" form:"room_admin_name" binding:"required"`
}

type RoomResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	AdminName string `json:"admin_name"`
}
