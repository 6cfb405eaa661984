package dto

// CreateUserRequest is the payload for user creation. Password binds as a
// pointer so a missing field (400) is distinguishable from an empty one (409).
type CreateUserRequest struct {
	Name     string  `json:"name" form:"name" binding:"required"`
	Password *string `json:"password" form:"password" binding:"required"`
	Email    *string `json:"email" form:"email"`
}

// UserSummary is the listing shape: no password.
type UserSummary struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

type UserResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Email    *string `json:"email"`
	Password string  `json:"password"`
}
