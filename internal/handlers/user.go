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

type UserHandler struct {
	db database.Store
}

func NewUserHandler(db database.Store) *UserHandler {
	return &UserHandler{db: db}
}

// List returns every user without passwords. An empty table is a 404, not an
// empty list.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.db.ListUsers()
	if err != nil {
		respondError(c, NewInternalError(err))
		return
	}

	if len(users) == 0 {
		respondError(c, NewNotFoundError("no users found"))
		return
	}

	result := make([]dto.UserSummary, len(users))
	for i, user := range users {
		result[i] = dto.UserSummary{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		}
	}

	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) GetByName(c *gin.Context) {
	name := c.Param("name")

	user, err := h.db.FindUserByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, NewNotFoundError("user not found"))
			return
		}
		respondError(c, NewInternalError(err))
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
	})
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, NewValidationError("name and password are required"))
		return
	}

	if _, err := h.db.FindUserByName(req.Name); err == nil {
		respondError(c, NewConflictError("a user with that name already exists"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, NewInternalError(err))
		return
	}

	if *req.Password == "" {
		respondError(c, NewConflictError("password must not be empty"))
		return
	}

	user := &models.User{
		Name:     req.Name,
		Password: *req.Password,
		Email:    req.Email,
	}

	if err := h.db.CreateUser(user); err != nil {
		respondError(c, storeError(err))
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Password: user.Password,
	})
}
