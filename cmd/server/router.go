package main

import (
	"github.com/gin-gonic/gin"

	"github.com/suyashdayal/treechat-api/internal/handlers"
)

func APIEndpoints(r *gin.Engine, userH *handlers.UserHandler, roomH *handlers.RoomHandler, messageH *handlers.MessageHandler) {
	users := r.Group("/users")
	{
		users.GET("", userH.List)
		users.GET("/:name", userH.GetByName)
		users.POST("/new", userH.Create)
	}

	rooms := r.Group("/rooms")
	{
		rooms.GET("", roomH.List)
		rooms.GET("/:name", roomH.GetByName)
		rooms.POST("/new", roomH.Create)
	}

	messages := r.Group("/messages")
	{
		messages.GET("/:room_name", messageH.ListByRoom)
		messages.POST("/new", messageH.Create)
	}
}
