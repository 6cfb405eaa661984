package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/suyashdayal/treechat-api/internal/config"
	"github.com/suyashdayal/treechat-api/internal/database"
	"github.com/suyashdayal/treechat-api/internal/handlers"
	"github.com/suyashdayal/treechat-api/internal/middleware"
)

func main() {
	cfg := config.Load()

	dbConn := &database.Database{}
	if err := dbConn.Connect(cfg.DSN()); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	userH := handlers.NewUserHandler(dbConn)
	roomH := handlers.NewRoomHandler(dbConn)
	messageH := handlers.NewMessageHandler(dbConn)

	router := gin.Default()
	router.Use(middleware.RequestID())
	APIEndpoints(router, userH, roomH, messageH)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
