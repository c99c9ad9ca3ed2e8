package routes

import (
	"Trazo/controllers"
	"Trazo/services/redis"
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient) {

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("[ROUTES-ERROR] Error getting sql.DB handle: %v", err)
	}

	// Create controllers
	roomController := &controllers.RoomController{DB: sqlDB}

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	rooms := api.Group("/rooms")
	{
		rooms.POST("", controllers.CreateRoom(db))

		rooms.GET("/:room_id", roomController.GetRoomInfo)

		rooms.POST("/:room_id/join", controllers.JoinRoom(db))

		rooms.PATCH("/:room_id/settings", controllers.UpdateRoomSettings(db, redisClient))

		rooms.GET("/:room_id/results", controllers.GetRoomResults(db))
	}
}
