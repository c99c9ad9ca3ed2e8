package controllers

import (
	game_constants "Trazo/constants/game"
	models "Trazo/models/postgres"
	redis_models "Trazo/models/redis"
	"Trazo/services/redis"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

type createRoomRequest struct {
	PlayerName  string `json:"player_name" binding:"required"`
	MaxPlayers  int    `json:"max_players"`
	DrawTime    int    `json:"draw_time"`
	Rounds      int    `json:"rounds"`
	WordCount   int    `json:"word_count"`
	Hints       int    `json:"hints"`
	CustomWords string `json:"custom_words"`
}

// CreateRoom creates a room plus its owner's membership row. Settings that
// are left out of the body fall back to the column defaults.
func CreateRoom(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player_name is required"})
			return
		}

		newRoom := models.Room{
			MaxPlayers:  defaultInt(req.MaxPlayers, game_constants.DefaultMaxPlayers),
			DrawTime:    defaultInt(req.DrawTime, game_constants.DefaultDrawTime),
			Rounds:      defaultInt(req.Rounds, game_constants.DefaultRounds),
			WordCount:   defaultInt(req.WordCount, game_constants.DefaultWordCount),
			Hints:       defaultInt(req.Hints, game_constants.DefaultHints),
			CustomWords: req.CustomWords,
		}

		owner := models.Participant{Name: req.PlayerName, IsOwner: true}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&newRoom).Error; err != nil {
				return err
			}
			owner.RoomID = newRoom.ID
			if err := tx.Create(&owner).Error; err != nil {
				return err
			}
			return tx.Model(&models.Room{}).Where("id = ?", newRoom.ID).
				Update("owner_id", owner.ID).Error
		})
		if err != nil {
			log.Printf("[ROOM-ERROR] Failed to create room: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating room"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"room_id":   newRoom.ID,
			"player_id": owner.ID,
			"message":   "Room created successfully",
		})
	}
}

type joinRoomRequest struct {
	PlayerName string `json:"player_name" binding:"required"`
}

// JoinRoom registers a new participant in an existing room. The socket
// connection picks the membership up afterwards via join_room.
func JoinRoom(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Param("room_id")

		var req joinRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player_name is required"})
			return
		}

		var room models.Room
		if err := db.Where("id = ?", roomID).First(&room).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		var memberCount int64
		if err := db.Model(&models.Participant{}).
			Where("room_id = ?", roomID).Count(&memberCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting players"})
			return
		}
		if int(memberCount) >= room.MaxPlayers {
			c.JSON(http.StatusConflict, gin.H{"error": "Room is full"})
			return
		}

		participant := models.Participant{RoomID: roomID, Name: req.PlayerName}
		if err := db.Create(&participant).Error; err != nil {
			log.Printf("[ROOM-ERROR] Failed to join room %s: %v", roomID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error joining room"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"room_id":   roomID,
			"player_id": participant.ID,
			"message":   "Joined room successfully",
		})
	}
}

type updateSettingsRequest struct {
	PlayerID    string  `json:"player_id" binding:"required"`
	MaxPlayers  *int    `json:"max_players"`
	DrawTime    *int    `json:"draw_time"`
	Rounds      *int    `json:"rounds"`
	WordCount   *int    `json:"word_count"`
	Hints       *int    `json:"hints"`
	CustomWords *string `json:"custom_words"`
}

// UpdateRoomSettings lets the owner change the game settings between games.
// A running game keeps the settings it started with.
func UpdateRoomSettings(db *gorm.DB, redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Param("room_id")

		var req updateSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player_id is required"})
			return
		}

		var room models.Room
		if err := db.Where("id = ?", roomID).First(&room).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		if room.OwnerID != req.PlayerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the room owner can change the settings"})
			return
		}
		if room.IsGameRunning {
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot change settings while a game is running"})
			return
		}

		updates := map[string]interface{}{}
		if req.MaxPlayers != nil {
			updates["max_players"] = *req.MaxPlayers
		}
		if req.DrawTime != nil {
			updates["draw_time"] = *req.DrawTime
		}
		if req.Rounds != nil {
			updates["rounds"] = *req.Rounds
		}
		if req.WordCount != nil {
			updates["word_count"] = *req.WordCount
		}
		if req.Hints != nil {
			updates["hints"] = *req.Hints
		}
		if req.CustomWords != nil {
			updates["custom_words"] = *req.CustomWords
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No settings to update"})
			return
		}

		if err := db.Model(&models.Room{}).Where("id = ?", roomID).Updates(updates).Error; err != nil {
			log.Printf("[ROOM-ERROR] Failed to update settings for room %s: %v", roomID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating settings"})
			return
		}

		// Mirror the change into the live document so the next game picks
		// the new settings up without waiting for the Redis key to expire.
		if state, err := redisClient.GetRoomState(roomID); err == nil && !state.Game.IsGameActive {
			applySettingsUpdate(&state.Settings, req)
			if err := redisClient.SaveRoomState(state); err != nil {
				log.Printf("[ROOM-ERROR] Failed to refresh room state %s: %v", roomID, err)
			}
		}

		c.JSON(http.StatusOK, gin.H{"room_id": roomID, "message": "Settings updated"})
	}
}

// GetRoomResults lists the final scoreboards of every game played in a room.
func GetRoomResults(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Param("room_id")

		var results []models.GameResult
		if err := db.Where("room_id = ?", roomID).
			Order("finished_at desc").Find(&results).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error querying results"})
			return
		}

		payload := make([]gin.H, len(results))
		for i, r := range results {
			payload[i] = gin.H{
				"rounds_played": r.RoundsPlayed,
				"scores":        r.Scores,
				"finished_at":   r.FinishedAt,
			}
		}
		c.JSON(http.StatusOK, gin.H{"room_id": roomID, "results": payload})
	}
}

func defaultInt(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

func applySettingsUpdate(s *redis_models.GameSettings, req updateSettingsRequest) {
	if req.MaxPlayers != nil {
		s.MaxPlayers = *req.MaxPlayers
	}
	if req.DrawTime != nil {
		s.DrawTime = *req.DrawTime
	}
	if req.Rounds != nil {
		s.Rounds = *req.Rounds
	}
	if req.WordCount != nil {
		s.WordCount = *req.WordCount
	}
	if req.Hints != nil {
		s.Hints = *req.Hints
	}
	if req.CustomWords != nil {
		s.CustomWords = *req.CustomWords
	}
}
