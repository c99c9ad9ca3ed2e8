package controllers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	DB *sql.DB
}

// GetRoomInfo gets information about a room with the provided code
func (rc *RoomController) GetRoomInfo(c *gin.Context) {
	code := c.Param("room_id")

	// Query basic room information in the database
	var room_psql struct {
		ID            string `json:"room_id"`
		OwnerID       string `json:"owner_id"`
		MaxPlayers    int    `json:"max_players"`
		DrawTime      int    `json:"draw_time"`
		Rounds        int    `json:"rounds"`
		GamesPlayed   int    `json:"games_played"`
		IsGameRunning bool   `json:"is_game_running"`
	}

	err := rc.DB.QueryRow(`
		SELECT id, owner_id, max_players, draw_time, rounds, games_played, is_game_running
		FROM rooms
		WHERE id = $1
	`, code).Scan(
		&room_psql.ID, &room_psql.OwnerID, &room_psql.MaxPlayers,
		&room_psql.DrawTime, &room_psql.Rounds, &room_psql.GamesPlayed,
		&room_psql.IsGameRunning,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error querying database: " + err.Error()})
		}
		return
	}

	// Query how many players are in the room
	var playerCount int
	err = rc.DB.QueryRow(`
		SELECT COUNT(*)
		FROM participants
		WHERE room_id = $1
	`, code).Scan(&playerCount)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting players: " + err.Error()})
		return
	}

	// Get the owner's display name
	var ownerName string
	err = rc.DB.QueryRow(`
		SELECT name
		FROM participants
		WHERE id = $1
	`, room_psql.OwnerID).Scan(&ownerName)

	if err != nil && err != sql.ErrNoRows {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting owner name: " + err.Error()})
		return
	}

	// Response structure
	response := gin.H{
		"room_id":         room_psql.ID,
		"owner_id":        room_psql.OwnerID,
		"owner_name":      ownerName,
		"max_players":     room_psql.MaxPlayers,
		"draw_time":       room_psql.DrawTime,
		"rounds":          room_psql.Rounds,
		"games_played":    room_psql.GamesPlayed,
		"is_game_running": room_psql.IsGameRunning,
		"player_count":    playerCount,
	}

	c.JSON(http.StatusOK, response)
}
