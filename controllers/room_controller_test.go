package controllers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetRoomInfo(t *testing.T) {
	// Setup test environment
	gin.SetMode(gin.TestMode)
	db, mock, _ := sqlmock.New()
	defer db.Close()

	// Create controller with mocked dependencies
	roomController := &RoomController{DB: db}

	// Setup router
	router := gin.New()
	router.GET("/rooms/:room_id", roomController.GetRoomInfo)

	fmt.Println("Request: GET /rooms/abc123")

	mock.ExpectQuery(`SELECT id, owner_id, max_players, draw_time, rounds, games_played, is_game_running FROM rooms WHERE id = \$1`).
		WithArgs("abc123").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "max_players", "draw_time", "rounds", "games_played", "is_game_running",
		}).AddRow("abc123", "p1", 8, 90, 3, 2, false))

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM participants WHERE room_id = \$1`).
		WithArgs("abc123").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	mock.ExpectQuery(`SELECT name FROM participants WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Ana"))

	// Create HTTP request
	req, _ := http.NewRequest("GET", "/rooms/abc123", nil)
	w := httptest.NewRecorder()

	// Execute request
	router.ServeHTTP(w, req)

	// Verify response
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	fmt.Println("Response:", w.Body.String())

	// Verify response fields
	assert.Equal(t, "abc123", response["room_id"])
	assert.Equal(t, "p1", response["owner_id"])
	assert.Equal(t, "Ana", response["owner_name"])
	assert.Equal(t, float64(8), response["max_players"])
	assert.Equal(t, float64(4), response["player_count"])
	assert.Equal(t, false, response["is_game_running"])

	// Verify all expectations were met
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoomInfoNotFound(t *testing.T) {
	// Setup test environment
	gin.SetMode(gin.TestMode)
	db, mock, _ := sqlmock.New()
	defer db.Close()

	// Create controller with mocked dependencies
	roomController := &RoomController{DB: db}

	// Setup router
	router := gin.New()
	router.GET("/rooms/:room_id", roomController.GetRoomInfo)

	fmt.Println("Request: GET /rooms/nonexistent")

	mock.ExpectQuery(`SELECT id, owner_id, max_players, draw_time, rounds, games_played, is_game_running FROM rooms WHERE id = \$1`).
		WithArgs("nonexistent").
		WillReturnError(sql.ErrNoRows)

	// Create HTTP request
	req, _ := http.NewRequest("GET", "/rooms/nonexistent", nil)
	w := httptest.NewRecorder()

	// Execute request
	router.ServeHTTP(w, req)

	// Verify response
	fmt.Println("Response:", w.Body.String())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
