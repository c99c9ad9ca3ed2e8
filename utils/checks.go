package utils

import (
	models "Trazo/models/postgres"

	"gorm.io/gorm"
)

// CheckRoomExists returns the durable room row, or an error when the id is
// unknown.
func CheckRoomExists(db *gorm.DB, roomId string) (*models.Room, error) {
	var room models.Room
	if err := db.Where("id = ?", roomId).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// IsParticipantInRoom reports whether the participant has joined the room
// through the API.
func IsParticipantInRoom(db *gorm.DB, roomId string, participantId string) (bool, error) {
	var count int64
	err := db.Model(&models.Participant{}).
		Where("room_id = ? AND id = ?", roomId, participantId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
