package redis

import (
	game_constants "Trazo/constants/game"
	redis_models "Trazo/models/redis"
	"Trazo/services/game"
	redis_utils "Trazo/services/redis/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient handles Redis operations. It implements the room store
// contract the game core consumes: a replicated JSON document per room,
// a publish on every write, and an append-only chat log.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// SaveRoomState stores a room's replicated document and publishes the new
// snapshot to the room's update channel so every subscriber observes it.
// Key format: "room:{id}:state"
// TTL: 24 hours
func (rc *RedisClient) SaveRoomState(state *redis_models.RoomState) error {
	key := redis_utils.FormatRoomStateKey(state.RoomID)
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error marshaling room state: %v", err)
	}

	if err := rc.client.Set(rc.ctx, key, data, 24*time.Hour).Err(); err != nil {
		return fmt.Errorf("error saving room state: %v", err)
	}

	// Last write wins; the published payload carries the full document so
	// subscribers don't need a second round-trip.
	channel := redis_utils.FormatRoomChannel(state.RoomID)
	if err := rc.client.Publish(rc.ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("error publishing room state: %v", err)
	}
	return nil
}

// GetRoomState retrieves a room's replicated document from Redis.
// Key format: "room:{id}:state"
func (rc *RedisClient) GetRoomState(roomId string) (*redis_models.RoomState, error) {
	key := redis_utils.FormatRoomStateKey(roomId)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("error getting room state: %v", err)
	}

	var state redis_models.RoomState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("error unmarshaling room state: %v", err)
	}
	return &state, nil
}

// CommitGameStatus replaces only the game section of a room's document.
// The document is re-read first so the commit always merges into the
// latest snapshot instead of whatever the caller last observed.
func (rc *RedisClient) CommitGameStatus(roomId string, game *redis_models.GameStatus) error {
	state, err := rc.GetRoomState(roomId)
	if err != nil {
		return fmt.Errorf("error reading room state for commit: %v", err)
	}
	state.Game = *game
	return rc.SaveRoomState(state)
}

// CommitGuess records one player's correct guess in a room's document.
// Unlike CommitGameStatus this never replaces the game section wholesale:
// only the guesser's set membership and score are written into the
// re-read snapshot, so a guesser acting on a stale view cannot clobber
// the owner's countdown state or a concurrent guesser's commit.
func (rc *RedisClient) CommitGuess(roomId string, playerId string, points int) error {
	state, err := rc.GetRoomState(roomId)
	if err != nil {
		return fmt.Errorf("error reading room state for guess: %v", err)
	}

	if state.Game.HasGuessed(playerId) {
		return nil
	}
	state.Game = *game.ApplyGuess(&state.Game, playerId, points)
	return rc.SaveRoomState(state)
}

// SubscribeRoom subscribes to a room's update channel and invokes onChange
// with every new snapshot, in arrival order, from a dedicated goroutine.
// Returns an unsubscribe func that stops delivery and releases the
// connection.
func (rc *RedisClient) SubscribeRoom(roomId string, onChange func(*redis_models.RoomState)) (func(), error) {
	channel := redis_utils.FormatRoomChannel(roomId)
	pubsub := rc.client.Subscribe(rc.ctx, channel)

	// Force the subscription to be established before returning, so a
	// commit racing with Subscribe isn't silently missed.
	if _, err := pubsub.Receive(rc.ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("error subscribing to room %s: %v", roomId, err)
	}

	go func() {
		for msg := range pubsub.Channel() {
			var state redis_models.RoomState
			if err := json.Unmarshal([]byte(msg.Payload), &state); err != nil {
				log.Printf("[SUBSCRIBE-ERROR] Bad payload on %s: %v", channel, err)
				continue
			}
			onChange(&state)
		}
	}()

	unsubscribe := func() {
		if err := pubsub.Close(); err != nil {
			log.Printf("[SUBSCRIBE-ERROR] Error closing subscription for room %s: %v", roomId, err)
		}
	}
	return unsubscribe, nil
}

// AppendChatMessage appends a message to the room's chat log, keeping only
// the newest entries (the frontend never renders more than that anyway).
// Key format: "room:{id}:chat"
func (rc *RedisClient) AppendChatMessage(roomId string, msg redis_models.ChatMessage) error {
	key := redis_utils.FormatChatHistoryKey(roomId)
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("error marshaling chat message: %v", err)
	}

	pipe := rc.client.Pipeline()
	pipe.RPush(rc.ctx, key, data)
	pipe.LTrim(rc.ctx, key, int64(-game_constants.ChatHistoryLimit), -1)
	pipe.Expire(rc.ctx, key, 24*time.Hour)
	if _, err := pipe.Exec(rc.ctx); err != nil {
		return fmt.Errorf("error appending chat message: %v", err)
	}
	return nil
}

// AppendSystemMessage appends an announcement authored by the game itself.
func (rc *RedisClient) AppendSystemMessage(roomId string, text string) error {
	return rc.AppendChatMessage(roomId, redis_models.NewSystemMessage(text))
}

// GetChatHistory returns the room's chat log, oldest first.
func (rc *RedisClient) GetChatHistory(roomId string) ([]redis_models.ChatMessage, error) {
	key := redis_utils.FormatChatHistoryKey(roomId)
	entries, err := rc.client.LRange(rc.ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("error getting chat history: %v", err)
	}

	messages := make([]redis_models.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		var msg redis_models.ChatMessage
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			return nil, fmt.Errorf("error unmarshaling chat message: %v", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// GetDefaultWords returns the shared default word list. When the key was
// never seeded the bundled list is used instead, so rooms stay playable.
// Key format: "words:default" (JSON array of strings)
func (rc *RedisClient) GetDefaultWords() ([]string, error) {
	data, err := rc.client.Get(rc.ctx, redis_utils.FormatDefaultWordsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return game_constants.DefaultWords, nil
		}
		return nil, fmt.Errorf("error getting default words: %v", err)
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("error unmarshaling default words: %v", err)
	}
	return words, nil
}

// DeleteRoomState removes a room's replicated document. Called when the
// last participant leaves; the chat log is cleaned up separately.
func (rc *RedisClient) DeleteRoomState(roomId string) error {
	if err := rc.client.Del(rc.ctx, redis_utils.FormatRoomStateKey(roomId)).Err(); err != nil {
		return fmt.Errorf("error deleting room state: %v", err)
	}
	return nil
}
