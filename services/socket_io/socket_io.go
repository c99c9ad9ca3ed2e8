package socket_io

import (
	"Trazo/services/redis"
	"Trazo/services/socket_io/handlers"

	socketio_types "Trazo/services/socket_io/types"
	socketio_utils "Trazo/services/socket_io/utils"
	game_sync "Trazo/sync"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

func (sio *MySocketServer) Start(router *gin.Engine, db *gorm.DB,
	redisClient *redis.RedisClient, syncManager *game_sync.SyncManager) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: initialize the maps, otherwise the first handler panics
	(*socketio_types.SocketServer)(sio).Init()

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Identify the participant behind this socket
		success, playerID, playerName := socketio_utils.VerifyPlayerConnection(client, db)
		if !success {
			return
		}

		// Add connection to map
		(*socketio_types.SocketServer)(sio).AddConnection(playerID, client)

		fmt.Println("A player just connected!: ", playerID, playerName)

		// Join a game room; spawns this client's game driver
		client.On("join_room", handlers.HandleJoinRoom(redisClient, client, db,
			playerID, playerName, (*socketio_types.SocketServer)(sio), syncManager))

		// Leave a room voluntarily
		client.On("exit_room", handlers.HandleExitRoom(redisClient, client, db,
			playerID, (*socketio_types.SocketServer)(sio)))

		// Start a game (owner only)
		client.On("start_game", handlers.HandleStartGame(redisClient, client, db,
			playerID, (*socketio_types.SocketServer)(sio), syncManager))

		// Drawer picks one of the offered words
		client.On("select_word", handlers.HandleSelectWord(redisClient, client, db,
			playerID, (*socketio_types.SocketServer)(sio)))

		// Chat, doubling as the guess channel while a turn runs
		client.On("chat_message", handlers.HandleChatMessage(redisClient, client, db,
			playerID, playerName, (*socketio_types.SocketServer)(sio)))

		client.On("get_chat_history", handlers.HandleGetChatHistory(redisClient, client, db, playerID))

		// Full room snapshot, masked for the requesting viewer
		client.On("get_room_info", handlers.GetRoomInfo(redisClient, client, db, playerID))

		// NOTE: will remove sio connection from map and tear down drivers
		client.On("disconnecting", handlers.HandleDisconnecting(redisClient, client, db,
			playerID, (*socketio_types.SocketServer)(sio)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	fmt.Println("Socket server started")
}
