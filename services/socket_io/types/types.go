package socketio_types

import (
	"Trazo/services/game"
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer is a struct that contains the socket.io server and the
// per-connection bookkeeping: the socket itself, the game driver ticking
// for that client, and the room-state subscription feeding its UI.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track playerID -> socket connections
	UserConnections map[string]*socket.Socket
	drivers         map[string]*game.Driver
	stateFeeds      map[string]func()
	mutex           sync.RWMutex
}

func NewSocketServer() *SocketServer {
	s := &SocketServer{}
	s.Init()
	return s
}

// Init allocates the connection maps. Must run before the first handler
// fires, otherwise the first write panics.
func (s *SocketServer) Init() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections = make(map[string]*socket.Socket)
	s.drivers = make(map[string]*game.Driver)
	s.stateFeeds = make(map[string]func())
}

// Add methods to manage connections
func (s *SocketServer) AddConnection(playerID string, socket *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.UserConnections[playerID] = socket
}

func (s *SocketServer) RemoveConnection(playerID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.UserConnections, playerID)
}

func (s *SocketServer) GetConnection(playerID string) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	socket, exists := s.UserConnections[playerID]
	return socket, exists
}

// AttachDriver registers the game driver and state feed for a joined
// client, stopping any previous ones (a client can only be in one room).
func (s *SocketServer) AttachDriver(playerID string, driver *game.Driver, stopFeed func()) {
	s.mutex.Lock()
	old, oldFeed := s.drivers[playerID], s.stateFeeds[playerID]
	s.drivers[playerID] = driver
	s.stateFeeds[playerID] = stopFeed
	s.mutex.Unlock()

	if old != nil {
		old.Stop()
	}
	if oldFeed != nil {
		oldFeed()
	}
}

func (s *SocketServer) GetDriver(playerID string) (*game.Driver, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	driver, exists := s.drivers[playerID]
	return driver, exists
}

// DetachDriver stops and forgets the client's driver and state feed.
func (s *SocketServer) DetachDriver(playerID string) {
	s.mutex.Lock()
	driver, feed := s.drivers[playerID], s.stateFeeds[playerID]
	delete(s.drivers, playerID)
	delete(s.stateFeeds, playerID)
	s.mutex.Unlock()

	if driver != nil {
		driver.Stop()
	}
	if feed != nil {
		feed()
	}
}
