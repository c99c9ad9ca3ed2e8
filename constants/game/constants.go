package game_constants

// Seconds the drawer has to pick a word before the first option is auto-picked
const WordSelectionSeconds = 10

// Debounce window for system announcements so rapid transitions don't flood the chat
const AnnounceDebounceMillis = 500

// Default room settings, applied when the settings editor never touched a room
const (
	DefaultMaxPlayers = 8
	DefaultDrawTime   = 90 // seconds
	DefaultRounds     = 3
	DefaultWordCount  = 3 // words offered per turn
	DefaultHints      = 2
)

// Chat history cap, same limit the frontend queries with
const ChatHistoryLimit = 50

// Points awarded for an instant correct guess
const MaxGuessScore = 100
