package engine

// Direction represents one of the four movement directions
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"

	// Validation constants
	MinBoardSize         = 5
	MaxBoardSize         = 100
	MinItems             = 1
	MaxBulkTicks         = 500
	SpawnAttemptsPerItem = 4
	MinTickMillis        = 20
	MaxTickMillis        = 2000

	// Documented defaults; tests pin these, do not change casually
	DefaultWidth      = 20
	DefaultHeight     = 10
	DefaultNumItems   = 3
	DefaultReward     = 1
	DefaultLevelStep  = 5
	DefaultTickMillis = 120
	DefaultStartX     = 3
	DefaultStartY     = 1
)

// DefaultStartDirection is the direction a fresh snake moves in until the
// player steers it.
const DefaultStartDirection = DirRight

// Delta returns the per-tick coordinate offset of the direction in screen
// coordinates (y grows downward).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

// IsValid reports whether d is one of the four movement directions
func (d Direction) IsValid() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

// ParseDirection converts a config or user supplied string into a Direction
func ParseDirection(s string) (Direction, bool) {
	d := Direction(s)
	return d, d.IsValid()
}

// CommandType represents the kind of player command produced by an input reader
type CommandType string

const (
	CommandMove CommandType = "move"
	CommandQuit CommandType = "quit"
	CommandNone CommandType = "none"
)

// Command represents a single decoded player input
type Command struct {
	Type      CommandType `json:"type"`
	Direction Direction   `json:"direction,omitempty"`
}

// EventType represents the outcome of advancing the snake by one tick
type EventType string

const (
	EventMoved    EventType = "moved"
	EventAte      EventType = "ate"
	EventCollided EventType = "collided"
	// EventNone is returned when Advance is called on a finished game
	EventNone EventType = "none"
)

// Collision causes recorded on GameState.Cause when the game is lost
const (
	CauseWall = "wall"
	CauseSelf = "self"
)

// Event represents the result of one tick. Item is only meaningful for
// EventAte and holds the position of the consumed item.
type Event struct {
	Type EventType `json:"type"`
	Item Position  `json:"item,omitempty"`
}

// Position represents x,y coordinates on the board interior
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Translate returns the position one cell away in the given direction
func (p Position) Translate(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Board represents the playfield interior. Coordinates 0 <= x < Width and
// 0 <= y < Height are playable; the surrounding one-cell ring exists only as
// a rendered wall.
type Board struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// InBounds reports whether p lies on the playable interior
func (b Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// IsWall reports whether p lies on the border ring immediately outside the
// interior. Cells further out are neither interior nor wall.
func (b Board) IsWall(p Position) bool {
	if b.InBounds(p) {
		return false
	}
	return p.X >= -1 && p.X <= b.Width && p.Y >= -1 && p.Y <= b.Height
}

// CellCount returns the number of playable interior cells
func (b Board) CellCount() int {
	return b.Width * b.Height
}

// GameConfig represents the game configuration from JSON
type GameConfig struct {
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	NumItems       int       `json:"num_items"`
	StartX         int       `json:"start_x"`
	StartY         int       `json:"start_y"`
	StartDirection Direction `json:"start_direction"`
	Reward         int       `json:"reward"`
	LevelStep      int       `json:"level_step"`
	// Seed fixes the item spawner's randomness; 0 means seed from the clock
	Seed int64 `json:"seed,omitempty"`
	// TickMillis is the advance cadence of the animated front-end. The
	// turn-based front-end paces on player input instead.
	TickMillis int `json:"tick_ms"`
	Messages   struct {
		Welcome   string `json:"welcome"`
		Ate       string `json:"ate"`
		WallCrash string `json:"wall_crash"`
		SelfCrash string `json:"self_crash"`
		Quit      string `json:"quit"`
		GameOver  string `json:"game_over"`
	} `json:"messages"`
}

// GameState represents the complete game state
type GameState struct {
	Board     Board      `json:"board"`
	Snake     []Position `json:"snake"` // head first
	Items     []Position `json:"items"`
	Direction Direction  `json:"direction"`
	Score     int        `json:"score"`
	Message   string     `json:"message"`
	GameOver  bool       `json:"game_over"`
	// Cause is CauseWall or CauseSelf once GameOver is set by a collision
	Cause       string       `json:"cause,omitempty"`
	ConfigName  string       `json:"config_name"`
	TickHistory []TickRecord `json:"tick_history"`
	TickCount   int          `json:"tick_count"`
}

// TickRecord represents a single tick in the game history
type TickRecord struct {
	Tick      int       `json:"tick"`
	Direction Direction `json:"direction"`
	Event     EventType `json:"event"`
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Score     int       `json:"score"`
	Timestamp int64     `json:"timestamp"`
}
