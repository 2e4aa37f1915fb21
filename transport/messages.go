package transport

import "github.com/wg-forge/hextanks-client/game"

// LoginRequest is the ActionLogin payload (§6): name, password, and the
// session parameters a new game is created with.
type LoginRequest struct {
	Name       string `json:"name"`
	Password   string `json:"password"`
	Game       string `json:"game,omitempty"`
	NumTurns   int    `json:"num_turns,omitempty"`
	NumPlayers int    `json:"num_players,omitempty"`
	IsFull     bool   `json:"is_full,omitempty"`
	IsObserver bool   `json:"is_observer,omitempty"`
}

// LoginResponse is the server's ActionLogin reply.
type LoginResponse struct {
	IdxPlayer int    `json:"idx"`
	Name      string `json:"name"`
}

// MapHexWire is one non-empty hex in the ActionMap response.
type MapHexWire struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// MapResponse is the server's ActionMap reply: board size and the non-empty
// content grouped by terrain kind.
type MapResponse struct {
	Size    int                      `json:"size"`
	Name    string                   `json:"name"`
	Content map[string][]MapHexWire  `json:"content"`
}

// VehicleWire is one tank in an ActionGameState reply.
type VehicleWire struct {
	ID           string        `json:"id"`
	VehicleType  string        `json:"vehicle_type"`
	PlayerID     int           `json:"player_id"`
	Position     MapHexWire    `json:"position"`
	SpawnPosition MapHexWire   `json:"spawn_position"`
	Health       int           `json:"health"`
	Capture      int           `json:"capture_points"`
}

// GameStateResponse is the server's ActionGameState reply.
type GameStateResponse struct {
	NumPlayers    int                  `json:"num_players"`
	Vehicles      map[string]VehicleWire `json:"vehicles"`
	AttackMatrix  map[string][]int     `json:"attack_matrix"`
	CatapultUsage map[string]int       `json:"catapult_usage"`
	CurrentTurn   int                  `json:"current_turn"`
	CurrentPlayerIdx int               `json:"current_player_idx"`
	Finished      bool                 `json:"finished"`
	Winner        int                  `json:"winner"`
}

// MoveRequest is the ActionMove payload.
type MoveRequest struct {
	VehicleID int        `json:"vehicle_id"`
	Target    MapHexWire `json:"target"`
}

// ShootRequest is the ActionShoot payload.
type ShootRequest struct {
	VehicleID int        `json:"vehicle_id"`
	Target    MapHexWire `json:"target"`
}

// ChatRequest is the ActionChat payload.
type ChatRequest struct {
	Message string `json:"message"`
}

// ToCube converts a wire hex to a game.Cube.
func (h MapHexWire) ToCube() game.Cube {
	return game.Cube{X: h.X, Y: h.Y, Z: h.Z}
}

// CubeToWire converts a game.Cube to its wire representation.
func CubeToWire(c game.Cube) MapHexWire {
	return MapHexWire{X: c.X, Y: c.Y, Z: c.Z}
}
