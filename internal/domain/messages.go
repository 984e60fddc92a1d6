package domain

// DTOs shared between the HTTP and WebSocket transports. Rendering a
// board into anything visual is the presentation layer's job; these
// only carry the query surface.

type PlayerInfo struct {
	Name string  `json:"name"`
	Side Side    `json:"side"`
	Bot  bool    `json:"bot"`
	Tier BotTier `json:"tier,omitempty"`
}

// MatchState is a snapshot of one match. Board is column-major with
// row 0 at the bottom.
type MatchState struct {
	ID      string       `json:"id,omitempty"`
	Board   [][]Side     `json:"board"`
	Status  string       `json:"status"`
	Current string       `json:"current_player"`
	Winner  string       `json:"winner,omitempty"`
	Players []PlayerInfo `json:"players"`
}

// ClientMessage is what a WebSocket client sends.
type ClientMessage struct {
	Type   string `json:"type"`
	Player string `json:"player,omitempty"`
	Tier   string `json:"tier,omitempty"`
	Column int    `json:"column"`
}

// ServerMessage is what the WebSocket server replies with.
type ServerMessage struct {
	Type    string      `json:"type"`
	Message string      `json:"message,omitempty"`
	State   *MatchState `json:"state,omitempty"`
}
