package model

// EventMaze is the event name carrying maze and player updates.
const EventMaze = "maze"

// Payload is one update. A nil Maze or a nil Players leaves the stored
// value untouched; a non-nil field replaces it wholesale.
type Payload struct {
	Maze    []int64  `json:"maze,omitempty"`
	Players []Player `json:"players"`
}

// Envelope wraps a payload with its event name on the wire.
type Envelope struct {
	Event   string  `json:"event"`
	Payload Payload `json:"payload"`
}
