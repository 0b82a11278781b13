package types

import "github.com/hqin8/tractor-backend/internal/game"

// ClientMessage is one inbound event from a connected participant. Code
// scopes the event to a room; the remaining fields depend on Type.
type ClientMessage struct {
	Type    string   `json:"type"`
	Code    string   `json:"code,omitempty"`
	Seat    string   `json:"seat,omitempty"`
	Name    string   `json:"name,omitempty"`
	CardIDs []string `json:"card_ids,omitempty"`
}

// ServerMessage is one outbound event. Type is one of "room_created",
// "joined_room", "room_state" or "error_msg".
type ServerMessage struct {
	Type    string         `json:"type"`
	Code    string         `json:"code,omitempty"`
	Message string         `json:"message,omitempty"`
	State   *game.RoomView `json:"state,omitempty"`
}
