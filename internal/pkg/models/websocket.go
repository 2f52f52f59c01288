package models

import "encoding/json"

// WSMessage is the envelope of every websocket frame. Event names live in constants.
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage is the payload of an error event
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
