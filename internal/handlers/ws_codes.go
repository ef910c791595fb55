// internal/handlers/ws_codes.go
package handlers

import "github.com/coder/websocket"

// Custom WebSocket close codes, in the application range above 3000.
const (
	// StatusBadSubprotocol closes a connection that negotiated without the
	// game subprotocol.
	StatusBadSubprotocol websocket.StatusCode = 3000
)
