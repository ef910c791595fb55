// internal/handlers/session.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/seasaltgame/seasalt/internal/auth"
)

// extractCookieToken extracts a named cookie value from a "Cookie" header,
// or returns empty if not found.
func extractCookieToken(cookieHeader, cookieName string) string {
	parts := strings.Split(cookieHeader, cookieName+"=")
	if len(parts) < 2 {
		return ""
	}
	token := parts[1]
	if idx := strings.Index(token, ";"); idx != -1 {
		token = token[:idx]
	}
	return token
}

// EnsureGuestSession returns the caller's session id, minting a fresh
// ephemeral one (and setting its cookie) when no valid token is presented.
func EnsureGuestSession(w http.ResponseWriter, r *http.Request) (string, error) {
	if token := extractCookieToken(r.Header.Get("Cookie"), "session_token"); token != "" {
		if sessionID, err := auth.AuthenticateJWT(token); err == nil {
			return sessionID, nil
		}
	}

	sessionID := uuid.NewString()
	token, err := auth.CreateJWT(sessionID)
	if err != nil {
		return "", fmt.Errorf("create session token: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	return sessionID, nil
}
