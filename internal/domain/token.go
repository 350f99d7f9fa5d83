package domain

import "time"

// TokenInspection é a visão normalizada do /debug_token.
// ExpiresAt é nil quando a plataforma informa 0 ou omite o campo.
type TokenInspection struct {
	IsValid   bool       `json:"is_valid"`
	AppID     string     `json:"app_id"`
	ExpiresAt *time.Time `json:"expires_at"`
	Scopes    []string   `json:"scopes"`
	Type      string     `json:"type"`
}
