package metadomain

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TokenResponse é a resposta do endpoint /oauth/access_token da Graph API
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// DebugTokenData é o objeto "data" retornado por /debug_token
type DebugTokenData struct {
	AppID               string   `json:"app_id"`
	Type                string   `json:"type"`
	Application         string   `json:"application"`
	DataAccessExpiresAt int64    `json:"data_access_expires_at"`
	ExpiresAt           int64    `json:"expires_at"`
	IsValid             bool     `json:"is_valid"`
	IssuedAt            int64    `json:"issued_at"`
	Scopes              []string `json:"scopes"`
	UserID              string   `json:"user_id"`
}

type ResponseDebugToken struct {
	Data DebugTokenData `json:"data"`
}

// BasicToken é o token de curta duração emitido pelo fluxo básico do Instagram
type BasicToken struct {
	AccessToken string     `json:"access_token"`
	UserID      FlexibleID `json:"user_id"`
}

// FlexibleID aceita identificadores enviados como número ou string.
// Os IDs do Instagram passam de 2^53, então nunca passam por float64.
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))

	switch {
	case raw == "null":
		*id = ""
	case strings.HasPrefix(raw, `"`):
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*id = FlexibleID(value)
	default:
		// números ficam com o texto original
		*id = FlexibleID(raw)
	}

	return nil
}
