package handler

import (
	"net/http"

	"github.com/vfg2006/social-auth-broker/internal/usecases/tokens"
)

func VerifyToken(service tokens.Lifecycle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inspection, err := service.Introspect(r.Context(), r.URL.Query().Get("token"))
		if err != nil {
			writeServiceError(w, r, err, "Error al verificar el token")
			return
		}

		writeJSON(w, r, inspection)
	}
}

func RefreshToken(service tokens.Lifecycle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refreshed, err := service.Refresh(r.Context(), r.URL.Query().Get("token"))
		if err != nil {
			writeServiceError(w, r, err, "Error al refrescar el token")
			return
		}

		writeJSON(w, r, refreshed)
	}
}

func ExchangeToken(service tokens.Lifecycle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exchanged, err := service.ExchangeForLongLived(r.Context(), r.URL.Query().Get("token"))
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener el token de larga duración")
			return
		}

		writeJSON(w, r, exchanged)
	}
}

// DecodeToken devolve o debug_token sem normalização
func DecodeToken(service tokens.Lifecycle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := service.Decode(r.Context(), r.URL.Query().Get("token"))
		if err != nil {
			writeServiceError(w, r, err, "Error al decodificar el token")
			return
		}

		writeJSON(w, r, data)
	}
}
