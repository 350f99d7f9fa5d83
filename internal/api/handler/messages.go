package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/social-auth-broker/internal/usecases/messaging"
	"github.com/vfg2006/social-auth-broker/pkg/apiErrors"
	"github.com/vfg2006/social-auth-broker/pkg/middleware"
)

func Profile(service messaging.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := service.Profile(r.Context(), middleware.AccessTokenFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener el perfil")
			return
		}

		writeJSON(w, r, map[string]interface{}{"profile": profile})
	}
}

func Media(service messaging.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := messaging.DefaultMediaLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, messaging.ErrInvalidLimit.Error(), nil)
				return
			}
			limit = parsed
		}

		media, err := service.Media(r.Context(), middleware.AccessTokenFromContext(r.Context()), limit)
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener las publicaciones")
			return
		}

		writeJSON(w, r, media)
	}
}

func InstagramMessages(service messaging.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageID := r.URL.Query().Get("page_id")

		conversations, err := service.InstagramConversations(r.Context(), pageID, middleware.PageTokenFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err, "Error al obtener mensajes")
			return
		}

		writeJSON(w, r, conversations)
	}
}

func SendInstagramMessage(service messaging.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		result, err := service.SendInstagramMessage(
			r.Context(),
			query.Get("page_id"),
			query.Get("recipient_id"),
			query.Get("message"),
			middleware.PageTokenFromContext(r.Context()),
		)
		if err != nil {
			writeServiceError(w, r, err, "Error al enviar mensaje")
			return
		}

		writeJSON(w, r, result)
	}
}
