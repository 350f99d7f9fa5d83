package handler

import (
	"net/http"

	"github.com/vfg2006/social-auth-broker/internal/domain"
	"github.com/vfg2006/social-auth-broker/internal/usecases/authenticating"
)

func BusinessLogin(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		login, err := service.BusinessLoginURL(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Error al generar la URL de autorización")
			return
		}

		writeJSON(w, r, login)
	}
}

func BasicLogin(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		login, err := service.BasicLoginURL(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Error al generar la URL de autorización")
			return
		}

		writeJSON(w, r, login)
	}
}

// BusinessCallback recebe o redirect do diálogo do Facebook
func BusinessCallback(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.BusinessCallback(r.Context(), callbackParams(r))
		if err != nil {
			writeServiceError(w, r, err, "Error en la solicitud a Facebook")
			return
		}

		writeJSON(w, r, result)
	}
}

// BasicCallback recebe o redirect da autorização básica do Instagram
func BasicCallback(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := service.BasicCallback(r.Context(), callbackParams(r))
		if err != nil {
			writeServiceError(w, r, err, "Error en la solicitud a Instagram")
			return
		}

		writeJSON(w, r, result)
	}
}

func callbackParams(r *http.Request) domain.CallbackParams {
	query := r.URL.Query()
	return domain.CallbackParams{
		Code:             query.Get("code"),
		State:            query.Get("state"),
		Error:            query.Get("error"),
		ErrorReason:      query.Get("error_reason"),
		ErrorDescription: query.Get("error_description"),
	}
}
