package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/social-auth-broker/internal/usecases/authenticating"
	"github.com/vfg2006/social-auth-broker/internal/usecases/linking"
	"github.com/vfg2006/social-auth-broker/internal/usecases/messaging"
	"github.com/vfg2006/social-auth-broker/internal/usecases/tokens"
	"github.com/vfg2006/social-auth-broker/pkg/apiErrors"
	"github.com/vfg2006/social-auth-broker/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o envelope da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithField("path", r.URL.Path)

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		msg := authErr.Details
		if msg == "" {
			msg = authErr.Err.Error()
		}
		if authenticating.IsStateError(err) {
			logger.WithError(err).Warn("Callback com state ausente ou inválido")
		} else {
			logger.WithError(err).Warn("Falha na autenticação")
		}
		apiErrors.WriteError(w, authErr.Code, msg, remoteDetails(authErr.Cause))
		return
	}

	switch {
	case errors.Is(err, messaging.ErrMissingToken):
		apiErrors.WriteError(w, apiErrors.ErrMissingToken, err.Error(), nil)
		return
	case errors.Is(err, tokens.ErrEmptyToken):
		logger.WithError(err).Error("Plataforma não retornou o token")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, message, nil)
		return
	case errors.Is(err, tokens.ErrMissingToken), errors.Is(err, linking.ErrMissingToken), messaging.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
		return
	}

	if remoteErr, ok := metaclient.AsRemoteError(err); ok {
		logger.WithFields(log.Fields{
			"operation":   remoteErr.Operation,
			"status_code": remoteErr.StatusCode,
		}).Warn("Erro retornado pela plataforma")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, message, remoteDetails(remoteErr))
		return
	}

	if transportErr, ok := metaclient.AsTransportError(err); ok {
		logger.WithError(transportErr).Error("Falha de comunicação com a plataforma")
		apiErrors.WriteError(w, apiErrors.ErrCommunication, message, remoteDetails(transportErr))
		return
	}

	logger.WithError(err).Error("Erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

// remoteDetails expõe o status e o corpo devolvidos pela plataforma
func remoteDetails(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	if remoteErr, ok := metaclient.AsRemoteError(err); ok {
		details := map[string]interface{}{"status_code": remoteErr.StatusCode}
		if detail := remoteErr.Detail(); detail != nil {
			details["response"] = detail
		} else {
			details["response"] = "Sin respuesta"
		}
		return details
	}

	if transportErr, ok := metaclient.AsTransportError(err); ok {
		return map[string]interface{}{"error": transportErr.Err.Error()}
	}

	return nil
}
