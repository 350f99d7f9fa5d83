package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/social-auth-broker/pkg/apiErrors"
	"github.com/vfg2006/social-auth-broker/pkg/log"
)

type contextKey string

const (
	ContextKeyAccessToken contextKey = "access_token"
	ContextKeyPageToken   contextKey = "page_token"
)

const (
	HeaderAccessToken = "access-token"
	HeaderPageToken   = "x-page-token"
)

// RequireBearerToken exige o token de usuário em "Authorization: Bearer" ou,
// como alternativa, no cabeçalho access-token
func RequireBearerToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Requisição sem token de acesso")
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Token de acceso no proporcionado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAccessToken, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePageToken exige o token de página no cabeçalho x-page-token
func RequirePageToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimSpace(r.Header.Get(HeaderPageToken))
			if token == "" {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Requisição sem token de página")
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Token de página no proporcionado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyPageToken, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AccessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(ContextKeyAccessToken).(string)
	return token
}

func PageTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(ContextKeyPageToken).(string)
	return token
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return strings.TrimSpace(tokenString)
		}
	}

	return strings.TrimSpace(r.Header.Get(HeaderAccessToken))
}
