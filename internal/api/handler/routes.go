package handler

import (
	"net/http"

	"github.com/vfg2006/social-auth-broker/internal/api/handler/router"
	"github.com/vfg2006/social-auth-broker/internal/usecases/authenticating"
	"github.com/vfg2006/social-auth-broker/internal/usecases/messaging"
	"github.com/vfg2006/social-auth-broker/internal/usecases/tokens"
	"github.com/vfg2006/social-auth-broker/pkg/middleware"
)

func Home() []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: HomeHandler(),
		},
	}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/auth/login",
			Method:  http.MethodGet,
			Handler: BusinessLogin(service),
		},
		{
			Path:    "/auth/callback",
			Method:  http.MethodGet,
			Handler: BusinessCallback(service),
		},
		{
			Path:    "/auth/instagram-login",
			Method:  http.MethodGet,
			Handler: BasicLogin(service),
		},
		{
			Path:    "/auth/instagram-callback",
			Method:  http.MethodGet,
			Handler: BasicCallback(service),
		},
	}
}

func Messages(service messaging.Messenger) []router.Route {
	return []router.Route{
		{
			Path:        "/messages/profile",
			Method:      http.MethodGet,
			Handler:     Profile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireBearerToken()},
		},
		{
			Path:        "/messages/media",
			Method:      http.MethodGet,
			Handler:     Media(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireBearerToken()},
		},
		{
			Path:        "/messages/instagram",
			Method:      http.MethodGet,
			Handler:     InstagramMessages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePageToken()},
		},
		{
			Path:        "/messages/instagram/send",
			Method:      http.MethodPost,
			Handler:     SendInstagramMessage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequirePageToken()},
		},
	}
}

func Tokens(service tokens.Lifecycle) []router.Route {
	return []router.Route{
		{
			Path:    "/tokens/verify",
			Method:  http.MethodGet,
			Handler: VerifyToken(service),
		},
		{
			Path:    "/tokens/refresh",
			Method:  http.MethodGet,
			Handler: RefreshToken(service),
		},
		{
			Path:    "/tokens/exchange",
			Method:  http.MethodGet,
			Handler: ExchangeToken(service),
		},
		{
			Path:    "/tokens/decode",
			Method:  http.MethodGet,
			Handler: DecodeToken(service),
		},
	}
}
