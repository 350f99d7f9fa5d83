package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/social-auth-broker/internal/config"
	"github.com/vfg2006/social-auth-broker/internal/usecases/authenticating"
	"github.com/vfg2006/social-auth-broker/internal/usecases/linking"
	"github.com/vfg2006/social-auth-broker/internal/usecases/messaging"
	"github.com/vfg2006/social-auth-broker/internal/usecases/tokens"
	"github.com/vfg2006/social-auth-broker/pkg/log"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "0"},
		Meta: config.Meta{
			AppID:           "app-id",
			GraphURL:        "https://graph.facebook.com",
			Version:         "v18.0",
			AuthURL:         "https://www.facebook.com",
			InstagramAPIURL: "https://api.instagram.com",
		},
		OAuthState: config.OAuthState{Secret: "segredo"},
		Cors:       config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	ctrl := gomock.NewController(t)
	graph := mocks.NewMockGraph(ctrl)
	instagram := mocks.NewMockInstagram(ctrl)

	states, err := authenticating.NewStateManager(cfg)
	require.NoError(t, err)

	authenticator := authenticating.NewService(graph, instagram, linking.NewService(graph, cfg), metaclient.NewAuthorizeURLs(cfg), states)

	server, err := New(cfg, authenticator, messaging.NewService(graph, instagram), tokens.NewService(graph, instagram))
	require.NoError(t, err)

	return server
}

func TestServer_Chain(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	assert.JSONEq(t, `{"message":"Social Auth Broker funcionando correctamente"}`, rec.Body.String())
}

func TestServer_Preflight(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/messages/profile", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Page-Token")
}

func TestServer_UnknownRoute(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ads/insights", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"RES_001"`)
}
