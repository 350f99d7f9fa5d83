package metaclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/social-auth-broker/internal/config"
	"github.com/vfg2006/social-auth-broker/pkg/log"
)

func newTestConfig(serverURL string) *config.Config {
	return &config.Config{
		Meta: config.Meta{
			AppID:                "app-id",
			AppSecret:            "app-secret",
			RedirectURI:          "https://broker.example.com/auth/callback",
			InstagramRedirectURI: "https://broker.example.com/auth/instagram-callback",
			GraphURL:             serverURL,
			Version:              "v18.0",
			AuthURL:              serverURL,
			InstagramAPIURL:      serverURL,
			InstagramGraphURL:    serverURL,
		},
	}
}

func newServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *config.Config) {
	t.Helper()
	log.SetupTestLogger()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server, newTestConfig(server.URL)
}

func TestGraphClient_ExchangeCode_SendsExactParams(t *testing.T) {
	var received url.Values
	server, cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v18.0/oauth/access_token", r.URL.Path)
		received = r.URL.Query()
		w.Write([]byte(`{"access_token":"user-token","token_type":"bearer","expires_in":5183999}`))
	})

	client := NewGraphClient(cfg, server.Client())

	token, err := client.ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "user-token", token.AccessToken)
	assert.Equal(t, int64(5183999), token.ExpiresIn)

	assert.Equal(t, url.Values{
		"client_id":     {"app-id"},
		"client_secret": {"app-secret"},
		"redirect_uri":  {"https://broker.example.com/auth/callback"},
		"code":          {"the-code"},
	}, received)
}

func TestGraphClient_RemoteError(t *testing.T) {
	server, cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"fbtrace_id":"A1"}}`))
	})

	client := NewGraphClient(cfg, server.Client())

	_, err := client.GetUser(context.Background(), "expired")
	require.Error(t, err)

	remoteErr, ok := AsRemoteError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, remoteErr.StatusCode)
	assert.Equal(t, "graph.get_user", remoteErr.Operation)
	require.NotNil(t, remoteErr.Graph)
	assert.Equal(t, 190, remoteErr.Graph.Error.Code)
	assert.Equal(t, "Error validating access token", remoteErr.Graph.Message())

	detail, ok := remoteErr.Detail().(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, detail, "error")
}

func TestGraphClient_RemoteErrorWithPlainBody(t *testing.T) {
	server, cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})

	client := NewGraphClient(cfg, server.Client())

	_, err := client.GetManagedPages(context.Background(), "token")
	remoteErr, ok := AsRemoteError(err)
	require.True(t, ok)
	assert.Nil(t, remoteErr.Graph)
	assert.Equal(t, "upstream down", remoteErr.Detail())
}

func TestGraphClient_TransportError(t *testing.T) {
	log.SetupTestLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	cfg := newTestConfig(server.URL)
	server.Close()

	client := NewGraphClient(cfg, NewHTTPClient(time.Second))

	_, err := client.GetUser(context.Background(), "token")
	require.Error(t, err)

	_, ok := AsTransportError(err)
	assert.True(t, ok)
	_, ok = AsRemoteError(err)
	assert.False(t, ok)
}

func TestGraphClient_GetPageBusinessAccount(t *testing.T) {
	server, cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "page-token", r.URL.Query().Get("access_token"))
		switch r.URL.Path {
		case "/v18.0/p1":
			w.Write([]byte(`{"id":"p1","instagram_business_account":{"id":"ig1","username":"loja","profile_picture_url":"https://cdn/ig1.jpg"}}`))
		default:
			w.Write([]byte(`{"id":"p2"}`))
		}
	})

	client := NewGraphClient(cfg, server.Client())

	account, err := client.GetPageBusinessAccount(context.Background(), "p1", "page-token")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "ig1", account.ID)
	assert.Equal(t, "https://cdn/ig1.jpg", account.ProfilePictureURL)

	account, err = client.GetPageBusinessAccount(context.Background(), "p2", "page-token")
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestGraphClient_GetManagedPages(t *testing.T) {
	server, cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v18.0/me/accounts", r.URL.Path)
		assert.Equal(t, "id,name,access_token,category", r.URL.Query().Get("fields"))
		w.Write([]byte(`{"data":[{"id":"p1","name":"Loja","category":"Shop","access_token":"t1"},{"id":"p2","name":"Blog","category":"Media","access_token":"t2"}]}`))
	})

	client := NewGraphClient(cfg, server.Client())

	pages, err := client.GetManagedPages(context.Background(), "token")
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "p1", pages[0].ID)
	assert.Equal(t, "t2", pages[1].AccessToken)
}

func TestGraphClient_SendPageMessage(t *testing.T) {
	server, cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v18.0/p1/messages", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"recipient":{"id":"r1"},"message":{"text":"olá"},"access_token":"t1"}`, string(body))

		w.Write([]byte(`{"recipient_id":"r1","message_id":"m1"}`))
	})

	client := NewGraphClient(cfg, server.Client())

	result, err := client.SendPageMessage(context.Background(), "p1", "r1", "olá", "t1")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"recipient_id": "r1", "message_id": "m1"}, result)
}

func TestGraphClient_DebugToken(t *testing.T) {
	server, cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v18.0/debug_token", r.URL.Path)
		assert.Equal(t, "input", r.URL.Query().Get("input_token"))
		assert.Equal(t, "app-id|app-secret", r.URL.Query().Get("access_token"))
		w.Write([]byte(`{"data":{"app_id":"app-id","type":"USER","is_valid":true,"expires_at":0,"scopes":["pages_show_list"]}}`))
	})

	client := NewGraphClient(cfg, server.Client())

	data, err := client.DebugToken(context.Background(), "input")
	require.NoError(t, err)
	assert.True(t, data.IsValid)
	assert.Equal(t, int64(0), data.ExpiresAt)
	assert.Equal(t, []string{"pages_show_list"}, data.Scopes)
}

func TestInstagramClient_ExchangeCode(t *testing.T) {
	server, cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/oauth/access_token", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.NoError(t, r.ParseForm())

		assert.Equal(t, url.Values{
			"client_id":     {"app-id"},
			"client_secret": {"app-secret"},
			"grant_type":    {"authorization_code"},
			"redirect_uri":  {"https://broker.example.com/auth/instagram-callback"},
			"code":          {"the-code"},
		}, r.PostForm)

		// IDs do Instagram não cabem em float64
		w.Write([]byte(`{"access_token":"IGQV-short","user_id":17841400000000001}`))
	})

	client := NewInstagramClient(cfg, server.Client())

	token, err := client.ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "IGQV-short", token.AccessToken)
	assert.Equal(t, "17841400000000001", string(token.UserID))
}

func TestInstagramClient_LongLivedTokens(t *testing.T) {
	server, cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		switch r.URL.Path {
		case "/access_token":
			assert.Equal(t, "ig_exchange_token", query.Get("grant_type"))
			assert.Equal(t, "app-secret", query.Get("client_secret"))
			assert.Equal(t, "IGQV-short", query.Get("access_token"))
			w.Write([]byte(`{"access_token":"IGQV-long","token_type":"bearer","expires_in":5184000}`))
		case "/refresh_access_token":
			assert.Equal(t, "ig_refresh_token", query.Get("grant_type"))
			assert.Equal(t, "IGQV-long", query.Get("access_token"))
			w.Write([]byte(`{"access_token":"IGQV-renewed","token_type":"bearer","expires_in":5183944}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	client := NewInstagramClient(cfg, server.Client())

	exchanged, err := client.ExchangeLongLivedToken(context.Background(), "IGQV-short")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"access_token": "IGQV-long", "token_type": "bearer", "expires_in": float64(5184000)}, exchanged)

	refreshed, err := client.RefreshLongLivedToken(context.Background(), "IGQV-long")
	require.NoError(t, err)
	assert.Equal(t, "IGQV-renewed", refreshed["access_token"])
}

func TestInstagramClient_GetMedia(t *testing.T) {
	server, cfg := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/media", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"data":[{"id":"m1","media_type":"IMAGE"}]}`))
	})

	client := NewInstagramClient(cfg, server.Client())

	media, err := client.GetMedia(context.Background(), "token", 5)
	require.NoError(t, err)
	assert.Len(t, media["data"], 1)
}

func TestAuthorizeURLs(t *testing.T) {
	cfg := newTestConfig("https://www.facebook.com")
	cfg.Meta.InstagramAPIURL = "https://api.instagram.com"
	urls := NewAuthorizeURLs(cfg)

	business, err := url.Parse(urls.Business("st"))
	require.NoError(t, err)
	assert.Equal(t, "/v18.0/dialog/oauth", business.Path)
	assert.Equal(t, "instagram_basic,instagram_content_publish,instagram_manage_comments,instagram_manage_messages,pages_messaging,pages_show_list,pages_read_engagement", business.Query().Get("scope"))
	assert.Equal(t, "st", business.Query().Get("state"))
	assert.Equal(t, "code", business.Query().Get("response_type"))

	basic, err := url.Parse(urls.Basic(""))
	require.NoError(t, err)
	assert.Equal(t, "api.instagram.com", basic.Host)
	assert.Equal(t, "user_profile,user_media", basic.Query().Get("scope"))
	assert.False(t, basic.Query().Has("state"))
}
