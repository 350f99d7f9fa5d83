package metaclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	metadomain "github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/social-auth-broker/internal/config"
)

//go:generate mockgen -source=instagram.go -destination=mocks/mock_instagram.go -package=mocks

// Instagram é o cliente da API básica do Instagram (api.instagram.com e graph.instagram.com)
type Instagram interface {
	ExchangeCode(ctx context.Context, code string) (*metadomain.BasicToken, error)
	GetProfile(ctx context.Context, accessToken string) (*metadomain.InstagramProfile, error)
	GetMedia(ctx context.Context, accessToken string, limit int) (map[string]interface{}, error)
	ExchangeLongLivedToken(ctx context.Context, shortLivedToken string) (map[string]interface{}, error)
	RefreshLongLivedToken(ctx context.Context, longLivedToken string) (map[string]interface{}, error)
}

type InstagramClient struct {
	cfg *config.Meta
	requester
}

func NewInstagramClient(cfg *config.Config, httpClient *http.Client) *InstagramClient {
	return &InstagramClient{
		cfg:       &cfg.Meta,
		requester: requester{httpClient: httpClient},
	}
}

func (c *InstagramClient) graphURL(path string) string {
	return strings.TrimRight(c.cfg.InstagramGraphURL, "/") + path
}

// ExchangeCode troca o código do fluxo básico por um token de curta duração.
// O endpoint exige POST com form, não aceita query string.
func (c *InstagramClient) ExchangeCode(ctx context.Context, code string) (*metadomain.BasicToken, error) {
	form := url.Values{}
	form.Add("client_id", c.cfg.AppID)
	form.Add("client_secret", c.cfg.AppSecret)
	form.Add("grant_type", "authorization_code")
	form.Add("redirect_uri", c.cfg.InstagramRedirectURI)
	form.Add("code", code)

	var token metadomain.BasicToken
	err := c.do(ctx, request{
		operation: "instagram.exchange_code",
		method:    http.MethodPost,
		endpoint:  strings.TrimRight(c.cfg.InstagramAPIURL, "/") + "/oauth/access_token",
		form:      form,
	}, &token)
	if err != nil {
		return nil, err
	}

	return &token, nil
}

func (c *InstagramClient) GetProfile(ctx context.Context, accessToken string) (*metadomain.InstagramProfile, error) {
	params := url.Values{}
	params.Add("fields", "id,username")
	params.Add("access_token", accessToken)

	var profile metadomain.InstagramProfile
	err := c.do(ctx, request{
		operation: "instagram.get_profile",
		method:    http.MethodGet,
		endpoint:  c.graphURL("/me"),
		query:     params,
	}, &profile)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (c *InstagramClient) GetMedia(ctx context.Context, accessToken string, limit int) (map[string]interface{}, error) {
	params := url.Values{}
	params.Add("fields", "id,caption,media_type,media_url,permalink,thumbnail_url,timestamp,username")
	params.Add("access_token", accessToken)
	params.Add("limit", strconv.Itoa(limit))

	response := map[string]interface{}{}
	err := c.do(ctx, request{
		operation: "instagram.get_media",
		method:    http.MethodGet,
		endpoint:  c.graphURL("/me/media"),
		query:     params,
	}, &response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// ExchangeLongLivedToken devolve o JSON remoto sem alterações (access_token, token_type, expires_in)
func (c *InstagramClient) ExchangeLongLivedToken(ctx context.Context, shortLivedToken string) (map[string]interface{}, error) {
	params := url.Values{}
	params.Add("grant_type", "ig_exchange_token")
	params.Add("client_secret", c.cfg.AppSecret)
	params.Add("access_token", shortLivedToken)

	response := map[string]interface{}{}
	err := c.do(ctx, request{
		operation: "instagram.exchange_long_lived_token",
		method:    http.MethodGet,
		endpoint:  c.graphURL("/access_token"),
		query:     params,
	}, &response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// RefreshLongLivedToken renova um token de longa duração (validade de ~60 dias)
func (c *InstagramClient) RefreshLongLivedToken(ctx context.Context, longLivedToken string) (map[string]interface{}, error) {
	params := url.Values{}
	params.Add("grant_type", "ig_refresh_token")
	params.Add("access_token", longLivedToken)

	response := map[string]interface{}{}
	err := c.do(ctx, request{
		operation: "instagram.refresh_long_lived_token",
		method:    http.MethodGet,
		endpoint:  c.graphURL("/refresh_access_token"),
		query:     params,
	}, &response)
	if err != nil {
		return nil, err
	}

	return response, nil
}
