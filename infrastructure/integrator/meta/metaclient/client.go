package metaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/social-auth-broker/internal/config"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_graph.go -package=mocks

// Graph é o cliente da Graph API do Facebook (graph.facebook.com/{versão})
type Graph interface {
	GetUser(ctx context.Context, accessToken string) (*metadomain.User, error)
	GetManagedPages(ctx context.Context, accessToken string) ([]metadomain.Page, error)
	GetPageBusinessAccount(ctx context.Context, pageID, pageToken string) (*metadomain.InstagramBusinessAccount, error)
	GetPageConversations(ctx context.Context, pageID, pageToken string) (map[string]interface{}, error)
	SendPageMessage(ctx context.Context, pageID, recipientID, text, pageToken string) (map[string]interface{}, error)
	ExchangeCode(ctx context.Context, code string) (*metadomain.TokenResponse, error)
	DebugToken(ctx context.Context, inputToken string) (*metadomain.DebugTokenData, error)
}

type GraphClient struct {
	cfg *config.Meta
	requester
}

func NewGraphClient(cfg *config.Config, httpClient *http.Client) *GraphClient {
	return &GraphClient{
		cfg:       &cfg.Meta,
		requester: requester{httpClient: httpClient},
	}
}

func (c *GraphClient) url(path string) string {
	return c.cfg.VersionedGraphURL() + path
}

func (c *GraphClient) GetUser(ctx context.Context, accessToken string) (*metadomain.User, error) {
	params := url.Values{}
	params.Add("fields", "id,name,email")
	params.Add("access_token", accessToken)

	var user metadomain.User
	err := c.do(ctx, request{
		operation: "graph.get_user",
		method:    http.MethodGet,
		endpoint:  c.url("/me"),
		query:     params,
	}, &user)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetManagedPages lista as páginas administradas, cada uma com seu próprio token
func (c *GraphClient) GetManagedPages(ctx context.Context, accessToken string) ([]metadomain.Page, error) {
	params := url.Values{}
	params.Add("fields", "id,name,access_token,category")
	params.Add("access_token", accessToken)

	var response metadomain.ResponsePages
	err := c.do(ctx, request{
		operation: "graph.get_managed_pages",
		method:    http.MethodGet,
		endpoint:  c.url("/me/accounts"),
		query:     params,
	}, &response)
	if err != nil {
		return nil, err
	}

	if response.Data == nil {
		return []metadomain.Page{}, nil
	}

	return response.Data, nil
}

// GetPageBusinessAccount retorna nil, nil quando a página não tem conta vinculada
func (c *GraphClient) GetPageBusinessAccount(ctx context.Context, pageID, pageToken string) (*metadomain.InstagramBusinessAccount, error) {
	params := url.Values{}
	params.Add("fields", "instagram_business_account{id,username,profile_picture_url}")
	params.Add("access_token", pageToken)

	var response metadomain.ResponsePageBusinessAccount
	err := c.do(ctx, request{
		operation: "graph.get_page_business_account",
		method:    http.MethodGet,
		endpoint:  c.url("/" + url.PathEscape(pageID)),
		query:     params,
	}, &response)
	if err != nil {
		return nil, err
	}

	return response.InstagramBusinessAccount, nil
}

func (c *GraphClient) GetPageConversations(ctx context.Context, pageID, pageToken string) (map[string]interface{}, error) {
	params := url.Values{}
	params.Add("fields", "participants,messages{message,from,to,created_time}")
	params.Add("platform", "instagram")
	params.Add("access_token", pageToken)

	response := map[string]interface{}{}
	err := c.do(ctx, request{
		operation: "graph.get_page_conversations",
		method:    http.MethodGet,
		endpoint:  c.url(fmt.Sprintf("/%s/conversations", url.PathEscape(pageID))),
		query:     params,
	}, &response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

type sendMessageBody struct {
	Recipient   messageRecipient `json:"recipient"`
	Message     messageText      `json:"message"`
	AccessToken string           `json:"access_token"`
}

type messageRecipient struct {
	ID string `json:"id"`
}

type messageText struct {
	Text string `json:"text"`
}

func (c *GraphClient) SendPageMessage(ctx context.Context, pageID, recipientID, text, pageToken string) (map[string]interface{}, error) {
	response := map[string]interface{}{}
	err := c.do(ctx, request{
		operation: "graph.send_page_message",
		method:    http.MethodPost,
		endpoint:  c.url(fmt.Sprintf("/%s/messages", url.PathEscape(pageID))),
		jsonBody: sendMessageBody{
			Recipient:   messageRecipient{ID: recipientID},
			Message:     messageText{Text: text},
			AccessToken: pageToken,
		},
	}, &response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// ExchangeCode troca o código de autorização do fluxo business por um token de usuário
func (c *GraphClient) ExchangeCode(ctx context.Context, code string) (*metadomain.TokenResponse, error) {
	params := url.Values{}
	params.Add("client_id", c.cfg.AppID)
	params.Add("client_secret", c.cfg.AppSecret)
	params.Add("redirect_uri", c.cfg.RedirectURI)
	params.Add("code", code)

	var tokenResp metadomain.TokenResponse
	err := c.do(ctx, request{
		operation: "graph.exchange_code",
		method:    http.MethodGet,
		endpoint:  c.url("/oauth/access_token"),
		query:     params,
	}, &tokenResp)
	if err != nil {
		return nil, err
	}

	return &tokenResp, nil
}

// DebugToken consulta /debug_token usando o token de app ({app_id}|{app_secret})
func (c *GraphClient) DebugToken(ctx context.Context, inputToken string) (*metadomain.DebugTokenData, error) {
	params := url.Values{}
	params.Add("input_token", inputToken)
	params.Add("access_token", c.cfg.AppID+"|"+c.cfg.AppSecret)

	var response metadomain.ResponseDebugToken
	err := c.do(ctx, request{
		operation: "graph.debug_token",
		method:    http.MethodGet,
		endpoint:  c.url("/debug_token"),
		query:     params,
	}, &response)
	if err != nil {
		return nil, errors.WithMessage(err, "erro ao obter informações de debug do token")
	}

	return &response.Data, nil
}
