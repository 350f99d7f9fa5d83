package metaclient

import (
	"strings"

	"github.com/vfg2006/social-auth-broker/internal/config"
	"golang.org/x/oauth2"
)

// Escopos fixos de cada fluxo. A Meta espera a lista separada por vírgula.
var (
	BusinessScopes = []string{
		"instagram_basic",
		"instagram_content_publish",
		"instagram_manage_comments",
		"instagram_manage_messages",
		"pages_messaging",
		"pages_show_list",
		"pages_read_engagement",
	}
	BasicScopes = []string{"user_profile", "user_media"}
)

// AuthorizeURLs monta as URLs de autorização dos dois fluxos
type AuthorizeURLs struct {
	business *oauth2.Config
	basic    *oauth2.Config
}

func NewAuthorizeURLs(cfg *config.Config) *AuthorizeURLs {
	return &AuthorizeURLs{
		business: &oauth2.Config{
			ClientID:     cfg.Meta.AppID,
			ClientSecret: cfg.Meta.AppSecret,
			RedirectURL:  cfg.Meta.RedirectURI,
			Scopes:       []string{strings.Join(BusinessScopes, ",")},
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.Meta.BusinessAuthorizeURL(),
				TokenURL:  cfg.Meta.VersionedGraphURL() + "/oauth/access_token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		basic: &oauth2.Config{
			ClientID:     cfg.Meta.AppID,
			ClientSecret: cfg.Meta.AppSecret,
			RedirectURL:  cfg.Meta.InstagramRedirectURI,
			Scopes:       []string{strings.Join(BasicScopes, ",")},
			Endpoint: oauth2.Endpoint{
				AuthURL:   strings.TrimRight(cfg.Meta.InstagramAPIURL, "/") + "/oauth/authorize",
				TokenURL:  strings.TrimRight(cfg.Meta.InstagramAPIURL, "/") + "/oauth/access_token",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}
}

// Business retorna a URL do diálogo de login do Facebook (páginas + Instagram Business)
func (a *AuthorizeURLs) Business(state string) string {
	return a.business.AuthCodeURL(state)
}

// Basic retorna a URL de autorização da API básica do Instagram
func (a *AuthorizeURLs) Basic(state string) string {
	return a.basic.AuthCodeURL(state)
}
