package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	HTTPClient HTTPClient `mapstructure:",squash"`
	Linking    Linking    `mapstructure:",squash"`
	OAuthState OAuthState `mapstructure:",squash"`
	Cors       Cors       `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Meta agrupa as credenciais do app e os endereços das duas APIs da Meta.
// As credenciais são apenas repassadas como parâmetros, nunca validadas aqui.
type Meta struct {
	AppID                string `mapstructure:"meta_app_id"`
	AppSecret            string `mapstructure:"meta_app_secret"`
	RedirectURI          string `mapstructure:"meta_redirect_uri"`
	InstagramRedirectURI string `mapstructure:"instagram_redirect_uri"`
	GraphURL             string `mapstructure:"meta_graph_url"`
	Version              string `mapstructure:"meta_version"`
	AuthURL              string `mapstructure:"meta_auth_url"`
	InstagramAPIURL      string `mapstructure:"instagram_api_url"`
	InstagramGraphURL    string `mapstructure:"instagram_graph_url"`
}

type HTTPClient struct {
	Timeout time.Duration `mapstructure:"http_client_timeout"`
}

type Linking struct {
	PageLookupConcurrency int `mapstructure:"page_lookup_concurrency"`
}

type OAuthState struct {
	Secret   string        `mapstructure:"state_secret"`
	TTL      time.Duration `mapstructure:"state_ttl"`
	Required bool          `mapstructure:"require_state"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// VersionedGraphURL retorna a URL base da Graph API com o segmento de versão
func (m Meta) VersionedGraphURL() string {
	return strings.TrimRight(m.GraphURL, "/") + "/" + m.Version
}

// BusinessAuthorizeURL é o endpoint do diálogo OAuth do fluxo business
func (m Meta) BusinessAuthorizeURL() string {
	return strings.TrimRight(m.AuthURL, "/") + "/" + m.Version + "/dialog/oauth"
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")

	v.SetDefault("META_APP_ID", "")
	v.SetDefault("META_APP_SECRET", "")
	v.SetDefault("META_REDIRECT_URI", "")
	v.SetDefault("INSTAGRAM_REDIRECT_URI", "")
	v.SetDefault("META_GRAPH_URL", "https://graph.facebook.com")
	v.SetDefault("META_VERSION", "v18.0")
	v.SetDefault("META_AUTH_URL", "https://www.facebook.com")
	v.SetDefault("INSTAGRAM_API_URL", "https://api.instagram.com")
	v.SetDefault("INSTAGRAM_GRAPH_URL", "https://graph.instagram.com")

	v.SetDefault("HTTP_CLIENT_TIMEOUT", "30s")

	// 1 reproduz a busca estritamente sequencial por página
	v.SetDefault("PAGE_LOOKUP_CONCURRENCY", 4)

	v.SetDefault("STATE_SECRET", "")
	v.SetDefault("STATE_TTL", "10m")
	v.SetDefault("REQUIRE_STATE", false)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	// AutomaticEnv só resolve chaves conhecidas; os defaults registram todas elas
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Meta.InstagramRedirectURI == "" {
		config.Meta.InstagramRedirectURI = config.Meta.RedirectURI
	}

	if config.Linking.PageLookupConcurrency < 1 {
		config.Linking.PageLookupConcurrency = 1
	}

	config.Validate()

	return config, nil
}

// Validate apenas avisa sobre credenciais ausentes; o servidor sobe mesmo assim
func (c *Config) Validate() {
	if c.Meta.AppID == "" || c.Meta.AppSecret == "" || c.Meta.RedirectURI == "" {
		logrus.Warn("Uma ou mais variáveis META_APP_ID, META_APP_SECRET, META_REDIRECT_URI estão vazias. Verifique o .env")
	}
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
