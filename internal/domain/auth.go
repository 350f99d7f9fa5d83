package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// AuthFlow identifica qual dos dois fluxos OAuth emitiu o state
type AuthFlow string

const (
	BusinessFlow AuthFlow = "business"
	BasicFlow    AuthFlow = "basic"
)

// ResultStatus diferencia um callback concluído de um que só obteve o token
type ResultStatus string

const (
	StatusComplete ResultStatus = "complete"
	StatusPartial  ResultStatus = "partial"
	StatusDenied   ResultStatus = "denied"
)

type StateClaims struct {
	Flow AuthFlow `json:"flow"`
	jwt.RegisteredClaims
}

type LoginURL struct {
	LoginURL string `json:"login_url"`
	State    string `json:"state"`
}

// CallbackParams são os parâmetros de query recebidos no redirect da plataforma
type CallbackParams struct {
	Code             string
	State            string
	Error            string
	ErrorReason      string
	ErrorDescription string
}

// CallbackResult é qualquer resposta de sucesso de um callback
type CallbackResult interface {
	ResultStatus() ResultStatus
}

// CallbackDenied ecoa o erro informado pela plataforma no redirect
type CallbackDenied struct {
	Error       string `json:"error"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
}

type BusinessLoginComplete struct {
	Message            string        `json:"message"`
	Status             ResultStatus  `json:"status"`
	UserInfo           UserIdentity  `json:"user_info"`
	FacebookToken      string        `json:"facebook_token"`
	PagesWithInstagram []ManagedPage `json:"pages_with_instagram"`
}

func (r *BusinessLoginComplete) ResultStatus() ResultStatus { return r.Status }

type BusinessLoginPartial struct {
	Message       string       `json:"message"`
	Status        ResultStatus `json:"status"`
	FacebookToken string       `json:"facebook_token"`
	Warning       string       `json:"warning"`
}

func (r *BusinessLoginPartial) ResultStatus() ResultStatus { return r.Status }

type BasicLoginComplete struct {
	Message         string                 `json:"message"`
	Status          ResultStatus           `json:"status"`
	ShortLivedToken string                 `json:"short_lived_token"`
	LongLivedToken  map[string]interface{} `json:"long_lived_token"`
	UserID          string                 `json:"user_id"`
	Profile         *InstagramProfile      `json:"profile"`
}

func (r *BasicLoginComplete) ResultStatus() ResultStatus { return r.Status }

type BasicLoginPartial struct {
	Message     string       `json:"message"`
	Status      ResultStatus `json:"status"`
	AccessToken string       `json:"access_token"`
	UserID      string       `json:"user_id"`
	Warning     string       `json:"warning"`
}

func (r *BasicLoginPartial) ResultStatus() ResultStatus { return r.Status }

type InstagramProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (r *CallbackDenied) ResultStatus() ResultStatus { return StatusDenied }
