package authenticating

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/social-auth-broker/internal/config"
	"github.com/vfg2006/social-auth-broker/internal/domain"
	"github.com/vfg2006/social-auth-broker/pkg/log"
	"github.com/vfg2006/social-auth-broker/pkg/utils"
)

const generatedSecretSize = 48

// StateManager emite e valida o parâmetro state dos fluxos OAuth.
// O state é um JWT HS256 autocontido; nada é guardado no servidor.
type StateManager struct {
	secret   []byte
	ttl      time.Duration
	required bool
}

func NewStateManager(cfg *config.Config) (*StateManager, error) {
	secret := cfg.OAuthState.Secret
	if secret == "" {
		generated, err := utils.GenerateSecret(generatedSecretSize)
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar segredo do state: %w", err)
		}
		log.L.Warn("STATE_SECRET não definido, usando segredo aleatório; states emitidos não sobrevivem a um restart")
		secret = generated
	}

	ttl := cfg.OAuthState.TTL
	if ttl == 0 {
		ttl = 10 * time.Minute
	}

	return &StateManager{
		secret:   []byte(secret),
		ttl:      ttl,
		required: cfg.OAuthState.Required,
	}, nil
}

// Issue gera um state para o fluxo informado
func (m *StateManager) Issue(flow domain.AuthFlow) (string, error) {
	jti, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := domain.StateClaims{
		Flow: flow,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify valida assinatura, expiração e fluxo. State vazio só é aceito
// quando não é obrigatório.
func (m *StateManager) Verify(flow domain.AuthFlow, state string) error {
	if state == "" {
		if m.required {
			return ErrMissingState
		}
		return nil
	}

	token, err := jwt.ParseWithClaims(state, &domain.StateClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	claims, ok := token.Claims.(*domain.StateClaims)
	if !ok || !token.Valid {
		return ErrInvalidState
	}

	if claims.Flow != flow {
		return fmt.Errorf("%w: emitido para o fluxo %q", ErrInvalidState, claims.Flow)
	}

	return nil
}
