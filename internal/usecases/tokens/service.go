package tokens

import (
	"context"
	"fmt"
	"time"

	metadomain "github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/social-auth-broker/internal/domain"
	"github.com/vfg2006/social-auth-broker/pkg/log"
)

type Lifecycle interface {
	Introspect(ctx context.Context, token string) (*domain.TokenInspection, error)
	Decode(ctx context.Context, token string) (*metadomain.DebugTokenData, error)
	ExchangeForLongLived(ctx context.Context, shortLivedToken string) (map[string]interface{}, error)
	Refresh(ctx context.Context, longLivedToken string) (map[string]interface{}, error)
}

// Service não guarda tokens: cada operação recebe o token e devolve o resultado
type Service struct {
	graph     metaclient.Graph
	instagram metaclient.Instagram
}

func NewService(graph metaclient.Graph, instagram metaclient.Instagram) *Service {
	return &Service{
		graph:     graph,
		instagram: instagram,
	}
}

// Introspect consulta o /debug_token e normaliza o resultado
func (s *Service) Introspect(ctx context.Context, token string) (*domain.TokenInspection, error) {
	data, err := s.Decode(ctx, token)
	if err != nil {
		return nil, err
	}

	return Normalize(data), nil
}

// Decode devolve o objeto "data" do /debug_token sem normalização
func (s *Service) Decode(ctx context.Context, token string) (*metadomain.DebugTokenData, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	data, err := s.graph.DebugToken(ctx, token)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"token": log.Redact(token),
			"error": err.Error(),
		}).Error("tokens: falha ao consultar debug_token")
		return nil, err
	}

	return data, nil
}

// ExchangeForLongLived troca um token curto do Instagram por um de ~60 dias
func (s *Service) ExchangeForLongLived(ctx context.Context, shortLivedToken string) (map[string]interface{}, error) {
	if shortLivedToken == "" {
		return nil, ErrMissingToken
	}

	response, err := s.instagram.ExchangeLongLivedToken(ctx, shortLivedToken)
	if err != nil {
		return nil, err
	}

	if token, _ := response["access_token"].(string); token == "" {
		log.ForContext(ctx).Error("tokens: resposta sem access_token")
		return nil, ErrEmptyToken
	}

	logExpiry(ctx, "tokens: token de longa duração obtido", response)

	return response, nil
}

// Refresh renova um token de longa duração. O agendamento fica a cargo de quem chama.
func (s *Service) Refresh(ctx context.Context, longLivedToken string) (map[string]interface{}, error) {
	if longLivedToken == "" {
		return nil, ErrMissingToken
	}

	response, err := s.instagram.RefreshLongLivedToken(ctx, longLivedToken)
	if err != nil {
		return nil, err
	}

	if token, _ := response["access_token"].(string); token == "" {
		log.ForContext(ctx).Error("tokens: resposta sem access_token")
		return nil, ErrEmptyToken
	}

	logExpiry(ctx, "tokens: token renovado", response)

	return response, nil
}

// Normalize converte a resposta do /debug_token em TokenInspection.
// expires_at igual a 0 significa que o token não expira ou que o campo não veio.
func Normalize(data *metadomain.DebugTokenData) *domain.TokenInspection {
	inspection := &domain.TokenInspection{
		IsValid: data.IsValid,
		AppID:   data.AppID,
		Scopes:  data.Scopes,
		Type:    data.Type,
	}

	if inspection.Scopes == nil {
		inspection.Scopes = []string{}
	}

	if data.ExpiresAt > 0 {
		expiresAt := time.Unix(data.ExpiresAt, 0).UTC()
		inspection.ExpiresAt = &expiresAt
	}

	return inspection
}

// ExpiresIn lê o campo expires_in da resposta remota, em segundos
func ExpiresIn(response map[string]interface{}) (int64, bool) {
	switch v := response["expires_in"].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

// FormatDuration formata a duração em segundos para um formato legível
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	days := duration / (24 * time.Hour)
	hours := (duration % (24 * time.Hour)) / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d dias, %d horas e %d minutos", days, hours, minutes)
}

func logExpiry(ctx context.Context, message string, response map[string]interface{}) {
	logger := log.ForContext(ctx)
	if seconds, ok := ExpiresIn(response); ok {
		logger = logger.WithField("expires_in", FormatDuration(seconds))
	}
	logger.Info(message)
}
