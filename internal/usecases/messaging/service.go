package messaging

import (
	"context"

	"github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/social-auth-broker/internal/domain"
	"github.com/vfg2006/social-auth-broker/pkg/log"
)

const DefaultMediaLimit = 10

const msgSent = "Mensaje enviado correctamente"

// SendResult é a resposta do envio de mensagem, com o JSON remoto em Result
type SendResult struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Result  map[string]interface{} `json:"result"`
}

type Messenger interface {
	Profile(ctx context.Context, accessToken string) (*domain.InstagramProfile, error)
	Media(ctx context.Context, accessToken string, limit int) (map[string]interface{}, error)
	InstagramConversations(ctx context.Context, pageID, pageToken string) (map[string]interface{}, error)
	SendInstagramMessage(ctx context.Context, pageID, recipientID, text, pageToken string) (*SendResult, error)
}

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

func (s *Service) Profile(ctx context.Context, accessToken string) (*domain.InstagramProfile, error) {
	if accessToken == "" {
		return nil, ErrMissingToken
	}

	profile, err := s.instagram.GetProfile(ctx, accessToken)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("messaging: falha ao obter perfil")
		return nil, err
	}

	return &domain.InstagramProfile{
		ID:       profile.ID,
		Username: profile.Username,
	}, nil
}

// Media lista as publicações recentes; limit 0 usa DefaultMediaLimit
func (s *Service) Media(ctx context.Context, accessToken string, limit int) (map[string]interface{}, error) {
	if accessToken == "" {
		return nil, ErrMissingToken
	}
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultMediaLimit
	}

	media, err := s.instagram.GetMedia(ctx, accessToken, limit)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("messaging: falha ao obter publicações")
		return nil, err
	}

	return media, nil
}

func (s *Service) InstagramConversations(ctx context.Context, pageID, pageToken string) (map[string]interface{}, error) {
	if pageToken == "" {
		return nil, ErrMissingToken
	}
	if pageID == "" {
		return nil, ErrMissingPageID
	}

	conversations, err := s.graph.GetPageConversations(ctx, pageID, pageToken)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"page_id": pageID,
			"error":   err.Error(),
		}).Error("messaging: falha ao obter conversas")
		return nil, err
	}

	return conversations, nil
}

func (s *Service) SendInstagramMessage(ctx context.Context, pageID, recipientID, text, pageToken string) (*SendResult, error) {
	switch {
	case pageToken == "":
		return nil, ErrMissingToken
	case pageID == "":
		return nil, ErrMissingPageID
	case recipientID == "":
		return nil, ErrMissingRecipient
	case text == "":
		return nil, ErrMissingMessage
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"page_id":      pageID,
		"recipient_id": recipientID,
	})

	result, err := s.graph.SendPageMessage(ctx, pageID, recipientID, text, pageToken)
	if err != nil {
		logger.WithError(err).Error("messaging: falha ao enviar mensagem")
		return nil, err
	}

	logger.Info("messaging: mensagem enviada")

	return &SendResult{
		Success: true,
		Message: msgSent,
		Result:  result,
	}, nil
}
