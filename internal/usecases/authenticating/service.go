package authenticating

import (
	"context"
	"errors"

	"github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/social-auth-broker/internal/domain"
	"github.com/vfg2006/social-auth-broker/internal/usecases/linking"
	"github.com/vfg2006/social-auth-broker/pkg/apiErrors"
	"github.com/vfg2006/social-auth-broker/pkg/log"
)

const (
	msgSuccess        = "Autenticación exitosa"
	msgPartial        = "Autenticación parcial"
	msgBasicFallback  = "Autenticación exitosa (token básico)"
	warnIncomplete    = "No se pudo obtener información completa: "
	warnNoLongLived   = "No se pudo obtener token de larga duración"
	detailMissingCode = "No se recibió un código de autorización"
	detailExchange    = "Fallo en la solicitud de token"
	detailNoToken     = "No se pudo obtener el token"

	defaultDeniedReason      = "desconocido"
	defaultDeniedDescription = "Sin descripción"
)

type Authenticator interface {
	BusinessLoginURL(ctx context.Context) (*domain.LoginURL, error)
	BasicLoginURL(ctx context.Context) (*domain.LoginURL, error)
	BusinessCallback(ctx context.Context, params domain.CallbackParams) (domain.CallbackResult, error)
	BasicCallback(ctx context.Context, params domain.CallbackParams) (domain.CallbackResult, error)
}

type Service struct {
	graph     metaclient.Graph
	instagram metaclient.Instagram
	linker    linking.Linker
	urls      *metaclient.AuthorizeURLs
	states    *StateManager
}

func NewService(
	graph metaclient.Graph,
	instagram metaclient.Instagram,
	linker linking.Linker,
	urls *metaclient.AuthorizeURLs,
	states *StateManager,
) *Service {
	return &Service{
		graph:     graph,
		instagram: instagram,
		linker:    linker,
		urls:      urls,
		states:    states,
	}
}

func (s *Service) BusinessLoginURL(ctx context.Context) (*domain.LoginURL, error) {
	state, err := s.states.Issue(domain.BusinessFlow)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("auth: erro ao gerar state")
		return nil, err
	}

	return &domain.LoginURL{
		LoginURL: s.urls.Business(state),
		State:    state,
	}, nil
}

func (s *Service) BasicLoginURL(ctx context.Context) (*domain.LoginURL, error) {
	state, err := s.states.Issue(domain.BasicFlow)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("auth: erro ao gerar state")
		return nil, err
	}

	return &domain.LoginURL{
		LoginURL: s.urls.Basic(state),
		State:    state,
	}, nil
}

// BusinessCallback troca o código pelo token de usuário do Facebook e vincula
// páginas e contas do Instagram. Se a vinculação falhar o token ainda é devolvido.
func (s *Service) BusinessCallback(ctx context.Context, params domain.CallbackParams) (domain.CallbackResult, error) {
	logger := log.ForContext(ctx).WithField("flow", domain.BusinessFlow)

	if denied := deniedResult(params); denied != nil {
		logger.WithFields(log.Fields{
			"error":  denied.Error,
			"reason": denied.Reason,
		}).Info("auth: autorização negada pela plataforma")
		return denied, nil
	}

	if err := s.checkCallback(domain.BusinessFlow, params); err != nil {
		logger.WithError(err).Warn("auth: callback rejeitado")
		return nil, err
	}

	token, err := s.graph.ExchangeCode(ctx, params.Code)
	if err != nil {
		logger.WithError(err).Error("auth: falha na troca do código")
		return nil, NewAuthErrorWithCause(ErrCodeExchange, exchangeErrorCode(err), detailExchange, err)
	}

	if token.AccessToken == "" {
		logger.Error("auth: resposta sem access_token")
		return nil, NewAuthError(ErrTokenNotIssued, apiErrors.ErrExternalService, detailNoToken)
	}

	linked, err := s.linker.LinkAccounts(ctx, token.AccessToken)
	if err != nil {
		logger.WithError(err).Warn("auth: vinculação incompleta, devolvendo apenas o token")
		return &domain.BusinessLoginPartial{
			Message:       msgPartial,
			Status:        domain.StatusPartial,
			FacebookToken: token.AccessToken,
			Warning:       warnIncomplete + linkingFailure(err),
		}, nil
	}

	logger.WithFields(log.Fields{
		"user_id": linked.User.ID,
		"pages":   len(linked.Pages),
	}).Info("auth: login business concluído")

	return &domain.BusinessLoginComplete{
		Message:            msgSuccess,
		Status:             domain.StatusComplete,
		UserInfo:           linked.User,
		FacebookToken:      token.AccessToken,
		PagesWithInstagram: linked.Pages,
	}, nil
}

// BasicCallback troca o código pelo token curto do Instagram e tenta obter o
// token de longa duração e o perfil. Qualquer falha nessa etapa devolve só o token curto.
func (s *Service) BasicCallback(ctx context.Context, params domain.CallbackParams) (domain.CallbackResult, error) {
	logger := log.ForContext(ctx).WithField("flow", domain.BasicFlow)

	if denied := deniedResult(params); denied != nil {
		logger.WithFields(log.Fields{
			"error":  denied.Error,
			"reason": denied.Reason,
		}).Info("auth: autorização negada pela plataforma")
		return denied, nil
	}

	if err := s.checkCallback(domain.BasicFlow, params); err != nil {
		logger.WithError(err).Warn("auth: callback rejeitado")
		return nil, err
	}

	token, err := s.instagram.ExchangeCode(ctx, params.Code)
	if err != nil {
		logger.WithError(err).Error("auth: falha na troca do código")
		return nil, NewAuthErrorWithCause(ErrCodeExchange, exchangeErrorCode(err), detailExchange, err)
	}

	if token.AccessToken == "" {
		logger.Error("auth: resposta sem access_token")
		return nil, NewAuthError(ErrTokenNotIssued, apiErrors.ErrExternalService, detailNoToken)
	}

	userID := string(token.UserID)
	partial := &domain.BasicLoginPartial{
		Message:     msgBasicFallback,
		Status:      domain.StatusPartial,
		AccessToken: token.AccessToken,
		UserID:      userID,
		Warning:     warnNoLongLived,
	}

	longLived, err := s.instagram.ExchangeLongLivedToken(ctx, token.AccessToken)
	if err != nil {
		logger.WithError(err).Warn("auth: falha ao obter token de longa duração")
		return partial, nil
	}

	longLivedToken, _ := longLived["access_token"].(string)
	if longLivedToken == "" {
		logger.Warn("auth: resposta de longa duração sem access_token")
		return partial, nil
	}

	profile, err := s.instagram.GetProfile(ctx, longLivedToken)
	if err != nil {
		logger.WithError(err).Warn("auth: falha ao obter perfil")
		return partial, nil
	}

	logger.WithField("user_id", userID).Info("auth: login básico concluído")

	return &domain.BasicLoginComplete{
		Message:         msgSuccess,
		Status:          domain.StatusComplete,
		ShortLivedToken: token.AccessToken,
		LongLivedToken:  longLived,
		UserID:          userID,
		Profile: &domain.InstagramProfile{
			ID:       profile.ID,
			Username: profile.Username,
		},
	}, nil
}

func (s *Service) checkCallback(flow domain.AuthFlow, params domain.CallbackParams) error {
	if params.Code == "" {
		return NewAuthError(ErrMissingCode, apiErrors.ErrMissingRequiredData, detailMissingCode)
	}

	if err := s.states.Verify(flow, params.State); err != nil {
		if errors.Is(err, ErrMissingState) {
			return NewAuthError(ErrMissingState, apiErrors.ErrMissingState, "")
		}
		return NewAuthErrorWithCause(ErrInvalidState, apiErrors.ErrInvalidState, "", err)
	}

	return nil
}

// deniedResult ecoa o erro enviado pela plataforma no redirect, sem chamadas remotas
func deniedResult(params domain.CallbackParams) *domain.CallbackDenied {
	if params.Error == "" {
		return nil
	}

	denied := &domain.CallbackDenied{
		Error:       params.Error,
		Reason:      params.ErrorReason,
		Description: params.ErrorDescription,
	}
	if denied.Reason == "" {
		denied.Reason = defaultDeniedReason
	}
	if denied.Description == "" {
		denied.Description = defaultDeniedDescription
	}

	return denied
}

// linkingFailure descreve a falha da vinculação no idioma da resposta
func linkingFailure(err error) string {
	var stepErr *linking.StepError
	if errors.As(err, &stepErr) {
		return stepErr.ClientMessage()
	}
	return err.Error()
}

func exchangeErrorCode(err error) string {
	if _, ok := metaclient.AsTransportError(err); ok {
		return apiErrors.ErrCommunication
	}
	return apiErrors.ErrExternalService
}
