package linking

import (
	"context"
	"fmt"

	metadomain "github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/social-auth-broker/internal/config"
	"github.com/vfg2006/social-auth-broker/internal/domain"
	"github.com/vfg2006/social-auth-broker/pkg/log"
	"golang.org/x/sync/errgroup"
)

type Linker interface {
	LinkAccounts(ctx context.Context, userToken string) (*domain.LinkedAccounts, error)
}

type Service struct {
	graph       metaclient.Graph
	concurrency int
}

func NewService(graph metaclient.Graph, cfg *config.Config) *Service {
	concurrency := cfg.Linking.PageLookupConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &Service{
		graph:       graph,
		concurrency: concurrency,
	}
}

// LinkAccounts busca o usuário, suas páginas e a conta Instagram Business de
// cada página. Falhas no usuário ou na lista de páginas interrompem tudo;
// falhas por página ficam registradas na própria entrada.
func (s *Service) LinkAccounts(ctx context.Context, userToken string) (*domain.LinkedAccounts, error) {
	if userToken == "" {
		return nil, ErrMissingToken
	}

	logger := log.ForContext(ctx).WithField("token", log.Redact(userToken))

	user, err := s.graph.GetUser(ctx, userToken)
	if err != nil {
		logger.WithError(err).Error("linking: falha ao obter usuário")
		return nil, &StepError{Err: ErrUserLookup, Cause: err}
	}

	pages, err := s.graph.GetManagedPages(ctx, userToken)
	if err != nil {
		logger.WithError(err).Error("linking: falha ao listar páginas")
		return nil, &StepError{Err: ErrPagesLookup, Cause: err}
	}

	managed := s.lookupAccounts(ctx, pages)

	result := &domain.LinkedAccounts{
		User: domain.UserIdentity{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
		Pages: managed,
	}

	logger.WithFields(log.Fields{
		"user_id":      user.ID,
		"pages":        len(managed),
		"failed_pages": result.FailedPages(),
	}).Info("linking: contas vinculadas")

	return result, nil
}

// lookupAccounts consulta as páginas com no máximo s.concurrency chamadas
// simultâneas. Cada goroutine escreve apenas no seu índice.
func (s *Service) lookupAccounts(ctx context.Context, pages []metadomain.Page) []domain.ManagedPage {
	managed := make([]domain.ManagedPage, len(pages))

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for i, page := range pages {
		i, page := i, page
		g.Go(func() error {
			managed[i] = s.lookupAccount(ctx, page)
			return nil
		})
	}

	// as goroutines nunca retornam erro
	_ = g.Wait()

	return managed
}

func (s *Service) lookupAccount(ctx context.Context, page metadomain.Page) domain.ManagedPage {
	entry := domain.ManagedPage{
		PageID:       page.ID,
		PageName:     page.Name,
		PageCategory: page.Category,
		PageToken:    page.AccessToken,
	}

	account, err := s.graph.GetPageBusinessAccount(ctx, page.ID, page.AccessToken)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"page_id": page.ID,
			"error":   err.Error(),
		}).Warn("linking: falha ao consultar conta do Instagram da página")
		entry.Error = fmt.Sprintf("%s: %v", AccountsLookupMessage, err)
		return entry
	}

	if account != nil {
		entry.InstagramAccount = &domain.BusinessAccountLink{
			ID:                account.ID,
			Username:          account.Username,
			ProfilePictureURL: account.ProfilePictureURL,
		}
	}

	return entry
}
