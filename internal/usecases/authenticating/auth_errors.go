package authenticating

import (
	"errors"
	"fmt"
)

// Tipos de erros de autenticação personalizados
var (
	// Erros de validação
	ErrMissingCode  = errors.New("código de autorização ausente")
	ErrMissingState = errors.New("parâmetro state ausente")
	ErrInvalidState = errors.New("parâmetro state inválido")

	// Erros na troca do código
	ErrCodeExchange   = errors.New("falha na troca do código de autorização")
	ErrTokenNotIssued = errors.New("a plataforma não retornou um token")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
	Cause   error  // Erro do cliente remoto (quando aplicável)
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	msg := e.Err.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap retorna o erro base e a causa
func (e *AuthError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// IsStateError verifica se o erro está relacionado ao parâmetro state
func IsStateError(err error) bool {
	return errors.Is(err, ErrInvalidState) || errors.Is(err, ErrMissingState)
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewAuthErrorWithCause cria um erro de autenticação preservando o erro de origem
func NewAuthErrorWithCause(baseErr error, code string, details string, cause error) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
		Cause:   cause,
	}
}
