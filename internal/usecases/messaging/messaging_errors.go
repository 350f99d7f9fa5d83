package messaging

import "errors"

var (
	ErrMissingToken     = errors.New("token de acesso não informado")
	ErrMissingPageID    = errors.New("page_id é obrigatório")
	ErrMissingRecipient = errors.New("recipient_id é obrigatório")
	ErrMissingMessage   = errors.New("message é obrigatório")
	ErrInvalidLimit     = errors.New("limit deve ser um inteiro positivo")
)

// IsValidationError verifica se o erro vem de um parâmetro ausente ou inválido
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingPageID) ||
		errors.Is(err, ErrMissingRecipient) ||
		errors.Is(err, ErrMissingMessage) ||
		errors.Is(err, ErrInvalidLimit)
}
