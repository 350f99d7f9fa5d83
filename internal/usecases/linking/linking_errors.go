package linking

import (
	"errors"
	"fmt"
)

var (
	ErrMissingToken = errors.New("token de usuário não informado")
	ErrUserLookup   = errors.New("erro ao obter informações do usuário")
	ErrPagesLookup  = errors.New("erro ao obter as páginas do usuário")
)

// Textos devolvidos ao cliente, que espera respostas em espanhol
const AccountsLookupMessage = "No se pudo obtener información de Instagram"

var stepMessages = map[error]string{
	ErrUserLookup:  "No se pudo obtener información del usuario",
	ErrPagesLookup: "No se pudieron obtener las páginas del usuario",
}

// StepError identifica a etapa que interrompeu a vinculação
type StepError struct {
	Err   error // Etapa (ErrUserLookup ou ErrPagesLookup)
	Cause error // Erro do cliente remoto
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
}

// Unwrap expõe tanto a etapa quanto a causa para errors.Is/As
func (e *StepError) Unwrap() []error {
	return []error{e.Err, e.Cause}
}

// ClientMessage descreve a etapa que falhou no idioma da resposta, seguida da causa remota
func (e *StepError) ClientMessage() string {
	message, ok := stepMessages[e.Err]
	if !ok {
		return e.Error()
	}
	return fmt.Sprintf("%s: %v", message, e.Cause)
}
