package tokens

import "errors"

var (
	ErrMissingToken = errors.New("token não informado")
	ErrEmptyToken   = errors.New("token retornado pela plataforma é vazio")
)
