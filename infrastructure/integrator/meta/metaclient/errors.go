package metaclient

import (
	"fmt"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/social-auth-broker/infrastructure/integrator/meta/domain"
)

// RemoteError é uma resposta HTTP fora da faixa 2xx devolvida pela plataforma
type RemoteError struct {
	Operation  string
	StatusCode int
	Body       []byte
	Graph      *metadomain.ErrorResponse
}

func newRemoteError(operation string, statusCode int, body []byte) *RemoteError {
	remoteErr := &RemoteError{
		Operation:  operation,
		StatusCode: statusCode,
		Body:       body,
	}

	var envelope metadomain.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && !envelope.Empty() {
		remoteErr.Graph = &envelope
	}

	return remoteErr
}

func (e *RemoteError) Error() string {
	if e.Graph != nil && e.Graph.Message() != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Operation, e.StatusCode, e.Graph.Message())
	}
	return fmt.Sprintf("%s: status %d: %s", e.Operation, e.StatusCode, string(e.Body))
}

// Detail devolve o corpo decodificado como JSON ou, se não for JSON, o texto bruto
func (e *RemoteError) Detail() interface{} {
	if len(e.Body) == 0 {
		return nil
	}

	var decoded interface{}
	if err := json.Unmarshal(e.Body, &decoded); err == nil {
		return decoded
	}
	return string(e.Body)
}

// TransportError é uma falha de rede (DNS, conexão recusada, timeout, leitura)
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: falha de comunicação: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AsRemoteError extrai um *RemoteError da cadeia de erros
func AsRemoteError(err error) (*RemoteError, bool) {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr, true
	}
	return nil, false
}

// AsTransportError extrai um *TransportError da cadeia de erros
func AsTransportError(err error) (*TransportError, bool) {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr, true
	}
	return nil, false
}
