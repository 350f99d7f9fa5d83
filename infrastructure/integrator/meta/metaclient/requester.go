package metaclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/social-auth-broker/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// request descreve uma única chamada a um endpoint remoto
type request struct {
	operation string
	method    string
	endpoint  string
	query     url.Values
	jsonBody  interface{}
	form      url.Values
}

type requester struct {
	httpClient *http.Client
}

// NewHTTPClient cria o cliente compartilhado; o timeout é o único controle
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// do executa a requisição e decodifica o corpo 2xx em out (quando não nil).
// Falhas de rede viram *TransportError; respostas fora de 2xx viram *RemoteError.
func (r *requester) do(ctx context.Context, req request, out interface{}) error {
	var body io.Reader
	contentType := ""

	switch {
	case req.jsonBody != nil:
		payload, err := json.Marshal(req.jsonBody)
		if err != nil {
			return errors.Wrapf(err, "%s: erro ao serializar corpo", req.operation)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	case req.form != nil:
		body = strings.NewReader(req.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	target := req.endpoint
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return errors.Wrapf(err, "%s: erro ao criar a requisição", req.operation)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"operation": req.operation,
		"method":    req.method,
		"endpoint":  req.endpoint,
	})

	startTime := time.Now()
	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		logger.WithError(err).Error("Erro ao fazer a requisição")
		return &TransportError{Operation: req.operation, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.WithError(err).Error("Erro ao ler a resposta")
		return &TransportError{Operation: req.operation, Err: err}
	}

	logger = logger.WithFields(log.Fields{
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(startTime).Milliseconds(),
	})

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.WithField("response", string(raw)).Warn("Resposta de erro da plataforma")
		return newRemoteError(req.operation, resp.StatusCode, raw)
	}

	logger.Debug("Resposta recebida da plataforma")

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		logger.WithError(err).Error("Erro ao decodificar JSON")
		return errors.Wrapf(err, "%s: resposta inválida", req.operation)
	}

	return nil
}
