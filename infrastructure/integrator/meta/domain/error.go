package metadomain

// ErrorResponse representa a estrutura de erro das APIs da Meta.
// A Graph API usa o objeto "error"; a API OAuth do Instagram responde com
// error_type/error_message no nível raiz.
type ErrorResponse struct {
	Error        *ErrorDetails `json:"error,omitempty"`
	ErrorType    string        `json:"error_type,omitempty"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Code         int           `json:"code,omitempty"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// Empty indica que o corpo não era um envelope de erro reconhecido
func (e *ErrorResponse) Empty() bool {
	return e.Error == nil && e.ErrorType == "" && e.ErrorMessage == ""
}

// Message retorna a mensagem legível, qualquer que seja o formato do envelope
func (e *ErrorResponse) Message() string {
	if e.Error != nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return e.ErrorMessage
}
