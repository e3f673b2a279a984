package utils

import (
	"encoding/json"
	"io"
	"net/http"
)

// ContextKey ключ для контекста реквеста
type ContextKey int

const (
	// RequestUUIDKey ключ, по которому в контексте
	// реквеста хранится его токен
	RequestUUIDKey ContextKey = iota + 1
)

// TokenInfo достаёт токен запроса из контекста
func TokenInfo(r *http.Request) string {
	if rv := r.Context().Value(RequestUUIDKey); rv != nil {
		if token, ok := rv.(string); ok {
			return token
		}
	}

	return ""
}

// DecodeBodyJSON парсит body в переданную структуру
func DecodeBodyJSON(body io.Reader, v interface{}) error {
	decoder := json.NewDecoder(body)
	err := decoder.Decode(v)
	if err != nil {
		return err
	}

	return nil
}

// WriteApplicationJSON отправить JSON со структурой или 500, если не ок;
func WriteApplicationJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	respJSON, err := json.Marshal(v)
	if err != nil {
		code = http.StatusInternalServerError
		respJSON, _ = json.Marshal(NewAPIError(ErrInternal))
	}

	w.WriteHeader(code)
	w.Write(respJSON) //nolint: errcheck
}
