package httputil

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// Envelope wraps every successful response body
type Envelope[T any] struct {
	Data T `json:"data"`
}

type ErrorResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
		Details: details,
	}
	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteData[T any](w http.ResponseWriter, statusCode int, data T) {
	WriteJSONResponse(w, statusCode, Envelope[T]{Data: data})
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}
