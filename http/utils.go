package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jayadityagandham/Scholar-Nexus/errors"
)

// encodeError writes an error as an HTTP response. It handles the status code
// contained in the error.
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	statusCode := http.StatusInternalServerError
	if err, ok := err.(errors.Error); ok {
		statusCode = err.Code()
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}

// Registrar defines the interface to register the http handlers.
type Registrar interface {
	RegisterHandler(path, method string, f http.Handler)
}
