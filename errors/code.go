package errors

import (
	"net/http"
)

func BadRequest() ErrorEnricher { return WithCode(http.StatusBadRequest) }
func NotFound() ErrorEnricher   { return WithCode(http.StatusNotFound) }
func Conflict() ErrorEnricher   { return WithCode(http.StatusConflict) }
