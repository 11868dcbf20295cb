package resultados

import (
	"MonitoreoBackend/pkg/response"
	"net/http"
)

func ErrMalformedJSON(cause error) error {
	return response.NewErrorf(http.StatusBadRequest, "JSON parse error - %w", cause)
}

func ErrMalformedMultipart(cause error) error {
	return response.NewErrorf(http.StatusBadRequest, "Multipart form parse error - %w", cause)
}

func ErrUnsupportedMediaType(contentType string) error {
	return response.NewErrorf(http.StatusUnsupportedMediaType, "Unsupported media type %q in request.", contentType)
}

func ErrMethodNotAllowed(method string) error {
	return response.NewErrorf(http.StatusMethodNotAllowed, "Method %q not allowed.", method)
}
