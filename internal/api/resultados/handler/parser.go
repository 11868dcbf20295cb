package resultadosHandler

import (
	"MonitoreoBackend/internal/api/resultados"
	"errors"
	"mime/multipart"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

// bodyJSON keeps numbers as json.Number so values outside the float64 range
// still decode and are logged verbatim.
var bodyJSON = jsoniter.Config{
	EscapeHTML:             true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

var errInvalidUTF8 = errors.New("request body is not valid UTF-8")

var parsedMediaTypes = []string{
	fiber.MIMEApplicationJSON,
	fiber.MIMEApplicationForm,
	fiber.MIMEMultipartForm,
}

// decodeBody turns the request body into a generic value according to its
// Content-Type. An empty body always decodes to an empty object.
func decodeBody(ctx *fiber.Ctx) (interface{}, error) {
	body := ctx.Body()
	if len(body) == 0 {
		return map[string]interface{}{}, nil
	}

	contentType := ctx.Get(fiber.HeaderContentType)
	mediaType := mediaTypeOf(contentType)

	switch {
	case mediaType == fiber.MIMEApplicationJSON:
		if !utf8.Valid(body) {
			return nil, resultados.ErrMalformedJSON(errInvalidUTF8)
		}

		var payload interface{}
		if err := bodyJSON.Unmarshal(body, &payload); err != nil {
			return nil, resultados.ErrMalformedJSON(err)
		}
		return payload, nil

	case mediaType == fiber.MIMEApplicationForm:
		values := make(map[string][]string)
		ctx.Request().PostArgs().VisitAll(func(key, value []byte) {
			k := string(key)
			values[k] = append(values[k], string(value))
		})
		return flatten(values), nil

	case mediaType == fiber.MIMEMultipartForm:
		form, err := ctx.MultipartForm()
		if err != nil {
			return nil, resultados.ErrMalformedMultipart(err)
		}
		return multipartToMap(form), nil

	default:
		return nil, resultados.ErrUnsupportedMediaType(contentType)
	}
}

func mediaTypeOf(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i != -1 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

func multipartToMap(form *multipart.Form) map[string]interface{} {
	values := make(map[string][]string, len(form.Value)+len(form.File))
	for key, vals := range form.Value {
		values[key] = append(values[key], vals...)
	}
	for key, files := range form.File {
		for _, file := range files {
			values[key] = append(values[key], file.Filename)
		}
	}
	return flatten(values)
}

func flatten(values map[string][]string) map[string]interface{} {
	out := make(map[string]interface{}, len(values))
	for key, vals := range values {
		if len(vals) == 1 {
			out[key] = vals[0]
			continue
		}
		out[key] = vals
	}
	return out
}
