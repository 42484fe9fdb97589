package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ppiankov/cardiorisk/internal/export"
	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/pipeline"
	"github.com/ppiankov/cardiorisk/internal/session"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`   // message key
	Message string `json:"message"` // localized text
}

var errConsentDisabled = errors.New("consent logging disabled")

// httpError maps a domain error onto a status and a localized message.
func httpError(err error, lang i18n.Language) *echo.HTTPError {
	status, key := http.StatusInternalServerError, "error_api_failed"

	switch {
	case errors.Is(err, session.ErrNotFound):
		status, key = http.StatusNotFound, "error_session_not_found"
	case errors.Is(err, session.ErrNoResult):
		status, key = http.StatusNotFound, "error_no_result"
	case errors.Is(err, session.ErrStale):
		status, key = http.StatusConflict, "error_superseded"
	case errors.Is(err, export.ErrUnknownFormat):
		status, key = http.StatusBadRequest, "error_unknown_format"
	case errors.Is(err, errConsentDisabled):
		status, key = http.StatusServiceUnavailable, "error_consent_disabled"
	case errors.Is(err, pipeline.ErrCircuitOpen):
		status, key = http.StatusServiceUnavailable, pipeline.MessageKey(err)
	case errors.Is(err, pipeline.ErrUpstream), errors.Is(err, pipeline.ErrInvalidResponse):
		status, key = http.StatusBadGateway, pipeline.MessageKey(err)
	}

	he := echo.NewHTTPError(status, ErrorBody{Error: key, Message: i18n.T(lang, key)})
	return he.SetInternal(err)
}

func badRequest(lang i18n.Language, err error) *echo.HTTPError {
	he := echo.NewHTTPError(http.StatusBadRequest, ErrorBody{
		Error:   "error_form_invalid",
		Message: i18n.T(lang, "error_form_invalid"),
	})
	return he.SetInternal(err)
}
