package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/arkhamworks/investigator/internal/errors/i18n"
)

// DefaultLocale is the default locale for error messages.
const DefaultLocale = "en-US"

// Response is the JSON error envelope returned to clients.
type Response struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Locale  string            `json:"locale"`
	Details map[string]string `json:"details,omitempty"`
}

// HandleError converts domain errors to an HTTP status and response body.
// It formats the user-facing message using the i18n catalog for the given
// locale, defaulting to en-US if the locale is empty.
func HandleError(err error, locale string) (int, Response) {
	if locale == "" {
		locale = DefaultLocale
	}

	var appErr *Error
	if stderrors.As(err, &appErr) {
		catalog := i18n.GetCatalog(locale)
		userMsg := catalog.Format(string(appErr.Code), appErr.Metadata)
		return appErr.Code.HTTPStatus(), Response{
			Code:    string(appErr.Code),
			Message: userMsg,
			Locale:  catalog.Locale(),
			Details: appErr.Metadata,
		}
	}

	// Unknown error: return internal with a generic message.
	return http.StatusInternalServerError, Response{
		Code:    string(CodeUnknown),
		Message: "an unexpected error occurred",
		Locale:  locale,
	}
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a domain error.
func GetCode(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
