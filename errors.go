package oxforddict

import (
	"fmt"
	"net/http"
)

// TransportError reports that the HTTP exchange never completed, for example
// a refused connection, a DNS failure or a timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("oxforddict: request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError reports a response with a status code outside the 2xx range. Body
// holds the raw response body for diagnostics.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("oxforddict: unexpected status %d: %s", e.StatusCode, e.Body)
}

// IsBadRequest reports whether the API rejected the request as malformed,
// typically a filter or parameter it does not know.
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

// IsAuthentication reports whether the credentials were missing or wrong.
func (e *APIError) IsAuthentication() bool {
	return e.StatusCode == http.StatusForbidden
}

// IsNotFound reports whether the API has no information for the requested
// word, language or filter combination.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsServerError reports whether the failure happened on the server side.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode <= 599
}

// DecodeError reports a response body that is not valid JSON. Body holds the
// raw bytes that failed to decode.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("oxforddict: decode json: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnsupportedLanguageError reports a source language outside
// SupportedLanguages.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("oxforddict: unsupported language %q", e.Language)
}
