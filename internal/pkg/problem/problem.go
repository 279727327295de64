// Package problem builds the RFC 7807-style error body returned by every
// failed request.
//
// From is a pure function: given a failure, a trace identifier, and the
// request path it always produces a response, including for errors it has
// never seen (those land in the 500 branch). Logging and writing the body are
// the router's job.
package problem

import (
	"errors"
	"net/http"

	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

const (
	typeBadRequest  = "https://tools.ietf.org/html/rfc7231#section-6.5.1"
	typeNotFound    = "https://tools.ietf.org/html/rfc7231#section-6.5.4"
	typeNotAllowed  = "https://tools.ietf.org/html/rfc7231#section-6.5.5"
	typeServer      = "https://tools.ietf.org/html/rfc7231#section-6.6.1"
	typeUnavailable = "https://tools.ietf.org/html/rfc7231#section-6.6.4"

	titleNotFound   = "Not Found"
	titleBadRequest = "Bad Request"
	titleValidation = "Validation Error"
	titleServer     = "An error occurred while processing your request."

	genericDetail = "An unexpected error occurred. Please try again later."
)

// Problem is the structured error response body.
type Problem struct {
	Type     string              `json:"type"`
	Title    string              `json:"title"`
	Status   int                 `json:"status"`
	Detail   string              `json:"detail"`
	Instance string              `json:"instance"`
	Errors   map[string][]string `json:"errors,omitempty"`
	TraceID  string              `json:"traceId"`
}

// New builds a response body for failures the router produces itself, such
// as unknown endpoints or maintenance pages.
func New(status int, title, detail, instance string) Problem {
	typ := typeServer
	switch status {
	case http.StatusBadRequest:
		typ = typeBadRequest
	case http.StatusNotFound:
		typ = typeNotFound
	case http.StatusMethodNotAllowed:
		typ = typeNotAllowed
	case http.StatusServiceUnavailable:
		typ = typeUnavailable
	}

	return Problem{
		Type:     typ,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: instance,
	}
}

// From maps a failure to its response body. Unrecognized errors become a 500;
// their detail text is only revealed when debug is set (development mode) so
// internals never leak in other environments.
func From(err error, traceID, instance string, debug bool) Problem {
	p := Problem{
		Type:     typeServer,
		Title:    titleServer,
		Status:   http.StatusInternalServerError,
		Detail:   genericDetail,
		Instance: instance,
		TraceID:  traceID,
	}
	if debug && err != nil {
		p.Detail = err.Error()
	}

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		return p
	}

	switch gerr.Kind() {
	case goerror.KindNotFound:
		p.Type = typeNotFound
		p.Title = titleNotFound
		p.Status = http.StatusNotFound
		p.Detail = gerr.Msg()

	case goerror.KindBadRequest:
		p.Type = typeBadRequest
		p.Title = titleBadRequest
		p.Status = http.StatusBadRequest
		p.Detail = gerr.Msg()

	case goerror.KindValidation:
		p.Type = typeBadRequest
		p.Title = titleValidation
		p.Status = http.StatusBadRequest
		p.Detail = gerr.Msg()
		p.Errors = gerr.Fields()

	case goerror.KindServer:
		// already populated above; keep the generic or debug detail
	}

	return p
}
