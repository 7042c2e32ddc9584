package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a normalized API failure
type Kind int

const (
	// KindUnknown covers any failure the other kinds do not explain
	KindUnknown Kind = iota
	// KindServerMessage means the backend returned a structured error message
	KindServerMessage
	// KindTimeout means the request exceeded the client timeout
	KindTimeout
	// KindNetwork means no response arrived at all (offline, DNS, refused)
	KindNetwork
)

// Fixed user-facing messages for failures without a server-provided text.
const (
	TimeoutMessage = "Időtúllépés történt. Kérjük ellenőrizze az internetkapcsolatát."
	NetworkMessage = "Nem sikerült kapcsolódni a szerverhez. Kérjük ellenőrizze az internetkapcsolatát."
)

// Error is the single error type every service surfaces. Its message is
// user-facing; the wrapped cause carries the transport-level detail for logs.
type Error struct {
	Kind      Kind
	Service   string
	Operation string
	Status    int
	Message   string
	cause     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// httpError is the tagged classification the client produces before
// normalization: exactly one of serverMessage/timeout/noResponse explains the
// failure, otherwise it is unknown.
type httpError struct {
	status        int
	serverMessage string
	timeout       bool
	noResponse    bool
	cause         error
}

func (e *httpError) Error() string {
	switch {
	case e.serverMessage != "":
		return e.serverMessage
	case e.timeout:
		return "request timed out"
	case e.noResponse:
		return "no response from server"
	default:
		return fmt.Sprintf("request failed: %v", e.cause)
	}
}

func (e *httpError) Unwrap() error {
	return e.cause
}

// Normalize converts any failure coming out of the client into an *Error.
// Precedence: structured server message first, then timeout, then no
// response, then the raw failure with service/operation context.
func Normalize(err error, service, operation string) *Error {
	e := &Error{Service: service, Operation: operation, cause: err}

	var he *httpError
	if errors.As(err, &he) {
		e.Status = he.status
		switch {
		case he.serverMessage != "":
			e.Kind = KindServerMessage
			e.Message = fmt.Sprintf("%s hiba: %s", contextPrefix(service, operation), he.serverMessage)
		case he.timeout:
			e.Kind = KindTimeout
			e.Message = TimeoutMessage
		case he.noResponse:
			e.Kind = KindNetwork
			e.Message = NetworkMessage
		default:
			e.Kind = KindUnknown
			e.Message = fmt.Sprintf("%s hiba: %v", contextPrefix(service, operation), he.cause)
		}
		return e
	}

	// Failures before the request ever went out (bad URL, encoding).
	e.Kind = KindUnknown
	e.Message = fmt.Sprintf("%s hiba: %v", contextPrefix(service, operation), err)
	return e
}

// contextPrefix joins the service and operation labels; auth services pass an
// empty operation and get the bare service name.
func contextPrefix(service, operation string) string {
	if operation == "" {
		return service
	}
	return service + " " + operation
}

// IsNotFound reports whether err is a normalized failure for a missing record
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == http.StatusNotFound
}
