package pkg

// AppError is the transport-facing error shape used by HTTP handlers.
//
// Usecases return sentinel errors; handlers map them to an AppError carrying
// a stable machine code, a human message and the HTTP status to respond with.
// Details optionally carries the current authoritative state (e.g. the
// current version number on a concurrency conflict) so callers can re-fetch
// and retry.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
	Details    any
}

type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}
