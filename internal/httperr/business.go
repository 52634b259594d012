package httperr

import "errors"

// Kind classifies a business-rule failure. Every kind is recoverable and
// user-facing; the core never retries and never treats these as fatal.
type Kind int

const (
	KindNotFound Kind = iota
	KindBadRequest
	KindConflict
	KindForbidden
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func NotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func BadRequest(code string) error {
	return BusinessError{Kind: KindBadRequest, Code: code}
}

func Conflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func Forbidden(code string) error {
	return BusinessError{Kind: KindForbidden, Code: code}
}

// IsKind reports whether err is a BusinessError of the given kind.
func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

// IsCode reports whether err carries the given business code.
func IsCode(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
