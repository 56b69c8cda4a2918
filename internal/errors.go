package internal

import "fmt"

// Kind classifies the ways a single connection can fail.
type Kind int

const (
	MethodNotSupported Kind = iota
	MalformedRequest
	RequestTooLarge
	IncompleteRequest
	NotFound
	ResourceFailure
)

func (k Kind) Error() string {
	switch k {
	case MethodNotSupported:
		return "method not supported"
	case MalformedRequest:
		return "malformed request"
	case RequestTooLarge:
		return "request too large"
	case IncompleteRequest:
		return "incomplete request"
	case NotFound:
		return "not found"
	case ResourceFailure:
		return "resource failure"
	default:
		return fmt.Sprintf("unknown error: %d", int(k))
	}
}

// Error carries a Kind together with what it happened to.
type Error struct {
	Kind       Kind
	Subject    string
	underlying error
}

func (e *Error) Error() string {
	s := e.Kind.Error()
	if e.Subject != "" {
		s = fmt.Sprintf("%s: %q", s, e.Subject)
	}
	if e.underlying != nil {
		s = fmt.Sprintf("%s (underlying: %v)", s, e.underlying)
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.underlying
}

// Is makes errors.Is(err, NotFound) and friends work.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

func newError(kind Kind, subject string, underlying error) *Error {
	return &Error{
		Kind:       kind,
		Subject:    subject,
		underlying: underlying,
	}
}
