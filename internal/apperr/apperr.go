// Package apperr is the single error taxonomy used across the service.
// Every error that crosses a handler boundary is wrapped into one of the
// Kinds below before being mapped to a transport status code.
package apperr

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/zeromicro/go-zero/core/logx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Kind int

const (
	Database Kind = iota
	NotFound
	BadRequest
	UniqueViolation
	Unauthorized
	InvalidProvider
	OTPRequired
	OTPInvalid
	IncorrectCredentials
	Validation
	Other
)

func (k Kind) tag() string {
	switch k {
	case Database:
		return "database_error"
	case NotFound:
		return "not_found"
	case BadRequest:
		return "bad_request"
	case UniqueViolation:
		return "unique_violation"
	case Unauthorized:
		return "unauthorized"
	case InvalidProvider:
		return "invalid_provider"
	case OTPRequired:
		return "otp_required"
	case OTPInvalid:
		return "otp_invalid"
	case IncorrectCredentials:
		return "incorrect_credentials"
	case Validation:
		return "validation_error"
	default:
		return "other_error"
	}
}

func (k Kind) code() codes.Code {
	switch k {
	case Database:
		return codes.Internal
	case NotFound:
		return codes.NotFound
	case BadRequest, InvalidProvider, OTPInvalid:
		return codes.InvalidArgument
	case UniqueViolation:
		return codes.AlreadyExists
	case Unauthorized, IncorrectCredentials:
		return codes.PermissionDenied
	case OTPRequired, Validation:
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}

// Error is the concrete taxonomy error. FieldErrors is populated only for
// Kind == Validation and renders as a compact JSON-like object.
type Error struct {
	Kind        Kind
	Message     string
	FieldErrors map[string]string
}

func (e *Error) Error() string {
	if e.Kind == Validation && len(e.FieldErrors) > 0 {
		var b strings.Builder
		first := true
		for field, msg := range e.FieldErrors {
			if !first {
				b.WriteString(", ")
			}
			first = false
			fmt.Fprintf(&b, "%q: %q", field, msg)
		}
		return b.String()
	}
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NewValidation(fields map[string]string) *Error {
	return &Error{Kind: Validation, FieldErrors: fields}
}

// FromDatabaseError classifies a raw database error, promoting a
// unique-violation SQLSTATE (23505) to Kind UniqueViolation.
func FromDatabaseError(err error) *Error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return New(UniqueViolation, pqErr.Message)
	}
	return New(Database, err.Error())
}

// ToStatus logs the error at the tag matching its kind and maps it to a
// gRPC status. Non-taxonomy errors are treated as Kind Other.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	appErr, ok := err.(*Error)
	if !ok {
		appErr = New(Other, err.Error())
	}
	logx.Errorf("[%s]: %v", appErr.Kind.tag(), appErr.Error())
	return status.New(appErr.Kind.code(), appErr.Error()).Err()
}
