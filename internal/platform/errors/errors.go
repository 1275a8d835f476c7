// Package errors defines Apollo's coded domain errors and their mapping to
// gRPC statuses and HTTP responses.
package errors

import (
	stderrors "errors"

	"github.com/louisbranch/apollo/internal/platform/errors/i18n"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// Domain identifies Apollo in errdetails.ErrorInfo.
const Domain = "github.com/louisbranch/apollo"

// Error is a coded failure. Message is for logs; users see the catalog
// template for Code rendered with Metadata.
type Error struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
	// UserMessage is the localized text received from a remote peer.
	UserMessage string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

// Localize renders the user-facing message for locale. A message already
// localized by a remote peer is returned as is.
func (e *Error) Localize(locale string) string {
	if e.UserMessage != "" {
		return e.UserMessage
	}
	return i18n.GetCatalog(locale).Format(string(e.Code), e.Metadata)
}

// New creates a domain error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WithMetadata creates a domain error whose message template uses metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata}
}

// Wrap creates a domain error caused by cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// WrapWithMetadata combines WithMetadata and Wrap.
func WrapWithMetadata(code Code, message string, metadata map[string]string, cause error) *Error {
	return &Error{Code: code, Message: message, Metadata: metadata, Cause: cause}
}

// CodeOf returns the code of the first domain error in err's chain, or
// CodeUnknown when there is none.
func CodeOf(err error) Code {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}
	return CodeUnknown
}

// Localize renders any error for locale. Errors without a domain error in
// their chain render as CodeUnknown.
func Localize(err error, locale string) string {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr.Localize(locale)
	}
	return i18n.GetCatalog(locale).Format(string(CodeUnknown), nil)
}

// ToGRPCStatus converts e to a status carrying ErrorInfo and a
// LocalizedMessage rendered for locale.
func (e *Error) ToGRPCStatus(locale string) error {
	st := status.New(e.Code.GRPCCode(), e.Message)
	detailed, err := st.WithDetails(
		&errdetails.ErrorInfo{Reason: string(e.Code), Domain: Domain, Metadata: e.Metadata},
		&errdetails.LocalizedMessage{Locale: locale, Message: e.Localize(locale)},
	)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// FromGRPCStatus recovers a domain error from a status produced by
// ToGRPCStatus. Statuses without Apollo ErrorInfo map to CodeUnknown.
func FromGRPCStatus(err error) *Error {
	st, ok := status.FromError(err)
	if !ok {
		return Wrap(CodeUnknown, err.Error(), err)
	}
	recovered := Wrap(CodeUnknown, st.Message(), err)
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			if d.GetDomain() == Domain {
				recovered.Code = Code(d.GetReason())
				recovered.Metadata = d.GetMetadata()
			}
		case *errdetails.LocalizedMessage:
			recovered.UserMessage = d.GetMessage()
		}
	}
	return recovered
}
