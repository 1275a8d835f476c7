package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Registry errors
	CodeIconUnknown  Code = "ICON_UNKNOWN"
	CodeIconRefEmpty Code = "ICON_REF_EMPTY"

	// Presentation errors
	CodeRenderInvalidSize Code = "RENDER_INVALID_SIZE"
	CodePageSizeInvalid   Code = "PAGE_SIZE_INVALID"
	CodePageTokenInvalid  Code = "PAGE_TOKEN_INVALID"

	// Release ledger errors
	CodeReleaseVersionEmpty  Code = "RELEASE_VERSION_EMPTY"
	CodeReleaseNotFound      Code = "RELEASE_NOT_FOUND"
	CodeReleaseAlreadyExists Code = "RELEASE_ALREADY_EXISTS"
	CodeCompatBroken         Code = "COMPAT_BROKEN"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeIconRefEmpty,
		CodeRenderInvalidSize,
		CodePageSizeInvalid,
		CodePageTokenInvalid,
		CodeReleaseVersionEmpty:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeCompatBroken:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeIconUnknown,
		CodeReleaseNotFound:
		return codes.NotFound

	// AlreadyExists - unique resource constraint
	case CodeReleaseAlreadyExists:
		return codes.AlreadyExists

	default:
		return codes.Internal
	}
}

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c.GRPCCode() {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.FailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
