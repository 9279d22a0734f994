package errors

import (
	stderrors "errors"

	"github.com/scrapzee/scrapzee-cli/constant"
)

// CustomError is the only error type that crosses an application boundary.
// It carries the taxonomy bucket plus, for backend rejections, the verbatim
// message the server returned so the UI can show it unchanged.
type CustomError struct {
	errType constant.ErrorType
	message string
	cause   error
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Message returns the backend-provided text, "" when the server sent none.
// Callers use this to substitute operation-specific fallback wording.
func (c CustomError) Message() string {
	return c.message
}

func (c CustomError) Unwrap() error {
	return c.cause
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// Rejected wraps a structured backend refusal. The message is surfaced to the
// user verbatim; when the backend sent none, the fallback text applies.
func Rejected(message string) CustomError {
	return CustomError{errType: constant.ErrRejected, message: message}
}

// Connectivity wraps a transport-level failure (refused connection, DNS,
// timeout). The user sees the generic retry prompt, never the raw error.
func Connectivity(cause error) CustomError {
	return CustomError{errType: constant.ErrConnectivity, cause: cause}
}

// Unauthorized marks a rejected credential. A backend-provided message wins
// over the fallback.
func Unauthorized(message string) CustomError {
	return CustomError{errType: constant.ErrUnauthorized, message: message}
}

// InvalidForm marks a form buffer that failed local validation.
func InvalidForm(message string) CustomError {
	return CustomError{errType: constant.ErrInvalidForm, message: message}
}

// TypeOf extracts the taxonomy bucket of err, or ErrInternal for foreign
// errors that escaped wrapping.
func TypeOf(err error) constant.ErrorType {
	if err == nil {
		return constant.Successful
	}
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce.errType
	}
	return constant.ErrInternal
}

// IsConnectivity reports whether err is a transport-level failure.
func IsConnectivity(err error) bool {
	return TypeOf(err) == constant.ErrConnectivity
}
