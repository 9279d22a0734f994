package constant

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrRejected
	ErrConnectivity
	ErrUnauthorized
	ErrNotFound
	ErrInvalidForm
	ErrNotCancellable
	ErrStaleResponse
)

// ErrorTypeMessage holds the fallback text shown when the backend did not
// supply a structured error message of its own.
var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "something went wrong, please try again",
	ErrRejected:       "request rejected",
	ErrConnectivity:   "network error, please check your connection and try again",
	ErrUnauthorized:   "session expired, please sign in again",
	ErrNotFound:       "not found",
	ErrInvalidForm:    "please check the highlighted fields",
	ErrNotCancellable: "only pending requests can be cancelled",
	ErrStaleResponse:  "response no longer applies",
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrRejected:       "0002",
	ErrConnectivity:   "0003",
	ErrUnauthorized:   "0004",
	ErrNotFound:       "0005",
	ErrInvalidForm:    "0006",
	ErrNotCancellable: "0007",
	ErrStaleResponse:  "0008",
}
