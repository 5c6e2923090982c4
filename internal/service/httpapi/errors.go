package httpapi

import "errors"

// Static error definitions for better error handling.
var (
	// ErrInvalidArg indicates a missing argument, an unknown handle or an unsupported option.
	ErrInvalidArg = errors.New("invalid argument")
	// ErrError indicates a transport failure, such as a client that could not be created.
	ErrError = errors.New("transport error")
	// ErrSendRequestFailed indicates that the request line, headers or body could not be sent.
	ErrSendRequestFailed = errors.New("send request failed")
	// ErrReadDataFailed indicates that the response body could not be read in full.
	ErrReadDataFailed = errors.New("read data failed")
	// ErrStringProcessingError indicates that no response status code could be read.
	ErrStringProcessingError = errors.New("string processing error")
	// ErrHTTPHeadersFailed indicates that response headers could not be read.
	ErrHTTPHeadersFailed = errors.New("http headers failed")
	// ErrNotInitialized indicates that the adapter was used before Init.
	ErrNotInitialized = errors.New("adapter is not initialized")
	// ErrInvalidRequestType indicates an unknown request type.
	ErrInvalidRequestType = errors.New("invalid request type")
)

// Result is the outcome code reported to the SDK layer.
type Result int

// Outcome codes.
const (
	ResultOK Result = iota
	ResultInvalidArg
	ResultError
	ResultSendRequestFailed
	ResultReadDataFailed
	ResultHTTPHeadersFailed
	ResultStringProcessingError
	ResultNotInit
)

// String returns the outcome code name.
func (r Result) String() string {
	switch r {
	case ResultOK:
		return "OK"
	case ResultInvalidArg:
		return "INVALID_ARG"
	case ResultError:
		return "ERROR"
	case ResultSendRequestFailed:
		return "SEND_REQUEST_FAILED"
	case ResultReadDataFailed:
		return "READ_DATA_FAILED"
	case ResultHTTPHeadersFailed:
		return "HTTP_HEADERS_FAILED"
	case ResultStringProcessingError:
		return "STRING_PROCESSING_ERROR"
	case ResultNotInit:
		return "NOT_INIT"
	default:
		return "UNKNOWN"
	}
}

// ResultOf maps an error returned by the adapter to its outcome code.
// Errors that carry none of the adapter's sentinels map to ResultError.
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrInvalidArg), errors.Is(err, ErrInvalidRequestType):
		return ResultInvalidArg
	case errors.Is(err, ErrSendRequestFailed):
		return ResultSendRequestFailed
	case errors.Is(err, ErrReadDataFailed):
		return ResultReadDataFailed
	case errors.Is(err, ErrHTTPHeadersFailed):
		return ResultHTTPHeadersFailed
	case errors.Is(err, ErrStringProcessingError):
		return ResultStringProcessingError
	case errors.Is(err, ErrNotInitialized):
		return ResultNotInit
	default:
		return ResultError
	}
}
