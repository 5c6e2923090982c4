package httpclient

import "errors"

// Static error definitions for better error handling.
var (
	// ErrInvalidHost indicates that the server host name is empty.
	ErrInvalidHost = errors.New("invalid host")
	// ErrInvalidPort indicates that the server port is out of range.
	ErrInvalidPort = errors.New("invalid port")
	// ErrInvalidState indicates that a call was made out of request order.
	ErrInvalidState = errors.New("invalid client state")
	// ErrInvalidRequestLine indicates that the method or path cannot form a request line.
	ErrInvalidRequestLine = errors.New("invalid request line")
	// ErrInvalidHeaderLine indicates that a request header line contains line breaks.
	ErrInvalidHeaderLine = errors.New("invalid header line")
	// ErrConnectFailed indicates that the connection to the server could not be opened.
	ErrConnectFailed = errors.New("connect failed")
	// ErrWriteFailed indicates that request data could not be sent.
	ErrWriteFailed = errors.New("write failed")
	// ErrInvalidStatusLine indicates that the response status line could not be parsed.
	ErrInvalidStatusLine = errors.New("invalid status line")
	// ErrMalformedHeader indicates that a response header line could not be parsed.
	ErrMalformedHeader = errors.New("malformed response header")
	// ErrNoPendingHeader indicates that no response header is waiting to be read.
	ErrNoPendingHeader = errors.New("no pending response header")
)
