package httpapi

//go:generate $MOCKGEN -source=transport.go -destination=mocks/transport_mock.go

import (
	"bytes"
	"context"

	"github.com/oshokin/iothub-httpapi/internal/headers"
)

// Transport is the HTTP transport contract consumed by the SDK layer.
type Transport interface {
	// Init prepares the transport for use.
	Init(ctx context.Context) error
	// Deinit stops any open connection and releases the client.
	Deinit(ctx context.Context)
	// CreateConnection binds the transport to hostName and returns a handle for requests.
	CreateConnection(ctx context.Context, hostName string) (*Handle, error)
	// CloseConnection stops the connection behind handle.
	CloseConnection(ctx context.Context, handle *Handle)
	// ExecuteRequest sends req over handle and fills resp.
	ExecuteRequest(ctx context.Context, handle *Handle, req *Request, resp *Response) error
	// SetOption applies a named option to the connection behind handle.
	SetOption(ctx context.Context, handle *Handle, name string, value any) error
	// CloneOption returns an independent copy of an option value.
	CloneOption(name string, value any) (any, error)
}

// Request describes one outgoing request.
type Request struct {
	// Type selects the HTTP method.
	Type RequestType
	// RelativePath is the request target, including any query string.
	RelativePath string
	// Headers are sent in order, one line per pair. Nil means no headers.
	Headers *headers.Headers
	// Content is the request body.
	Content []byte
}

// Response receives the result of a request. Both containers are supplied by the caller.
type Response struct {
	// StatusCode is the HTTP status code. It is left unchanged when no status could be read.
	StatusCode int
	// Headers receives the response headers in the order received.
	Headers *headers.Headers
	// Content receives the response body.
	Content *bytes.Buffer
}

// NewResponse creates a response with empty containers.
func NewResponse() *Response {
	return &Response{
		Headers: headers.New(),
		Content: new(bytes.Buffer),
	}
}
