package httpclient

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"time"
)

const (
	// StatusCodeUnavailable is returned by ResponseStatusCode when no status could be read.
	StatusCodeUnavailable = -1
	// ContentLengthUnknown is returned by ContentLength when the response carries no usable length.
	ContentLengthUnknown = -1
)

// Client is a step-wise HTTP client bound to one server.
type Client interface {
	// SetServer stops any open connection and binds the client to a new server.
	SetServer(host string, port int)
	// BeginRequest prepares the client for a new request.
	BeginRequest()
	// StartRequest connects if needed and sends the request line.
	StartRequest(ctx context.Context, path, method string) error
	// SendHeader sends one complete "Name: Value" header line.
	SendHeader(line string) error
	// EndRequest terminates the header section.
	EndRequest() error
	// Write sends request body bytes and returns how many were accepted.
	Write(p []byte) (int, error)
	// ResponseStatusCode reads the response status line.
	// It returns StatusCodeUnavailable and an error if no status could be read.
	ResponseStatusCode() (int, error)
	// HeaderAvailable reports whether another response header line is pending.
	// A pending read failure also reports true and is returned by ReadHeaderName.
	HeaderAvailable() bool
	// ReadHeaderName returns the name of the pending header.
	ReadHeaderName() (string, error)
	// ReadHeaderValue returns the value of the pending header and consumes it.
	ReadHeaderValue() (string, error)
	// ContentLength skips any unread headers and returns the response body length,
	// or ContentLengthUnknown.
	ContentLength() int64
	// Read reads response body bytes.
	Read(p []byte) (int, error)
	// Stop closes the connection.
	Stop()
	// SetResponseTimeout sets how long to wait for the server.
	SetResponseTimeout(timeout time.Duration)
	// ConnectionKeepAlive keeps the connection open between requests.
	ConnectionKeepAlive()
	// NoDefaultRequestHeaders stops the client from sending Host, User-Agent and Connection on its own.
	NoDefaultRequestHeaders()
}
