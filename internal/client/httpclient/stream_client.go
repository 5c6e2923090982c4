package httpclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/oshokin/iothub-httpapi/internal/constants"
	"github.com/oshokin/iothub-httpapi/internal/logger"
	http_transport "github.com/oshokin/iothub-httpapi/internal/transport/http"
	"github.com/oshokin/iothub-httpapi/internal/utils"
	"github.com/oshokin/iothub-httpapi/internal/version"
)

// exchangeState tracks where the client is inside one request/response exchange.
type exchangeState uint8

const (
	stateIdle exchangeState = iota
	stateBegun
	stateRequestStarted
	stateRequestSent
	stateReadingHeaders
	stateReadingBody
	stateComplete
)

const (
	contentLengthHeader    = "Content-Length"
	transferEncodingHeader = "Transfer-Encoding"
	connectionHeader       = "Connection"

	maxPort = 65535
)

// StreamClient implements Client over a single net.Conn.
type StreamClient struct {
	// host is the server host name.
	host string
	// port is the server port.
	port int
	// dialer opens connections to the server.
	dialer http_transport.Dialer
	// userAgentProvider supplies User-Agent for default request headers.
	userAgentProvider utils.UserAgentProvider
	// keepAlive keeps the connection open between requests.
	keepAlive bool
	// defaultHeaders enables the Host, User-Agent and Connection lines.
	defaultHeaders bool
	// responseTimeout bounds each phase of an exchange. Zero disables deadlines.
	responseTimeout time.Duration

	conn   net.Conn
	writer *bufio.Writer
	reader *bufio.Reader
	text   *textproto.Reader

	state         exchangeState
	statusCode    int
	contentLength int64
	remaining     int64
	closeAfter    bool
	// transferEncoded is set once a non-identity Transfer-Encoding is seen.
	transferEncoded bool

	hasPending   bool
	pendingName  string
	pendingValue string
	pendingErr   error
}

// StreamOption configures a StreamClient.
type StreamOption func(*StreamClient)

// WithDialer sets the dialer used to open connections.
func WithDialer(dialer http_transport.Dialer) StreamOption {
	return func(c *StreamClient) {
		c.dialer = dialer
	}
}

// WithUserAgentProvider sets the provider for the default User-Agent header.
func WithUserAgentProvider(provider utils.UserAgentProvider) StreamOption {
	return func(c *StreamClient) {
		c.userAgentProvider = provider
	}
}

// NewStreamClient creates a client bound to host and port.
// Without options it dials TLS and sends the default request headers.
func NewStreamClient(host string, port int, opts ...StreamOption) (*StreamClient, error) {
	if err := validateServer(host, port); err != nil {
		return nil, err
	}

	c := &StreamClient{
		host:              host,
		port:              port,
		defaultHeaders:    true,
		responseTimeout:   http_transport.DefaultTimeout,
		contentLength:     ContentLengthUnknown,
		userAgentProvider: utils.ProductUserAgent(constants.ApplicationName, version.Short()),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.dialer == nil {
		c.dialer = http_transport.NewTLSDialer(nil, 0)
	}

	return c, nil
}

// SetServer stops any open connection and binds the client to a new server.
func (c *StreamClient) SetServer(host string, port int) {
	c.Stop()

	c.host = host
	c.port = port
}

// BeginRequest prepares the client for a new request.
// A connection whose previous response was not fully read is dropped.
func (c *StreamClient) BeginRequest() {
	if c.conn != nil && (!c.keepAlive || (c.state != stateIdle && c.state != stateComplete)) {
		c.closeConn()
	}

	c.resetResponse()
	c.state = stateBegun
}

// StartRequest connects if needed and sends the request line.
func (c *StreamClient) StartRequest(ctx context.Context, path, method string) error {
	if c.state != stateBegun {
		c.BeginRequest()
	}

	if method == "" || strings.ContainsAny(method, " \r\n") || path == "" || strings.ContainsAny(path, " \r\n") {
		return fmt.Errorf("%w: %q %q", ErrInvalidRequestLine, method, path)
	}

	if c.conn == nil {
		if err := c.connect(ctx); err != nil {
			return err
		}
	}

	c.setDeadline()

	if _, err := fmt.Fprintf(c.writer, "%s %s HTTP/1.1\r\n", method, path); err != nil {
		return c.writeFailed(err)
	}

	if c.defaultHeaders {
		for _, line := range http_transport.DefaultHeaders(c.host, c.keepAlive, c.userAgentProvider) {
			if err := c.writeLine(line); err != nil {
				return err
			}
		}
	}

	c.state = stateRequestStarted

	return nil
}

// SendHeader sends one complete "Name: Value" header line.
func (c *StreamClient) SendHeader(line string) error {
	if c.state != stateRequestStarted {
		return fmt.Errorf("%w: header sent outside of request headers", ErrInvalidState)
	}

	if strings.ContainsAny(line, "\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidHeaderLine, line)
	}

	return c.writeLine(line)
}

// EndRequest terminates the header section and flushes buffered request data.
func (c *StreamClient) EndRequest() error {
	if c.state != stateRequestStarted {
		return fmt.Errorf("%w: request was not started", ErrInvalidState)
	}

	if err := c.writeLine(""); err != nil {
		return err
	}

	if err := c.writer.Flush(); err != nil {
		return c.writeFailed(err)
	}

	c.state = stateRequestSent

	return nil
}

// Write sends request body bytes.
func (c *StreamClient) Write(p []byte) (int, error) {
	if c.state != stateRequestSent {
		return 0, fmt.Errorf("%w: body written before headers were ended", ErrInvalidState)
	}

	if len(p) == 0 {
		return 0, nil
	}

	n, err := c.conn.Write(p)
	if err != nil {
		return n, c.writeFailed(err)
	}

	return n, nil
}

// ResponseStatusCode reads the status line, skipping interim 1xx responses other than 101.
func (c *StreamClient) ResponseStatusCode() (int, error) {
	if c.state != stateRequestSent {
		return StatusCodeUnavailable, fmt.Errorf("%w: request was not sent", ErrInvalidState)
	}

	c.setDeadline()

	for {
		line, err := c.text.ReadLine()
		if err != nil {
			c.abort()

			return StatusCodeUnavailable, fmt.Errorf("failed to read status line: %w", err)
		}

		code, err := parseStatusLine(line)
		if err != nil {
			c.abort()

			return StatusCodeUnavailable, err
		}

		if code >= 100 && code < 200 && code != 101 {
			if _, err = c.text.ReadMIMEHeader(); err != nil {
				c.abort()

				return StatusCodeUnavailable, fmt.Errorf("failed to skip interim response: %w", err)
			}

			continue
		}

		c.statusCode = code
		c.state = stateReadingHeaders

		return code, nil
	}
}

// HeaderAvailable reports whether another response header line is pending.
func (c *StreamClient) HeaderAvailable() bool {
	if c.hasPending {
		return true
	}

	if c.state != stateReadingHeaders {
		return false
	}

	line, err := c.text.ReadLine()
	if err != nil {
		c.setPendingError(fmt.Errorf("failed to read response header: %w", err))

		return true
	}

	if line == "" {
		c.finishHeaders()

		return false
	}

	name, value, ok := utils.SplitHeaderLine(line)
	if !ok {
		c.setPendingError(fmt.Errorf("%w: %q", ErrMalformedHeader, line))

		return true
	}

	if err = c.trackHeader(name, value); err != nil {
		c.setPendingError(err)

		return true
	}

	c.hasPending = true
	c.pendingName = name
	c.pendingValue = value

	return true
}

// ReadHeaderName returns the name of the pending header.
func (c *StreamClient) ReadHeaderName() (string, error) {
	if !c.hasPending {
		return "", ErrNoPendingHeader
	}

	if c.pendingErr != nil {
		err := c.pendingErr
		c.clearPending()
		c.abort()

		return "", err
	}

	return c.pendingName, nil
}

// ReadHeaderValue returns the value of the pending header and consumes it.
func (c *StreamClient) ReadHeaderValue() (string, error) {
	if !c.hasPending {
		return "", ErrNoPendingHeader
	}

	if c.pendingErr != nil {
		err := c.pendingErr
		c.clearPending()
		c.abort()

		return "", err
	}

	value := c.pendingValue
	c.clearPending()

	return value, nil
}

// ContentLength skips unread headers and returns the body length, or ContentLengthUnknown.
func (c *StreamClient) ContentLength() int64 {
	for c.state == stateReadingHeaders || c.hasPending {
		if !c.HeaderAvailable() {
			break
		}

		if _, err := c.ReadHeaderValue(); err != nil {
			return ContentLengthUnknown
		}
	}

	if c.state != stateReadingBody && c.state != stateComplete {
		return ContentLengthUnknown
	}

	return c.contentLength
}

// Read reads response body bytes, never past the announced length.
func (c *StreamClient) Read(p []byte) (int, error) {
	switch c.state {
	case stateReadingBody:
	case stateComplete:
		return 0, io.EOF
	default:
		return 0, fmt.Errorf("%w: body read before headers were consumed", ErrInvalidState)
	}

	if c.contentLength >= 0 && int64(len(p)) > c.remaining {
		p = p[:c.remaining]
	}

	n, err := c.reader.Read(p)

	if c.contentLength >= 0 {
		c.remaining -= int64(n)
		if c.remaining == 0 {
			c.completeResponse()

			if err == nil {
				err = io.EOF
			}
		}
	} else if errors.Is(err, io.EOF) {
		// Unknown length ends with the connection.
		c.state = stateComplete
		c.closeConn()
	}

	return n, err
}

// Stop closes the connection and clears response state.
func (c *StreamClient) Stop() {
	c.closeConn()
	c.resetResponse()
	c.state = stateIdle
}

// SetResponseTimeout sets how long to wait for the server. Zero disables deadlines.
func (c *StreamClient) SetResponseTimeout(timeout time.Duration) {
	c.responseTimeout = timeout
}

// ConnectionKeepAlive keeps the connection open between requests.
func (c *StreamClient) ConnectionKeepAlive() {
	c.keepAlive = true
}

// NoDefaultRequestHeaders stops the client from sending Host, User-Agent and Connection on its own.
func (c *StreamClient) NoDefaultRequestHeaders() {
	c.defaultHeaders = false
}

func (c *StreamClient) connect(ctx context.Context) error {
	address := net.JoinHostPort(c.host, strconv.Itoa(c.port))

	conn, err := c.dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}

	logger.Debugf(ctx, "Connected to %s", address)

	c.conn = conn
	c.writer = bufio.NewWriter(conn)
	c.reader = bufio.NewReader(conn)
	c.text = textproto.NewReader(c.reader)

	return nil
}

func (c *StreamClient) closeConn() {
	if c.conn == nil {
		return
	}

	_ = c.conn.Close() //nolint:errcheck // Nothing useful can be done if close fails.

	c.conn = nil
	c.writer = nil
	c.reader = nil
	c.text = nil
}

// abort drops the connection after a failure so the next request starts clean.
func (c *StreamClient) abort() {
	c.closeConn()
	c.state = stateIdle
}

func (c *StreamClient) setDeadline() {
	if c.conn == nil {
		return
	}

	var deadline time.Time
	if c.responseTimeout > 0 {
		deadline = time.Now().Add(c.responseTimeout)
	}

	_ = c.conn.SetDeadline(deadline) //nolint:errcheck // A failed deadline surfaces on the next read or write.
}

func (c *StreamClient) writeLine(line string) error {
	if _, err := c.writer.WriteString(line + "\r\n"); err != nil {
		return c.writeFailed(err)
	}

	return nil
}

func (c *StreamClient) writeFailed(err error) error {
	c.abort()

	return fmt.Errorf("%w: %w", ErrWriteFailed, err)
}

func (c *StreamClient) trackHeader(name, value string) error {
	switch {
	case strings.EqualFold(name, contentLengthHeader):
		length, err := strconv.ParseInt(value, 10, 64)
		if err != nil || length < 0 {
			return fmt.Errorf("%w: bad %s %q", ErrMalformedHeader, contentLengthHeader, value)
		}

		// A transfer coding frames the body on its own.
		if c.transferEncoded {
			return nil
		}

		if c.contentLength != ContentLengthUnknown && c.contentLength != length {
			return fmt.Errorf("%w: conflicting %s %d and %d",
				ErrMalformedHeader, contentLengthHeader, c.contentLength, length)
		}

		c.contentLength = length
	case strings.EqualFold(name, transferEncodingHeader):
		if !strings.EqualFold(value, "identity") {
			c.transferEncoded = true
			c.contentLength = ContentLengthUnknown
			c.closeAfter = true
		}
	case strings.EqualFold(name, connectionHeader):
		if strings.EqualFold(value, "close") {
			c.closeAfter = true
		}
	}

	return nil
}

func (c *StreamClient) finishHeaders() {
	if c.statusCode == 204 || c.statusCode == 304 {
		c.contentLength = 0
	}

	if c.contentLength == 0 {
		c.completeResponse()

		return
	}

	c.remaining = c.contentLength
	c.state = stateReadingBody
}

func (c *StreamClient) completeResponse() {
	c.state = stateComplete
	c.remaining = 0

	if c.closeAfter || !c.keepAlive {
		c.closeConn()

		return
	}

	if c.conn != nil {
		_ = c.conn.SetDeadline(time.Time{}) //nolint:errcheck // Idle connections carry no deadline.
	}
}

func (c *StreamClient) setPendingError(err error) {
	c.hasPending = true
	c.pendingErr = err
}

func (c *StreamClient) clearPending() {
	c.hasPending = false
	c.pendingName = ""
	c.pendingValue = ""
	c.pendingErr = nil
}

func (c *StreamClient) resetResponse() {
	c.clearPending()

	c.statusCode = 0
	c.contentLength = ContentLengthUnknown
	c.remaining = 0
	c.closeAfter = false
	c.transferEncoded = false
}

func parseStatusLine(line string) (int, error) {
	version, rest, found := strings.Cut(line, " ")
	if !found || !strings.HasPrefix(version, "HTTP/") {
		return StatusCodeUnavailable, fmt.Errorf("%w: %q", ErrInvalidStatusLine, line)
	}

	codeText, _, _ := strings.Cut(rest, " ")
	if len(codeText) != 3 {
		return StatusCodeUnavailable, fmt.Errorf("%w: %q", ErrInvalidStatusLine, line)
	}

	code, err := strconv.Atoi(codeText)
	if err != nil || code < 100 {
		return StatusCodeUnavailable, fmt.Errorf("%w: %q", ErrInvalidStatusLine, line)
	}

	return code, nil
}

func validateServer(host string, port int) error {
	if strings.TrimSpace(host) == "" {
		return ErrInvalidHost
	}

	if port <= 0 || port > maxPort {
		return fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}

	return nil
}
