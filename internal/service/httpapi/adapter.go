package httpapi

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/oshokin/iothub-httpapi/internal/client/httpclient"
	"github.com/oshokin/iothub-httpapi/internal/headers"
	"github.com/oshokin/iothub-httpapi/internal/logger"
	"github.com/oshokin/iothub-httpapi/internal/telemetry"
	http_transport "github.com/oshokin/iothub-httpapi/internal/transport/http"
	"github.com/oshokin/iothub-httpapi/internal/utils"
)

// maxPreallocatedBody is the largest part of a response body reserved before reading it.
const maxPreallocatedBody = 64 * 1024

// ClientFactory creates a client bound to host and port.
type ClientFactory func(host string, port int) (httpclient.Client, error)

// Handle refers to the adapter's client. It stays valid until Deinit.
type Handle struct {
	client httpclient.Client
	host   string
}

// Host returns the host the handle is currently bound to.
func (h *Handle) Host() string {
	return h.host
}

// Adapter implements Transport on top of a single httpclient.Client.
type Adapter struct {
	// clientFactory creates the client on the first CreateConnection.
	clientFactory ClientFactory
	// dialer is used by the default client factory. Nil means TLS with system roots.
	dialer http_transport.Dialer
	// metrics records request and connection metrics. Nil disables them.
	metrics *telemetry.Metrics
	// maxContentLength caps the announced response body length. Zero disables the cap.
	maxContentLength int64

	// mu serializes every operation on the client slot.
	mu          sync.Mutex
	initialized bool
	handle      *Handle
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithClientFactory replaces the function that creates the client.
func WithClientFactory(factory ClientFactory) Option {
	return func(a *Adapter) {
		a.clientFactory = factory
	}
}

// WithDialer sets the dialer used by the default client factory.
func WithDialer(dialer http_transport.Dialer) Option {
	return func(a *Adapter) {
		a.dialer = dialer
	}
}

// WithMetrics enables request and connection metrics.
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(a *Adapter) {
		a.metrics = metrics
	}
}

// WithMaxContentLength rejects responses announcing a body longer than limit bytes.
func WithMaxContentLength(limit int64) Option {
	return func(a *Adapter) {
		a.maxContentLength = limit
	}
}

// New creates an adapter. Init must be called before any other operation.
func New(opts ...Option) *Adapter {
	a := new(Adapter)

	for _, opt := range opts {
		opt(a)
	}

	if a.clientFactory == nil {
		a.clientFactory = a.newStreamClient
	}

	return a
}

// Init prepares the adapter for use. Calling it again has no effect.
func (a *Adapter) Init(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		a.initialized = true

		logger.Debug(ctx, "HTTP transport adapter initialized")
	}

	return nil
}

// Deinit stops the client and empties the client slot.
// Handles returned earlier are no longer accepted.
func (a *Adapter) Deinit(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.handle != nil {
		a.handle.client.Stop()
		a.handle = nil
	}

	a.initialized = false

	logger.Debug(ctx, "HTTP transport adapter deinitialized")
}

// CreateConnection binds the client to hostName on the TLS port.
// The first call creates the client with keep-alive on, default request headers off
// and the default response timeout. Later calls stop the same client, rebind it and
// return the same handle.
func (a *Adapter) CreateConnection(ctx context.Context, hostName string) (*Handle, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return nil, ErrNotInitialized
	}

	host := strings.TrimSpace(hostName)
	if host == "" {
		return nil, fmt.Errorf("%w: empty host name", ErrInvalidArg)
	}

	if a.handle != nil {
		a.handle.client.Stop()
		a.handle.client.SetServer(host, http_transport.DefaultPort)
		a.handle.host = host

		a.metrics.RecordConnection(telemetry.ConnectionReused)
		logger.Debugf(ctx, "Reusing HTTP client for %s", host)

		return a.handle, nil
	}

	client, err := a.clientFactory(host, http_transport.DefaultPort)
	if err != nil {
		logger.Errorf(ctx, "Failed to create HTTP client for %s: %v", host, err)

		return nil, fmt.Errorf("%w: failed to create client for %s: %w", ErrError, host, err)
	}

	client.ConnectionKeepAlive()
	client.NoDefaultRequestHeaders()
	client.SetResponseTimeout(http_transport.DefaultTimeout)

	a.handle = &Handle{
		client: client,
		host:   host,
	}

	a.metrics.RecordConnection(telemetry.ConnectionCreated)
	logger.Debugf(ctx, "Created HTTP client for %s", host)

	return a.handle, nil
}

// CloseConnection stops the connection behind handle. The handle stays usable
// for a later CreateConnection. A nil handle is ignored.
func (a *Adapter) CloseConnection(ctx context.Context, handle *Handle) {
	if handle == nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	handle.client.Stop()

	a.metrics.RecordConnection(telemetry.ConnectionClosed)
	logger.Debugf(ctx, "Closed connection to %s", handle.host)
}

// ExecuteRequest sends req through handle and copies the status, headers and body into resp.
// Response headers are appended to resp.Headers. The body replaces resp.Content only
// when the response announces a positive length.
func (a *Adapter) ExecuteRequest(ctx context.Context, handle *Handle, req *Request, resp *Response) (err error) {
	if req == nil || resp == nil || resp.Headers == nil || resp.Content == nil {
		return fmt.Errorf("%w: request and response containers are required", ErrInvalidArg)
	}

	method, err := req.Type.Method()
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.initialized {
		return ErrNotInitialized
	}

	if handle == nil || handle != a.handle {
		return fmt.Errorf("%w: unknown connection handle", ErrInvalidArg)
	}

	var (
		requestID = uuid.NewString()
		startTime = time.Now()
		sent      int
		received  int64
	)

	defer func() {
		elapsed := time.Since(startTime)

		a.metrics.RecordRequest(telemetry.RequestLabels{
			Method:        method,
			Result:        ResultOf(err).String(),
			DurationMs:    float64(elapsed) / float64(time.Millisecond),
			BytesSent:     sent,
			BytesReceived: int(received),
		})

		logger.DebugKV(ctx, "Request finished",
			"request_id", requestID,
			"result", ResultOf(err).String(),
			"status", resp.StatusCode,
			"received", humanize.IBytes(utils.SafeInt64ToUint64(received)),
			"duration", elapsed,
		)
	}()

	if logger.IsDebugLevel() {
		logger.DebugKV(ctx, "Executing request",
			"request_id", requestID,
			"method", method,
			"host", handle.host,
			"path", req.RelativePath,
			"headers", headerNames(req.Headers),
			"content_length", len(req.Content),
		)
	}

	client := handle.client

	client.BeginRequest()

	if err = client.StartRequest(ctx, req.RelativePath, method); err != nil {
		logger.ErrorKV(ctx, "Failed to start request", "request_id", requestID, "error", err)

		return fmt.Errorf("%w: %w", ErrSendRequestFailed, err)
	}

	if err = sendHeaders(client, req); err != nil {
		logger.ErrorKV(ctx, "Failed to send request headers", "request_id", requestID, "error", err)

		return err
	}

	sent, err = sendBody(client, req.Content)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to send request body", "request_id", requestID, "error", err)

		return err
	}

	statusCode, err := client.ResponseStatusCode()
	if err != nil {
		return fmt.Errorf("%w: failed to read status code: %w", ErrStringProcessingError, err)
	}

	if statusCode == httpclient.StatusCodeUnavailable {
		return fmt.Errorf("%w: status code unavailable", ErrStringProcessingError)
	}

	resp.StatusCode = statusCode

	if err = readHeaders(client, resp); err != nil {
		return err
	}

	received, err = a.readBody(client, resp)

	return err
}

// headerNames lists header names in send order. Values are left out because they carry credentials.
func headerNames(h *headers.Headers) []string {
	names := make([]string, 0, h.Len())

	for i := range h.Len() {
		if name, err := h.Name(i); err == nil {
			names = append(names, name)
		}
	}

	return names
}

func sendHeaders(client httpclient.Client, req *Request) error {
	for i := range req.Headers.Len() {
		line, err := req.Headers.Header(i)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSendRequestFailed, err)
		}

		if err = client.SendHeader(line); err != nil {
			return fmt.Errorf("%w: %w", ErrSendRequestFailed, err)
		}
	}

	if err := client.EndRequest(); err != nil {
		return fmt.Errorf("%w: %w", ErrSendRequestFailed, err)
	}

	return nil
}

func sendBody(client httpclient.Client, content []byte) (int, error) {
	written, err := client.Write(content)
	if err != nil {
		return written, fmt.Errorf("%w: %w", ErrSendRequestFailed, err)
	}

	if written < len(content) {
		return written, fmt.Errorf("%w: accepted %d of %d body bytes", ErrSendRequestFailed, written, len(content))
	}

	return written, nil
}

func readHeaders(client httpclient.Client, resp *Response) error {
	for client.HeaderAvailable() {
		name, err := client.ReadHeaderName()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHTTPHeadersFailed, err)
		}

		value, err := client.ReadHeaderValue()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHTTPHeadersFailed, err)
		}

		if err = resp.Headers.Add(name, value); err != nil {
			return fmt.Errorf("%w: %w", ErrHTTPHeadersFailed, err)
		}
	}

	return nil
}

func (a *Adapter) readBody(client httpclient.Client, resp *Response) (int64, error) {
	length := client.ContentLength()
	if length <= 0 {
		return 0, nil
	}

	if a.maxContentLength > 0 && length > a.maxContentLength {
		return 0, fmt.Errorf("%w: body of %d bytes exceeds limit of %d bytes",
			ErrReadDataFailed, length, a.maxContentLength)
	}

	if length > math.MaxInt {
		return 0, fmt.Errorf("%w: body of %d bytes cannot be buffered", ErrReadDataFailed, length)
	}

	// The announced length comes from the server, so only a bounded part is reserved up front.
	resp.Content.Reset()
	resp.Content.Grow(int(min(length, maxPreallocatedBody)))

	read, err := io.CopyN(resp.Content, client, length)
	if err != nil {
		return read, fmt.Errorf("%w: read %d of %d bytes: %w", ErrReadDataFailed, read, length, err)
	}

	return read, nil
}

func (a *Adapter) newStreamClient(host string, port int) (httpclient.Client, error) {
	var opts []httpclient.StreamOption
	if a.dialer != nil {
		opts = append(opts, httpclient.WithDialer(a.dialer))
	}

	return httpclient.NewStreamClient(host, port, opts...)
}
