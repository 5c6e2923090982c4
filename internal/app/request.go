package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/oshokin/iothub-httpapi/internal/config"
	"github.com/oshokin/iothub-httpapi/internal/constants"
	"github.com/oshokin/iothub-httpapi/internal/headers"
	"github.com/oshokin/iothub-httpapi/internal/logger"
	"github.com/oshokin/iothub-httpapi/internal/service/httpapi"
	"github.com/oshokin/iothub-httpapi/internal/telemetry"
	http_transport "github.com/oshokin/iothub-httpapi/internal/transport/http"
	"github.com/oshokin/iothub-httpapi/internal/utils"
)

const (
	hostHeader          = "Host"
	userAgentHeader     = "User-Agent"
	contentLengthHeader = "Content-Length"
	contentTypeHeader   = "Content-Type"
)

// ErrMalformedHeaderFlag indicates a --header value that is not "Name: Value".
var ErrMalformedHeaderFlag = errors.New("header must have the form 'Name: Value'")

// RequestOptions describes one request issued from the command line.
type RequestOptions struct {
	// Method is the HTTP method name.
	Method string
	// Path is the request target relative to the host.
	Path string
	// Headers are "Name: Value" lines sent in the given order.
	Headers []string
	// Data is the request body.
	Data []byte
	// OutputPath receives the response body. Empty means standard output.
	OutputPath string
}

// RequestRunner sends a request through a transport using the configured host and timeout.
type RequestRunner struct {
	cfg       *config.Config
	transport httpapi.Transport
}

// NewRequestRunner creates a runner for cfg.Host.
func NewRequestRunner(cfg *config.Config, transport httpapi.Transport) *RequestRunner {
	return &RequestRunner{
		cfg:       cfg,
		transport: transport,
	}
}

// Run initializes the transport, executes the request and tears the transport down again.
func (r *RequestRunner) Run(ctx context.Context, opts RequestOptions) (*httpapi.Response, error) {
	req, err := BuildRequest(opts, r.cfg.Host, r.cfg.UserAgent)
	if err != nil {
		return nil, err
	}

	if err = r.transport.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize transport: %w", err)
	}

	defer r.transport.Deinit(ctx)

	handle, err := r.transport.CreateConnection(ctx, r.cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection to %s: %w", r.cfg.Host, err)
	}

	defer r.transport.CloseConnection(ctx, handle)

	logger.Debugf(ctx, "Connection to %s is ready", handle.Host())

	// Options are applied from a saved copy, the way the device SDK replays them after reconnecting.
	timeout := r.cfg.TimeoutMilliseconds()

	savedTimeout, err := r.transport.CloneOption(httpapi.OptionTimeout, &timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to save timeout option: %w", err)
	}

	if err = r.transport.SetOption(ctx, handle, httpapi.OptionTimeout, savedTimeout); err != nil {
		return nil, fmt.Errorf("failed to set timeout option: %w", err)
	}

	resp := httpapi.NewResponse()

	if err = r.transport.ExecuteRequest(ctx, handle, req, resp); err != nil {
		return nil, fmt.Errorf("request failed with %s: %w", httpapi.ResultOf(err), err)
	}

	return resp, nil
}

// BuildRequest converts command line options into a transport request.
// Host, User-Agent and Content-Length are added when the caller did not supply them,
// because the transport sends only the headers it is given.
func BuildRequest(opts RequestOptions, host, userAgent string) (*httpapi.Request, error) {
	requestType, err := httpapi.ParseRequestType(opts.Method)
	if err != nil {
		return nil, err
	}

	requestHeaders := headers.New()

	if err = requestHeaders.Add(hostHeader, host); err != nil {
		return nil, err
	}

	for _, line := range opts.Headers {
		name, value, ok := utils.SplitHeaderLine(line)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeaderFlag, line)
		}

		// Host is always present already, so a user supplied one replaces it.
		if strings.EqualFold(name, hostHeader) {
			err = requestHeaders.Replace(name, value)
		} else {
			err = requestHeaders.Add(name, value)
		}

		if err != nil {
			return nil, fmt.Errorf("invalid header %q: %w", line, err)
		}
	}

	if _, found := requestHeaders.Value(userAgentHeader); !found && userAgent != "" {
		if err = requestHeaders.Add(userAgentHeader, userAgent); err != nil {
			return nil, err
		}
	}

	if _, found := requestHeaders.Value(contentLengthHeader); !found && carriesBody(requestType, opts.Data) {
		if err = requestHeaders.Add(contentLengthHeader, strconv.Itoa(len(opts.Data))); err != nil {
			return nil, err
		}
	}

	return &httpapi.Request{
		Type:         requestType,
		RelativePath: opts.Path,
		Headers:      requestHeaders,
		Content:      opts.Data,
	}, nil
}

// WriteResponse prints the status line and headers to out, then writes the body either
// to outputPath or, for text content, to out.
func WriteResponse(ctx context.Context, resp *httpapi.Response, out io.Writer, outputPath string) error {
	if _, err := fmt.Fprintf(out, "%d %s\n", resp.StatusCode, http.StatusText(resp.StatusCode)); err != nil {
		return fmt.Errorf("failed to print status: %w", err)
	}

	for pair := range resp.Headers.Pairs() {
		if _, err := fmt.Fprintf(out, "%s: %s\n", pair.Name, pair.Value); err != nil {
			return fmt.Errorf("failed to print headers: %w", err)
		}
	}

	if outputPath != "" {
		return saveBody(ctx, resp, outputPath)
	}

	if resp.Content.Len() == 0 {
		return nil
	}

	contentType, _ := resp.Headers.Value(contentTypeHeader)
	if !utils.IsTextContentType(contentType) {
		_, err := fmt.Fprintf(out, "\n[%s of %q content, use --output to save it]\n",
			humanize.IBytes(utils.SafeInt64ToUint64(int64(resp.Content.Len()))), contentType)

		return err
	}

	if _, err := fmt.Fprintf(out, "\n%s\n", resp.Content.String()); err != nil {
		return fmt.Errorf("failed to print body: %w", err)
	}

	return nil
}

// ExecuteRequestCommand is the entry point of the request command.
// It builds the adapter from cfg, sends the request and prints the response to stdout.
func ExecuteRequestCommand(ctx context.Context, cfg *config.Config, opts RequestOptions) {
	tlsConfig, err := http_transport.NewTLSConfig(cfg.CAFile, cfg.InsecureSkipVerify)
	if err != nil {
		logger.Fatalf(ctx, "Failed to prepare TLS configuration: %v", err)
	}

	if cfg.InsecureSkipVerify {
		logger.Warn(ctx, "Server certificate verification is disabled")
	}

	adapterOptions := []httpapi.Option{
		httpapi.WithDialer(http_transport.NewTLSDialer(tlsConfig, cfg.ParsedMaxLogLength)),
		httpapi.WithMaxContentLength(utils.SafeUint64ToInt64(cfg.ParsedMaxResponseSize)),
	}

	var registry *prometheus.Registry
	if cfg.MetricsFile != "" {
		registry = prometheus.NewRegistry()
		adapterOptions = append(adapterOptions, httpapi.WithMetrics(telemetry.NewMetrics(registry)))
	}

	runner := NewRequestRunner(cfg, httpapi.New(adapterOptions...))

	resp, runErr := runner.Run(ctx, opts)

	if registry != nil {
		if err = prometheus.WriteToTextfile(cfg.MetricsFile, registry); err != nil {
			logger.Errorf(ctx, "Failed to write metrics to '%s': %v", cfg.MetricsFile, err)
		}
	}

	if runErr != nil {
		logger.Fatalf(ctx, "Failed to execute request: %v", runErr)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Warnf(ctx, "Server responded with status %d", resp.StatusCode)
	}

	if err = WriteResponse(ctx, resp, os.Stdout, opts.OutputPath); err != nil {
		logger.Fatalf(ctx, "Failed to write response: %v", err)
	}
}

func saveBody(ctx context.Context, resp *httpapi.Response, outputPath string) error {
	f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	var writer io.Writer = f

	// Progress bars are only shown when regular output is visible.
	if logger.Level() <= zap.InfoLevel {
		bar := progressbar.DefaultBytes(int64(resp.Content.Len()), "Saving")
		writer = io.MultiWriter(f, bar)
	}

	written, err := io.Copy(writer, resp.Content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	logger.Infof(ctx, "Saved %s to '%s'", humanize.IBytes(utils.SafeInt64ToUint64(written)), outputPath)

	return nil
}

func carriesBody(requestType httpapi.RequestType, data []byte) bool {
	if len(data) > 0 {
		return true
	}

	switch requestType {
	case httpapi.RequestPost, httpapi.RequestPut, httpapi.RequestPatch:
		return true
	default:
		return false
	}
}
