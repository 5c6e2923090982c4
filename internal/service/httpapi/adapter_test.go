package httpapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/iothub-httpapi/internal/client/httpclient"
	mock_httpclient "github.com/oshokin/iothub-httpapi/internal/client/httpclient/mocks"
	"github.com/oshokin/iothub-httpapi/internal/headers"
	"github.com/oshokin/iothub-httpapi/internal/telemetry"
)

const testHost = "hub.example.net"

var errTest = errors.New("test failure")

// newConnectedAdapter returns an initialized adapter whose handle wraps a mock client.
func newConnectedAdapter(
	t *testing.T,
	ctrl *gomock.Controller,
	opts ...Option,
) (*Adapter, *Handle, *mock_httpclient.MockClient) {
	t.Helper()

	client := mock_httpclient.NewMockClient(ctrl)
	client.EXPECT().ConnectionKeepAlive()
	client.EXPECT().NoDefaultRequestHeaders()
	client.EXPECT().SetResponseTimeout(10 * time.Second)

	opts = append(opts, WithClientFactory(func(host string, port int) (httpclient.Client, error) {
		assert.Equal(t, testHost, host)
		assert.Equal(t, 443, port)

		return client, nil
	}))

	adapter := New(opts...)
	require.NoError(t, adapter.Init(context.Background()))

	handle, err := adapter.CreateConnection(context.Background(), testHost)
	require.NoError(t, err)
	require.NotNil(t, handle)

	return adapter, handle, client
}

// expectEmptyExchange expects a request without headers or body, answered with status and no body.
func expectEmptyExchange(client *mock_httpclient.MockClient, method string, status int) {
	gomock.InOrder(
		client.EXPECT().BeginRequest(),
		client.EXPECT().StartRequest(gomock.Any(), "/status", method).Return(nil),
		client.EXPECT().EndRequest().Return(nil),
		client.EXPECT().Write(gomock.Any()).Return(0, nil),
		client.EXPECT().ResponseStatusCode().Return(status, nil),
		client.EXPECT().HeaderAvailable().Return(false),
		client.EXPECT().ContentLength().Return(int64(0)),
	)
}

// TestRequestType_Method tests the method table and rejection of unknown values.
func TestRequestType_Method(t *testing.T) {
	t.Parallel()

	tests := []struct {
		requestType RequestType
		expected    string
		expectedErr error
	}{
		{requestType: 0, expected: "GET"},
		{requestType: 1, expected: "POST"},
		{requestType: 2, expected: "PUT"},
		{requestType: 3, expected: "DELETE"},
		{requestType: 4, expected: "PATCH"},
		{requestType: 5, expectedErr: ErrInvalidRequestType},
		{requestType: -1, expectedErr: ErrInvalidRequestType},
	}

	for _, tt := range tests {
		t.Run(tt.requestType.String(), func(t *testing.T) {
			t.Parallel()

			method, err := tt.requestType.Method()
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, method)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, method)
		})
	}
}

// TestParseRequestType tests parsing method names.
func TestParseRequestType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input       string
		expected    RequestType
		expectedErr error
	}{
		{input: "GET", expected: RequestGet},
		{input: "post", expected: RequestPost},
		{input: " Put ", expected: RequestPut},
		{input: "delete", expected: RequestDelete},
		{input: "PATCH", expected: RequestPatch},
		{input: "HEAD", expectedErr: ErrInvalidRequestType},
		{input: "", expectedErr: ErrInvalidRequestType},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			requestType, err := ParseRequestType(tt.input)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, requestType)
		})
	}
}

// TestExecuteRequest_MethodMapping tests that each request type starts the request with its method.
func TestExecuteRequest_MethodMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		requestType RequestType
		method      string
	}{
		{requestType: RequestGet, method: http.MethodGet},
		{requestType: RequestPost, method: http.MethodPost},
		{requestType: RequestPut, method: http.MethodPut},
		{requestType: RequestDelete, method: http.MethodDelete},
		{requestType: RequestPatch, method: http.MethodPatch},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adapter, handle, client := newConnectedAdapter(t, ctrl)
			expectEmptyExchange(client, tt.method, http.StatusOK)

			resp := NewResponse()
			err := adapter.ExecuteRequest(context.Background(), handle, &Request{
				Type:         tt.requestType,
				RelativePath: "/status",
			}, resp)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

// TestExecuteRequest_FullExchange tests header order in both directions and body copying.
func TestExecuteRequest_FullExchange(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter, handle, client := newConnectedAdapter(t, ctrl)

	body := []byte(`{"temperature":21.5}`)
	responseBody := bytes.NewReader([]byte("accepted"))

	requestHeaders := headers.New()
	require.NoError(t, requestHeaders.Add("Host", testHost))
	require.NoError(t, requestHeaders.Add("Authorization", "SharedAccessSignature sr=hub"))
	require.NoError(t, requestHeaders.Add("iothub-app-prop", "1"))
	require.NoError(t, requestHeaders.Add("iothub-app-prop", "2"))

	gomock.InOrder(
		client.EXPECT().BeginRequest(),
		client.EXPECT().StartRequest(gomock.Any(), "/devices/dev-1/messages/events?api-version=2020-09-30", "POST").
			Return(nil),
		client.EXPECT().SendHeader("Host: hub.example.net").Return(nil),
		client.EXPECT().SendHeader("Authorization: SharedAccessSignature sr=hub").Return(nil),
		client.EXPECT().SendHeader("iothub-app-prop: 1").Return(nil),
		client.EXPECT().SendHeader("iothub-app-prop: 2").Return(nil),
		client.EXPECT().EndRequest().Return(nil),
		client.EXPECT().Write(body).Return(len(body), nil),
		client.EXPECT().ResponseStatusCode().Return(http.StatusAccepted, nil),
		client.EXPECT().HeaderAvailable().Return(true),
		client.EXPECT().ReadHeaderName().Return("Content-Type", nil),
		client.EXPECT().ReadHeaderValue().Return("text/plain", nil),
		client.EXPECT().HeaderAvailable().Return(true),
		client.EXPECT().ReadHeaderName().Return("Set-Cookie", nil),
		client.EXPECT().ReadHeaderValue().Return("a=1", nil),
		client.EXPECT().HeaderAvailable().Return(true),
		client.EXPECT().ReadHeaderName().Return("Set-Cookie", nil),
		client.EXPECT().ReadHeaderValue().Return("a=1", nil),
		client.EXPECT().HeaderAvailable().Return(false),
		client.EXPECT().ContentLength().Return(int64(responseBody.Len())),
	)
	client.EXPECT().Read(gomock.Any()).DoAndReturn(responseBody.Read).AnyTimes()

	resp := NewResponse()
	resp.Content.WriteString("stale content")

	err := adapter.ExecuteRequest(context.Background(), handle, &Request{
		Type:         RequestPost,
		RelativePath: "/devices/dev-1/messages/events?api-version=2020-09-30",
		Headers:      requestHeaders,
		Content:      body,
	}, resp)
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "accepted", resp.Content.String())

	var received []headers.Pair
	for pair := range resp.Headers.Pairs() {
		received = append(received, pair)
	}

	assert.Equal(t, []headers.Pair{
		{Name: "Content-Type", Value: "text/plain"},
		{Name: "Set-Cookie", Value: "a=1"},
		{Name: "Set-Cookie", Value: "a=1"},
	}, received)
}

// TestExecuteRequest_SendFailures tests that send failures abort before any response is read.
func TestExecuteRequest_SendFailures(t *testing.T) {
	t.Parallel()

	body := []byte("hello")

	tests := []struct {
		name   string
		expect func(client *mock_httpclient.MockClient)
	}{
		{
			name: "start request fails",
			expect: func(client *mock_httpclient.MockClient) {
				gomock.InOrder(
					client.EXPECT().BeginRequest(),
					client.EXPECT().StartRequest(gomock.Any(), "/upload", "PUT").Return(errTest),
				)
			},
		},
		{
			name: "send header fails",
			expect: func(client *mock_httpclient.MockClient) {
				gomock.InOrder(
					client.EXPECT().BeginRequest(),
					client.EXPECT().StartRequest(gomock.Any(), "/upload", "PUT").Return(nil),
					client.EXPECT().SendHeader("Content-Length: 5").Return(errTest),
				)
			},
		},
		{
			name: "end request fails",
			expect: func(client *mock_httpclient.MockClient) {
				gomock.InOrder(
					client.EXPECT().BeginRequest(),
					client.EXPECT().StartRequest(gomock.Any(), "/upload", "PUT").Return(nil),
					client.EXPECT().SendHeader("Content-Length: 5").Return(nil),
					client.EXPECT().EndRequest().Return(errTest),
				)
			},
		},
		{
			name: "short body write",
			expect: func(client *mock_httpclient.MockClient) {
				gomock.InOrder(
					client.EXPECT().BeginRequest(),
					client.EXPECT().StartRequest(gomock.Any(), "/upload", "PUT").Return(nil),
					client.EXPECT().SendHeader("Content-Length: 5").Return(nil),
					client.EXPECT().EndRequest().Return(nil),
					client.EXPECT().Write(body).Return(2, nil),
				)
			},
		},
		{
			name: "body write error",
			expect: func(client *mock_httpclient.MockClient) {
				gomock.InOrder(
					client.EXPECT().BeginRequest(),
					client.EXPECT().StartRequest(gomock.Any(), "/upload", "PUT").Return(nil),
					client.EXPECT().SendHeader("Content-Length: 5").Return(nil),
					client.EXPECT().EndRequest().Return(nil),
					client.EXPECT().Write(body).Return(0, errTest),
				)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adapter, handle, client := newConnectedAdapter(t, ctrl)
			tt.expect(client)

			requestHeaders := headers.New()
			require.NoError(t, requestHeaders.Add("Content-Length", "5"))

			resp := NewResponse()
			err := adapter.ExecuteRequest(context.Background(), handle, &Request{
				Type:         RequestPut,
				RelativePath: "/upload",
				Headers:      requestHeaders,
				Content:      body,
			}, resp)
			require.ErrorIs(t, err, ErrSendRequestFailed)
			assert.Equal(t, ResultSendRequestFailed, ResultOf(err))
			assert.Zero(t, resp.StatusCode)
		})
	}
}

// TestExecuteRequest_StatusUnavailable tests that a missing status aborts without storing it.
func TestExecuteRequest_StatusUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		statusErr error
	}{
		{name: "sentinel only", statusErr: nil},
		{name: "sentinel with error", statusErr: errTest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adapter, handle, client := newConnectedAdapter(t, ctrl)

			gomock.InOrder(
				client.EXPECT().BeginRequest(),
				client.EXPECT().StartRequest(gomock.Any(), "/twin", "GET").Return(nil),
				client.EXPECT().EndRequest().Return(nil),
				client.EXPECT().Write(gomock.Any()).Return(0, nil),
				client.EXPECT().ResponseStatusCode().Return(httpclient.StatusCodeUnavailable, tt.statusErr),
			)

			resp := NewResponse()
			resp.StatusCode = 12345

			err := adapter.ExecuteRequest(context.Background(), handle, &Request{
				Type:         RequestGet,
				RelativePath: "/twin",
			}, resp)
			require.ErrorIs(t, err, ErrStringProcessingError)
			assert.Equal(t, 12345, resp.StatusCode)
			assert.Equal(t, 0, resp.Headers.Len())
		})
	}
}

// TestExecuteRequest_HeaderFailures tests that header read errors surface as ErrHTTPHeadersFailed.
func TestExecuteRequest_HeaderFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		expect func(client *mock_httpclient.MockClient) *gomock.Call
	}{
		{
			name: "name read fails",
			expect: func(client *mock_httpclient.MockClient) *gomock.Call {
				return client.EXPECT().ReadHeaderName().Return("", errTest)
			},
		},
		{
			name: "value read fails",
			expect: func(client *mock_httpclient.MockClient) *gomock.Call {
				return client.EXPECT().ReadHeaderName().Return("ETag", nil)
			},
		},
		{
			name: "invalid header name",
			expect: func(client *mock_httpclient.MockClient) *gomock.Call {
				return client.EXPECT().ReadHeaderName().Return("Bad Name", nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			adapter, handle, client := newConnectedAdapter(t, ctrl)

			calls := []any{
				client.EXPECT().BeginRequest(),
				client.EXPECT().StartRequest(gomock.Any(), "/twin", "GET").Return(nil),
				client.EXPECT().EndRequest().Return(nil),
				client.EXPECT().Write(gomock.Any()).Return(0, nil),
				client.EXPECT().ResponseStatusCode().Return(http.StatusOK, nil),
				client.EXPECT().HeaderAvailable().Return(true),
				tt.expect(client),
			}

			switch tt.name {
			case "value read fails":
				calls = append(calls, client.EXPECT().ReadHeaderValue().Return("", errTest))
			case "invalid header name":
				calls = append(calls, client.EXPECT().ReadHeaderValue().Return("x", nil))
			}

			gomock.InOrder(calls...)

			resp := NewResponse()
			err := adapter.ExecuteRequest(context.Background(), handle, &Request{
				Type:         RequestGet,
				RelativePath: "/twin",
			}, resp)
			require.ErrorIs(t, err, ErrHTTPHeadersFailed)
			assert.Equal(t, ResultHTTPHeadersFailed, ResultOf(err))
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

// TestExecuteRequest_Body tests response body handling for various announced lengths.
func TestExecuteRequest_Body(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		contentLength   int64
		served          string
		maxContent      int64
		expectedErr     error
		expectedContent string
	}{
		{
			name:            "exact body",
			contentLength:   5,
			served:          "hello",
			expectedContent: "hello",
		},
		{
			name:            "server sends more than announced",
			contentLength:   3,
			served:          "hello",
			expectedContent: "hel",
		},
		{
			name:          "short body",
			contentLength: 10,
			served:        "hello",
			expectedErr:   ErrReadDataFailed,
		},
		{
			name:            "unknown length is no body",
			contentLength:   httpclient.ContentLengthUnknown,
			expectedContent: "previous",
		},
		{
			name:            "zero length keeps buffer",
			contentLength:   0,
			expectedContent: "previous",
		},
		{
			name:            "body over limit",
			contentLength:   2048,
			maxContent:      1024,
			expectedErr:     ErrReadDataFailed,
			expectedContent: "previous",
		},
		{
			name:          "huge announced length without limit",
			contentLength: math.MaxInt64,
			served:        "hello",
			expectedErr:   ErrReadDataFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var opts []Option
			if tt.maxContent > 0 {
				opts = append(opts, WithMaxContentLength(tt.maxContent))
			}

			adapter, handle, client := newConnectedAdapter(t, ctrl, opts...)

			gomock.InOrder(
				client.EXPECT().BeginRequest(),
				client.EXPECT().StartRequest(gomock.Any(), "/twin", "GET").Return(nil),
				client.EXPECT().EndRequest().Return(nil),
				client.EXPECT().Write(gomock.Any()).Return(0, nil),
				client.EXPECT().ResponseStatusCode().Return(http.StatusOK, nil),
				client.EXPECT().HeaderAvailable().Return(false),
				client.EXPECT().ContentLength().Return(tt.contentLength),
			)

			reader := bytes.NewReader([]byte(tt.served))
			client.EXPECT().Read(gomock.Any()).DoAndReturn(reader.Read).AnyTimes()

			resp := NewResponse()
			resp.Content.WriteString("previous")

			var err error

			require.NotPanics(t, func() {
				err = adapter.ExecuteRequest(context.Background(), handle, &Request{
					Type:         RequestGet,
					RelativePath: "/twin",
				}, resp)
			})

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}

			if tt.expectedContent != "" {
				assert.Equal(t, tt.expectedContent, resp.Content.String())
			}
		})
	}
}

// TestHeaderNames tests that only names are listed, in send order.
func TestHeaderNames(t *testing.T) {
	t.Parallel()

	requestHeaders := headers.New()
	require.NoError(t, requestHeaders.Add("Host", testHost))
	require.NoError(t, requestHeaders.Add("Authorization", "SharedAccessSignature sr=secret"))
	require.NoError(t, requestHeaders.Add("iothub-app-x", "1"))
	require.NoError(t, requestHeaders.Add("iothub-app-x", "2"))

	assert.Equal(t, []string{"Host", "Authorization", "iothub-app-x", "iothub-app-x"}, headerNames(requestHeaders))
	assert.Empty(t, headerNames(nil))
}

// TestExecuteRequest_InvalidArguments tests argument validation before any client call.
func TestExecuteRequest_InvalidArguments(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter, handle, _ := newConnectedAdapter(t, ctrl)
	validRequest := &Request{Type: RequestGet, RelativePath: "/"}

	tests := []struct {
		name        string
		handle      *Handle
		req         *Request
		resp        *Response
		expectedErr error
	}{
		{name: "nil request", handle: handle, resp: NewResponse(), expectedErr: ErrInvalidArg},
		{name: "nil response", handle: handle, req: validRequest, expectedErr: ErrInvalidArg},
		{
			name:        "nil response headers",
			handle:      handle,
			req:         validRequest,
			resp:        &Response{Content: new(bytes.Buffer)},
			expectedErr: ErrInvalidArg,
		},
		{
			name:        "nil response content",
			handle:      handle,
			req:         validRequest,
			resp:        &Response{Headers: headers.New()},
			expectedErr: ErrInvalidArg,
		},
		{name: "nil handle", req: validRequest, resp: NewResponse(), expectedErr: ErrInvalidArg},
		{
			name:        "foreign handle",
			handle:      &Handle{host: testHost},
			req:         validRequest,
			resp:        NewResponse(),
			expectedErr: ErrInvalidArg,
		},
		{
			name:        "invalid request type",
			handle:      handle,
			req:         &Request{Type: RequestType(7), RelativePath: "/"},
			resp:        NewResponse(),
			expectedErr: ErrInvalidRequestType,
		},
	}

	for _, tt := range tests {
		err := adapter.ExecuteRequest(context.Background(), tt.handle, tt.req, tt.resp)
		require.ErrorIs(t, err, tt.expectedErr, tt.name)
		assert.Equal(t, ResultInvalidArg, ResultOf(err), tt.name)
	}
}

// TestAdapter_NotInitialized tests operations before Init.
func TestAdapter_NotInitialized(t *testing.T) {
	t.Parallel()

	adapter := New(WithClientFactory(func(_ string, _ int) (httpclient.Client, error) {
		t.Fatal("client must not be created before Init")

		return nil, nil
	}))

	handle, err := adapter.CreateConnection(context.Background(), testHost)
	require.ErrorIs(t, err, ErrNotInitialized)
	assert.Nil(t, handle)
	assert.Equal(t, ResultNotInit, ResultOf(err))

	err = adapter.ExecuteRequest(context.Background(), &Handle{}, &Request{}, NewResponse())
	require.ErrorIs(t, err, ErrNotInitialized)

	assert.NotPanics(t, func() {
		adapter.CloseConnection(context.Background(), nil)
		adapter.Deinit(context.Background())
	})
}

// TestCreateConnection_Reuse tests that a second call reuses the client and returns the same handle.
func TestCreateConnection_Reuse(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock_httpclient.NewMockClient(ctrl)
	factoryCalls := 0

	gomock.InOrder(
		client.EXPECT().ConnectionKeepAlive(),
		client.EXPECT().NoDefaultRequestHeaders(),
		client.EXPECT().SetResponseTimeout(10*time.Second),
		client.EXPECT().Stop(),
		client.EXPECT().SetServer("other.example.net", 443),
	)

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(reg)

	adapter := New(
		WithMetrics(metrics),
		WithClientFactory(func(_ string, _ int) (httpclient.Client, error) {
			factoryCalls++

			return client, nil
		}),
	)
	require.NoError(t, adapter.Init(context.Background()))
	require.NoError(t, adapter.Init(context.Background()))

	first, err := adapter.CreateConnection(context.Background(), testHost)
	require.NoError(t, err)
	assert.Equal(t, testHost, first.Host())

	second, err := adapter.CreateConnection(context.Background(), " other.example.net ")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, factoryCalls)
	assert.Equal(t, "other.example.net", second.Host())

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ConnectionsTotal.WithLabelValues(telemetry.ConnectionCreated)), 0.001)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ConnectionsTotal.WithLabelValues(telemetry.ConnectionReused)), 0.001)
}

// TestCreateConnection_Errors tests host validation and factory failures.
func TestCreateConnection_Errors(t *testing.T) {
	t.Parallel()

	adapter := New(WithClientFactory(func(_ string, _ int) (httpclient.Client, error) {
		return nil, errTest
	}))
	require.NoError(t, adapter.Init(context.Background()))

	_, err := adapter.CreateConnection(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidArg)

	handle, err := adapter.CreateConnection(context.Background(), testHost)
	require.ErrorIs(t, err, ErrError)
	require.ErrorIs(t, err, errTest)
	assert.Nil(t, handle)
	assert.Equal(t, ResultError, ResultOf(err))
}

// TestCloseConnection tests that closing stops the client and the handle can be reconnected.
func TestCloseConnection(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter, handle, client := newConnectedAdapter(t, ctrl)

	gomock.InOrder(
		client.EXPECT().Stop(),
		client.EXPECT().Stop(),
		client.EXPECT().SetServer(testHost, 443),
	)

	adapter.CloseConnection(context.Background(), handle)

	reopened, err := adapter.CreateConnection(context.Background(), testHost)
	require.NoError(t, err)
	assert.Same(t, handle, reopened)
}

// TestDeinit tests that Deinit stops the client and invalidates the handle.
func TestDeinit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter, handle, client := newConnectedAdapter(t, ctrl)
	client.EXPECT().Stop()

	adapter.Deinit(context.Background())

	err := adapter.ExecuteRequest(context.Background(), handle, &Request{RelativePath: "/"}, NewResponse())
	require.ErrorIs(t, err, ErrNotInitialized)

	require.NoError(t, adapter.Init(context.Background()))

	err = adapter.ExecuteRequest(context.Background(), handle, &Request{RelativePath: "/"}, NewResponse())
	require.ErrorIs(t, err, ErrInvalidArg)

	err = adapter.SetOption(context.Background(), handle, OptionTimeout, uint32(1))
	require.ErrorIs(t, err, ErrInvalidArg)
}

// TestSetOption tests the timeout option and rejection of anything else.
func TestSetOption(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter, handle, client := newConnectedAdapter(t, ctrl)

	gomock.InOrder(
		client.EXPECT().SetResponseTimeout(5000*time.Millisecond),
		client.EXPECT().SetResponseTimeout(250*time.Millisecond),
	)

	require.NoError(t, adapter.SetOption(context.Background(), handle, OptionTimeout, uint32(5000)))

	pointerValue := uint32(250)
	require.NoError(t, adapter.SetOption(context.Background(), handle, OptionTimeout, &pointerValue))

	tests := []struct {
		name   string
		handle *Handle
		option string
		value  any
	}{
		{name: "unknown option", handle: handle, option: "bogus", value: uint32(1)},
		{name: "wrong value type", handle: handle, option: OptionTimeout, value: 5000},
		{name: "nil pointer", handle: handle, option: OptionTimeout, value: (*uint32)(nil)},
		{name: "nil handle", option: OptionTimeout, value: uint32(1)},
	}

	for _, tt := range tests {
		err := adapter.SetOption(context.Background(), tt.handle, tt.option, tt.value)
		require.ErrorIs(t, err, ErrInvalidArg, tt.name)
	}
}

// TestCloneOption tests that the timeout value is copied into new storage.
func TestCloneOption(t *testing.T) {
	t.Parallel()

	adapter := New()

	original := uint32(5000)

	cloned, err := adapter.CloneOption(OptionTimeout, &original)
	require.NoError(t, err)

	clonedPointer, ok := cloned.(*uint32)
	require.True(t, ok)
	assert.Equal(t, uint32(5000), *clonedPointer)
	assert.NotSame(t, &original, clonedPointer)

	original = 1
	assert.Equal(t, uint32(5000), *clonedPointer)

	fromValue, err := adapter.CloneOption(OptionTimeout, uint32(42))
	require.NoError(t, err)
	assert.Equal(t, uint32(42), *fromValue.(*uint32))

	_, err = adapter.CloneOption("bogus", &original)
	require.ErrorIs(t, err, ErrInvalidArg)

	_, err = adapter.CloneOption(OptionTimeout, "5000")
	require.ErrorIs(t, err, ErrInvalidArg)
}

// TestExecuteRequest_Metrics tests that executed requests are recorded.
func TestExecuteRequest_Metrics(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metrics := telemetry.NewMetrics(prometheus.NewRegistry())
	adapter, handle, client := newConnectedAdapter(t, ctrl, WithMetrics(metrics))

	body := []byte("ping")
	reader := bytes.NewReader([]byte("pong!"))

	gomock.InOrder(
		client.EXPECT().BeginRequest(),
		client.EXPECT().StartRequest(gomock.Any(), "/status", "POST").Return(nil),
		client.EXPECT().EndRequest().Return(nil),
		client.EXPECT().Write(body).Return(len(body), nil),
		client.EXPECT().ResponseStatusCode().Return(http.StatusOK, nil),
		client.EXPECT().HeaderAvailable().Return(false),
		client.EXPECT().ContentLength().Return(int64(5)),
	)
	client.EXPECT().Read(gomock.Any()).DoAndReturn(reader.Read).AnyTimes()

	err := adapter.ExecuteRequest(context.Background(), handle, &Request{
		Type:         RequestPost,
		RelativePath: "/status",
		Content:      body,
	}, NewResponse())
	require.NoError(t, err)

	client.EXPECT().BeginRequest()
	client.EXPECT().StartRequest(gomock.Any(), "/status", "GET").Return(errTest)

	err = adapter.ExecuteRequest(context.Background(), handle, &Request{
		Type:         RequestGet,
		RelativePath: "/status",
	}, NewResponse())
	require.ErrorIs(t, err, ErrSendRequestFailed)

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("POST", "OK")), 0.001)
	assert.InDelta(t, 1,
		testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "SEND_REQUEST_FAILED")), 0.001)
	assert.InDelta(t, 4, testutil.ToFloat64(metrics.BytesSentTotal), 0.001)
	assert.InDelta(t, 5, testutil.ToFloat64(metrics.BytesReceivedTotal), 0.001)
}

// TestResultOf tests mapping errors to outcome codes.
func TestResultOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		expected Result
		name     string
	}{
		{err: nil, expected: ResultOK, name: "OK"},
		{err: ErrInvalidArg, expected: ResultInvalidArg, name: "INVALID_ARG"},
		{err: ErrInvalidRequestType, expected: ResultInvalidArg, name: "INVALID_ARG"},
		{err: ErrError, expected: ResultError, name: "ERROR"},
		{err: ErrSendRequestFailed, expected: ResultSendRequestFailed, name: "SEND_REQUEST_FAILED"},
		{err: ErrReadDataFailed, expected: ResultReadDataFailed, name: "READ_DATA_FAILED"},
		{err: ErrHTTPHeadersFailed, expected: ResultHTTPHeadersFailed, name: "HTTP_HEADERS_FAILED"},
		{err: ErrStringProcessingError, expected: ResultStringProcessingError, name: "STRING_PROCESSING_ERROR"},
		{err: ErrNotInitialized, expected: ResultNotInit, name: "NOT_INIT"},
		{err: io.ErrUnexpectedEOF, expected: ResultError, name: "ERROR"},
	}

	for _, tt := range tests {
		result := ResultOf(tt.err)
		assert.Equal(t, tt.expected, result)
		assert.Equal(t, tt.name, result.String())
	}

	assert.Equal(t, "UNKNOWN", Result(99).String())
}
