package httpapi

import (
	"fmt"
	"net/http"
	"strings"
)

// RequestType selects the HTTP method of a request.
type RequestType int

// Supported request types. The numeric values are part of the SDK contract.
const (
	RequestGet RequestType = iota
	RequestPost
	RequestPut
	RequestDelete
	RequestPatch
)

// Method returns the HTTP method for the request type.
func (t RequestType) Method() (string, error) {
	switch t {
	case RequestGet:
		return http.MethodGet, nil
	case RequestPost:
		return http.MethodPost, nil
	case RequestPut:
		return http.MethodPut, nil
	case RequestDelete:
		return http.MethodDelete, nil
	case RequestPatch:
		return http.MethodPatch, nil
	default:
		return "", fmt.Errorf("%w: %d", ErrInvalidRequestType, int(t))
	}
}

// String returns the HTTP method, or a placeholder for unknown values.
func (t RequestType) String() string {
	method, err := t.Method()
	if err != nil {
		return fmt.Sprintf("RequestType(%d)", int(t))
	}

	return method
}

// ParseRequestType converts an HTTP method name into a request type. Case is ignored.
func ParseRequestType(method string) (RequestType, error) {
	switch strings.ToUpper(strings.TrimSpace(method)) {
	case http.MethodGet:
		return RequestGet, nil
	case http.MethodPost:
		return RequestPost, nil
	case http.MethodPut:
		return RequestPut, nil
	case http.MethodDelete:
		return RequestDelete, nil
	case http.MethodPatch:
		return RequestPatch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRequestType, method)
	}
}
