package http

import (
	"github.com/oshokin/iothub-httpapi/internal/utils"
)

const (
	// hostHeader is the HTTP header name for Host.
	hostHeader = "Host"
	// userAgentHeader is the HTTP header name for User-Agent.
	userAgentHeader = "User-Agent"
	// connectionHeader is the HTTP header name for Connection.
	connectionHeader = "Connection"
)

// DefaultHeaders returns the header lines a client sends on its own when default headers are enabled.
// The User-Agent line is omitted if provider is nil or returns an empty string.
// "Connection: close" is added only when the connection is not kept alive.
func DefaultHeaders(host string, keepAlive bool, provider utils.UserAgentProvider) []string {
	lines := []string{hostHeader + ": " + host}

	if provider != nil {
		if userAgent := provider.GetUserAgent(); userAgent != "" {
			lines = append(lines, userAgentHeader+": "+userAgent)
		}
	}

	if !keepAlive {
		lines = append(lines, connectionHeader+": close")
	}

	return lines
}
