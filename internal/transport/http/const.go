package http

import "time"

const (
	// DefaultPort is the TLS port every device connection uses.
	DefaultPort = 443

	// DefaultTimeout is the default response timeout for a request.
	DefaultTimeout = 10 * time.Second

	// DefaultDialTimeout bounds TCP connect plus TLS handshake.
	DefaultDialTimeout = 30 * time.Second

	// DefaultKeepAlivePeriod is the TCP keep-alive probe interval for persistent connections.
	DefaultKeepAlivePeriod = 30 * time.Second
)
