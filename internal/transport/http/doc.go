// Package http provides the socket-level transport used by the device HTTP client:
// a TLS dialer, a connection wrapper that dumps wire traffic at debug level,
// and the default request header lines sent when they are not suppressed.
package http
