package http

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/oshokin/iothub-httpapi/internal/config"
	"github.com/oshokin/iothub-httpapi/internal/logger"
)

// LogConn is a net.Conn that logs the bytes written to and read from the wrapped connection.
// Dumps are emitted only at debug level and are truncated to maxLogLength.
type LogConn struct {
	net.Conn

	// maxLogLength is the maximum length of logged data per call.
	maxLogLength uint64
}

// Static error definitions for better error handling.
var (
	// ErrNilConn indicates that the connection to wrap is nil.
	ErrNilConn = errors.New("connection is nil")
)

// NewLogConn wraps conn. If maxLogLength is 0, it defaults to config.DefaultMaxLogLength.
func NewLogConn(conn net.Conn, maxLogLength uint64) (net.Conn, error) {
	if conn == nil {
		return nil, ErrNilConn
	}

	if maxLogLength == 0 {
		maxLogLength = config.DefaultMaxLogLength
	}

	return &LogConn{
		Conn:         conn,
		maxLogLength: maxLogLength,
	}, nil
}

// Write writes to the wrapped connection and logs what was accepted.
func (c *LogConn) Write(p []byte) (int, error) {
	startTime := time.Now()
	n, err := c.Conn.Write(p)

	if logger.IsDebugLevel() {
		c.dump("->", p[:n], time.Since(startTime), err)
	}

	return n, err
}

// Read reads from the wrapped connection and logs what was received.
func (c *LogConn) Read(p []byte) (int, error) {
	startTime := time.Now()
	n, err := c.Conn.Read(p)

	if logger.IsDebugLevel() {
		c.dump("<-", p[:n], time.Since(startTime), err)
	}

	return n, err
}

func (c *LogConn) dump(direction string, data []byte, duration time.Duration, err error) {
	ctx := context.Background()

	if err != nil {
		logger.Debugf(ctx, "%s %s [%d bytes] %s | Error: %v",
			direction, c.RemoteAddr(), len(data), duration, err)

		return
	}

	logger.Debugf(ctx, "%s %s [%d bytes] %s\n%s",
		direction, c.RemoteAddr(), len(data), duration, c.truncate(data))
}

func (c *LogConn) truncate(data []byte) string {
	if uint64(len(data)) > c.maxLogLength {
		return string(data[:c.maxLogLength]) + "... [truncated]"
	}

	return string(data)
}
