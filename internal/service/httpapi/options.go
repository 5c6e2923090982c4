package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/iothub-httpapi/internal/logger"
)

// OptionTimeout is the only supported option. Its value is a response timeout in milliseconds,
// passed as uint32 or *uint32.
const OptionTimeout = "timeout"

// SetOption applies a named option to the client behind handle.
func (a *Adapter) SetOption(ctx context.Context, handle *Handle, name string, value any) error {
	if name != OptionTimeout {
		return fmt.Errorf("%w: unsupported option %q", ErrInvalidArg, name)
	}

	milliseconds, err := timeoutValue(value)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if handle == nil || handle != a.handle {
		return fmt.Errorf("%w: unknown connection handle", ErrInvalidArg)
	}

	timeout := time.Duration(milliseconds) * time.Millisecond
	handle.client.SetResponseTimeout(timeout)

	logger.Debugf(ctx, "Response timeout for %s set to %s", handle.host, timeout)

	return nil
}

// CloneOption returns a copy of an option value in newly allocated storage.
// For OptionTimeout the result is a *uint32 owned by the caller.
func (a *Adapter) CloneOption(name string, value any) (any, error) {
	if name != OptionTimeout {
		return nil, fmt.Errorf("%w: unsupported option %q", ErrInvalidArg, name)
	}

	milliseconds, err := timeoutValue(value)
	if err != nil {
		return nil, err
	}

	clone := new(uint32)
	*clone = milliseconds

	return clone, nil
}

func timeoutValue(value any) (uint32, error) {
	switch v := value.(type) {
	case uint32:
		return v, nil
	case *uint32:
		if v == nil {
			return 0, fmt.Errorf("%w: nil timeout value", ErrInvalidArg)
		}

		return *v, nil
	default:
		return 0, fmt.Errorf("%w: timeout must be uint32, got %T", ErrInvalidArg, value)
	}
}
