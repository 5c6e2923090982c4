package app

import (
	"context"

	"github.com/oshokin/iothub-httpapi/internal/config"
	"github.com/oshokin/iothub-httpapi/internal/logger"
)

// ExecuteConfigInitCommand writes a configuration file with default values for host.
func ExecuteConfigInitCommand(ctx context.Context, path, host string, overwrite bool) {
	cfg := config.Default()
	cfg.Host = host

	if path == "" {
		path = config.DefaultConfigFilename
	}

	if err := config.SaveConfig(cfg, path, overwrite); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
	}

	logger.Infof(ctx, "Configuration saved to '%s'", path)
}
