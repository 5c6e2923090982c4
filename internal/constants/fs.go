package constants

import "os"

const (
	// DefaultFilePermissions is used for config files, saved response bodies and metrics dumps (rw-r--r--).
	DefaultFilePermissions os.FileMode = 0o644

	// DefaultFolderPermissions is used when the config directory has to be created (rwxr-xr-x).
	DefaultFolderPermissions os.FileMode = 0o755
)
