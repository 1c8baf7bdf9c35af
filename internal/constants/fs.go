package constants

import "os"

// DefaultFilePermissions is used for the config file, which may hold the Genius token (rw-------).
const DefaultFilePermissions os.FileMode = 0o600
