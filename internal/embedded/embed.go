package embedded

import (
	"embed"
)

// Content holds the default configuration used when no file is found on disk.
//
//go:embed config/*.yaml
var Content embed.FS
