// Package configs embeds the default scenario files into the binaries.
package configs

import "embed"

// FS holds scenarios.yaml
//
//go:embed *.yaml
var FS embed.FS
