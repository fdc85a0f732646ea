// Package configs embeds the default game configuration
package configs

import "embed"

// FS holds settings.json, entities.json and stages/*.yaml
//
//go:embed settings.json entities.json stages/*.yaml
var FS embed.FS
