// Package api embeds the OpenAPI description of the EazyVenue API.
// The HTTP server serves it at /openapi.yaml.
package api

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
// Serving it from the binary keeps the description and the running code in step.
//
//go:embed openapi.yaml
var OpenAPI []byte
