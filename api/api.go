// Package api ships the OpenAPI contract for the lesson server.
// The HTTP adapter serves it on /openapi.yaml and the tests validate the
// implemented routes against it.
package api

import _ "embed"

// Spec is the embedded OpenAPI 3.0 document.
//
//go:embed openapi.yaml
var Spec []byte
