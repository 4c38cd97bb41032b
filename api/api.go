// Package api embeds the OpenAPI document of the workshop HTTP API.
//
// The server types in internal/generated/servers are generated from it with the
// settings in oapi-codegen.yaml. TestGeneratedServerMatchesDocument fails when the
// two drift apart, so regenerate after every change to openapi.yaml:
//
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config oapi-codegen.yaml openapi.yaml
package api

import (
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var spec []byte

// Spec returns the raw OpenAPI document.
func Spec() []byte {
	return spec
}

// Load parses and validates the embedded document.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	return doc, nil
}
