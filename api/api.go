// Package api embeds the OpenAPI document of the HTTP interface and registers
// it for the Swagger UI.
package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawDoc []byte

// GetSwagger parses the embedded document. Every call returns a fresh copy that
// the caller may modify.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawDoc)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	return doc, nil
}

type docReader struct {
	once sync.Once
	doc  string
}

// ReadDoc returns the document as JSON, which is what the Swagger UI fetches.
func (r *docReader) ReadDoc() string {
	r.once.Do(func() {
		doc, err := GetSwagger()
		if err != nil {
			return
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return
		}
		r.doc = string(b)
	})
	return r.doc
}

func init() {
	swag.Register(swag.Name, &docReader{})
}
