// Package docs registers the API contract with swag so the swagger UI
// route can serve it.
package docs

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

type document struct {
	json string
}

func (d document) ReadDoc() string {
	return d.json
}

var (
	once        sync.Once
	registerErr error
)

// Register publishes doc under swag's default instance name. Only the first
// call has an effect; later calls return its result.
func Register(doc *openapi3.T) error {
	once.Do(func() {
		data, err := doc.MarshalJSON()
		if err != nil {
			registerErr = fmt.Errorf("marshalling api contract: %w", err)
			return
		}
		swag.Register(swag.Name, document{json: string(data)})
	})
	return registerErr
}
