package export

import (
	"github.com/invopop/jsonschema"

	"github.com/spiceio/spicekit/rawfile"
)

// Schema returns the JSON Schema of the document shape produced by JSON,
// for consumers that want to validate exported data.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{DoNotReference: true}
	return r.Reflect(&rawfile.Document{})
}
