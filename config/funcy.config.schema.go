package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/itsatony/go-cuserr"
)

// Schema returns the JSON Schema of the config file format.
func Schema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&Config{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, cuserr.WrapStdError(err, ErrCodeConfig, ErrMsgSchemaFailed)
	}
	return data, nil
}
