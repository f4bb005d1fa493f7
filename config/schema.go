package config

import "github.com/invopop/jsonschema"

// Schema returns the JSON schema describing Config documents. Useful for
// editor validation and documentation of the configuration surface.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
	}
	return reflector.Reflect(&Config{})
}
