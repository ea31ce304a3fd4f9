package codec

import "gopkg.in/yaml.v3"

// YAML is the gopkg.in/yaml.v3 codec.
type YAML struct{}

// Marshal encodes the value as a YAML document.
func (YAML) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

// Unmarshal decodes the first YAML document in data into v.
func (YAML) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }

// Name returns the unique name of the codec ("yaml").
func (YAML) Name() string { return "yaml" }
