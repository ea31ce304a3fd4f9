// Package codec names the whole-value encodings of ultraviolet aggregates.
//
// Every aggregate implements the marshaler interfaces of encoding/json,
// gopkg.in/yaml.v3, github.com/fxamacker/cbor/v2 and encoding, so each codec
// here is a thin wrapper over the library's Marshal/Unmarshal. The names are
// stable and double as the format names of NewSource and NewSink.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "yaml":
		return YAML{}, true
	case "cbor":
		return CBOR{}, true
	case "binary":
		return Binary{}, true
	default:
		return nil, false
	}
}

// Names lists the built-in codec names in ByName order.
func Names() []string { return []string{"json", "go-json", "yaml", "cbor", "binary"} }

// Default is the codec used when none is named.
var Default Codec = JSON{}

// MustMarshal is a helper for tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
