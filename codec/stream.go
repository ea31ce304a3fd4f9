package codec

import (
	"fmt"
	"io"

	uv "github.com/Frizi/ultraviolet"
	drvgojson "github.com/Frizi/ultraviolet/source/gojson"
)

// NewSource returns a token Source reading the named format from r. Token
// streams exist for the structural formats only; "binary" has none.
func NewSource(format string, r io.Reader) (uv.Source, error) {
	switch format {
	case "json":
		return uv.JSONReader(r), nil
	case "go-json":
		return drvgojson.Driver().NewReader(r), nil
	case "yaml":
		return uv.YAMLReader(r), nil
	case "cbor":
		return uv.CBORReader(r), nil
	default:
		return nil, fmt.Errorf("codec: no token source for format %q", format)
	}
}

// NewSink returns a token Sink writing the named format to w.
func NewSink(format string, w io.Writer) (uv.Sink, error) {
	switch format {
	case "json":
		return uv.JSONWriter(w), nil
	case "go-json":
		return drvgojson.Driver().NewWriter(w), nil
	case "yaml":
		return uv.YAMLWriter(w), nil
	case "cbor":
		return uv.CBORWriter(w), nil
	default:
		return nil, fmt.Errorf("codec: no token sink for format %q", format)
	}
}

// StreamNames lists the formats NewSource and NewSink accept.
func StreamNames() []string { return []string{"json", "go-json", "yaml", "cbor"} }
