package codec

import "github.com/fxamacker/cbor/v2"

// CBOR is the github.com/fxamacker/cbor/v2 codec.
type CBOR struct{}

// Marshal encodes the value as one CBOR data item.
func (CBOR) Marshal(v any) ([]byte, error) { return cbor.Marshal(v) }

// Unmarshal decodes one CBOR data item into v.
func (CBOR) Unmarshal(data []byte, v any) error { return cbor.Unmarshal(data, v) }

// Name returns the unique name of the codec ("cbor").
func (CBOR) Name() string { return "cbor" }
