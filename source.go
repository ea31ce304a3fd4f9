package ultraviolet

import (
	"io"
	"sync"

	eng "github.com/Frizi/ultraviolet/internal/engine"
	cborsrc "github.com/Frizi/ultraviolet/source/cbor"
	jsonsrc "github.com/Frizi/ultraviolet/source/json"
	yamlsrc "github.com/Frizi/ultraviolet/source/yaml"
)

// TokenKind enumerates the token kinds shared by every wire format.
type TokenKind = eng.Kind

const (
	TokenBeginObject TokenKind = eng.KindBeginObject
	TokenEndObject   TokenKind = eng.KindEndObject
	TokenBeginArray  TokenKind = eng.KindBeginArray
	TokenEndArray    TokenKind = eng.KindEndArray
	TokenKey         TokenKind = eng.KindKey
	TokenString      TokenKind = eng.KindString
	TokenNumber      TokenKind = eng.KindNumber
	TokenBool        TokenKind = eng.KindBool
	TokenNull        TokenKind = eng.KindNull
)

// Token describes a token in the input stream. Number holds the textual form
// of numeric leaves; Offset records the byte position when known (-1
// otherwise).
type Token = eng.Token

// Source yields tokens of exactly one value followed by io.EOF.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// Sink accepts the tokens of encoded values. Flush must be called once the
// outermost value is complete.
type Sink interface {
	WriteToken(Token) error
	Flush() error
}

// JSONDriver converts JSON input into a Source and JSON output into a Sink
// via a pluggable SPI. The default implementation is based on encoding/json
// and may be swapped with SetJSONDriver.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	NewWriter(w io.Writer) Sink
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the default encoding/json-backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the driver JSONReader, JSONBytes and JSONWriter
// use.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// defaultJSONDriver wraps the encoding/json implementation.
type defaultJSONDriver struct{}

func (defaultJSONDriver) NewReader(r io.Reader) Source { return jsonsrc.NewReader(r) }
func (defaultJSONDriver) NewBytes(b []byte) Source     { return jsonsrc.NewBytes(b) }
func (defaultJSONDriver) NewWriter(w io.Writer) Sink   { return jsonsrc.NewWriter(w) }
func (defaultJSONDriver) Name() string                 { return "encoding/json" }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return CurrentJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return CurrentJSONDriver().NewBytes(b) }

// JSONWriter returns a Sink rendering compact JSON into w.
func JSONWriter(w io.Writer) Sink { return CurrentJSONDriver().NewWriter(w) }

// YAMLReader wraps an io.Reader holding one YAML document as a Source.
func YAMLReader(r io.Reader) Source { return yamlsrc.NewReader(r) }

// YAMLBytes wraps a byte slice as a YAML Source.
func YAMLBytes(b []byte) Source { return yamlsrc.NewBytes(b) }

// YAMLWriter returns a Sink rendering a YAML document into w on Flush.
func YAMLWriter(w io.Writer) Sink { return yamlsrc.NewWriter(w) }

// CBORReader wraps an io.Reader holding one CBOR data item as a Source.
func CBORReader(r io.Reader) Source { return cborsrc.NewReader(r) }

// CBORBytes wraps a byte slice as a CBOR Source.
func CBORBytes(b []byte) Source { return cborsrc.NewBytes(b) }

// CBORWriter returns a Sink writing definite-length CBOR into w.
func CBORWriter(w io.Writer) Sink { return cborsrc.NewWriter(w) }

// EnforceSource wraps a Source with depth and size limits. Violations
// surface as errors that AsIssues understands.
func EnforceSource(s Source, opt DecodeOpt) Source {
	return eng.WrapWithEnforcement(s, enforceOptions(opt))
}

// EnforceSourceIfNeeded returns the original Source if no limit is set,
// preventing unnecessary overhead for small inputs.
func EnforceSourceIfNeeded(s Source, opt DecodeOpt) Source {
	if enforceOptions(opt).Disabled() {
		return s
	}
	return EnforceSource(s, opt)
}

func enforceOptions(opt DecodeOpt) eng.EnforceOptions {
	return eng.EnforceOptions{MaxDepth: opt.MaxDepth, MaxBytes: opt.MaxBytes}
}
