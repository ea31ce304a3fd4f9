//go:build !gojson

package gojson

import (
	"io"

	uv "github.com/Frizi/ultraviolet"
	jsonsrc "github.com/Frizi/ultraviolet/source/json"
)

// Driver returns a stub driver description when gojson tag is not enabled.
// It delegates to the encoding/json-based source directly to avoid recursion.
func Driver() uv.JSONDriver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) uv.Source { return jsonsrc.NewReader(r) }
func (stub) NewBytes(b []byte) uv.Source     { return jsonsrc.NewBytes(b) }
func (stub) NewWriter(w io.Writer) uv.Sink   { return jsonsrc.NewWriter(w) }
func (stub) Name() string                    { return "encoding/json (gojson stub)" }
