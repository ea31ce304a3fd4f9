//go:build gojson

package gojson

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uv "github.com/Frizi/ultraviolet"
	eng "github.com/Frizi/ultraviolet/internal/engine"
)

func readAll(t *testing.T, src eng.TokenSource) []eng.Token {
	t.Helper()
	var out []eng.Token
	for {
		tok, err := src.NextToken()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, tok)
	}
}

func kinds(toks []eng.Token) []eng.Kind {
	out := make([]eng.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestSource_Tokens(t *testing.T) {
	toks := readAll(t, NewBytes([]byte(`{"x":1,"x":-2.5e1,"v":[1,{"a":null}],"s":"k","b":true}`)))
	assert.Equal(t, []eng.Kind{
		eng.KindBeginObject,
		eng.KindKey, eng.KindNumber,
		eng.KindKey, eng.KindNumber,
		eng.KindKey, eng.KindBeginArray,
		eng.KindNumber,
		eng.KindBeginObject, eng.KindKey, eng.KindNull, eng.KindEndObject,
		eng.KindEndArray,
		eng.KindKey, eng.KindString,
		eng.KindKey, eng.KindBool,
		eng.KindEndObject,
	}, kinds(toks))

	// duplicate keys pass through in document order
	assert.Equal(t, "x", toks[1].String)
	assert.Equal(t, "x", toks[3].String)
	assert.Equal(t, "-2.5e1", toks[4].Number)
	assert.Equal(t, "a", toks[9].String)
	assert.Equal(t, "k", toks[14].String)
	assert.True(t, toks[16].Bool)
}

func TestSource_StringValueAfterNestedObject(t *testing.T) {
	toks := readAll(t, NewBytes([]byte(`{"o":{},"k":"v"}`)))
	require.Len(t, toks, 7)
	assert.Equal(t, eng.KindKey, toks[4].Kind)
	assert.Equal(t, "k", toks[4].String)
	assert.Equal(t, eng.KindString, toks[5].Kind)
}

func TestSource_Errors(t *testing.T) {
	_, err := readAllErr(NewBytes([]byte(`{"x":`)))
	assert.Error(t, err)
	assert.NotEqual(t, io.EOF, err)
	assert.Equal(t, int64(-1), NewBytes(nil).Location())
}

func readAllErr(src eng.TokenSource) ([]eng.Token, error) {
	var out []eng.Token
	for {
		tok, err := src.NextToken()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
}

func TestDriver_Decode(t *testing.T) {
	d := Driver()
	structured := uv.DecodeOpt{Policy: uv.PolicyStructured}
	assert.Equal(t, "go-json", d.Name())

	_, err := uv.Decode[uv.Vec3](d.NewBytes([]byte(`{"z":3,"x":1,"y":[]}`)), structured)
	require.Error(t, err)

	v, err := uv.Decode[uv.Vec3](d.NewBytes([]byte(`{"z":3,"x":1,"y":2}`)), structured)
	require.NoError(t, err)
	assert.Equal(t, uv.NewVec3(1, 2, 3), v)

	r, err := uv.Decode[uv.Rotor2](d.NewReader(bytes.NewReader([]byte(`[1, 0]`))))
	require.NoError(t, err)
	assert.Equal(t, uv.Rotor2Identity(), r)

	_, err = uv.Decode[uv.Vec2](d.NewBytes([]byte(`{"x":1,"y":2,"x":3}`)), structured)
	var de *uv.DuplicateFieldError
	assert.ErrorAs(t, err, &de)
}

func TestDriver_WriterQuotes(t *testing.T) {
	var buf bytes.Buffer
	sink := Driver().NewWriter(&buf)
	require.NoError(t, uv.Encode(sink, uv.NewVec2(0.5, -1), uv.EncodeOpt{Policy: uv.PolicyStructured}))
	assert.JSONEq(t, `{"x":0.5,"y":-1}`, buf.String())
}
