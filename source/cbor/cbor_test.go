package cbor

import (
	"bytes"
	"io"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestSource_DefiniteMap(t *testing.T) {
	in, err := cbor.Marshal(map[string]float32{"x": 1.5})
	require.NoError(t, err)
	toks := readAll(t, NewBytes(in))
	require.Len(t, toks, 4)
	assert.Equal(t, eng.KindBeginObject, toks[0].Kind)
	assert.Equal(t, eng.KindKey, toks[1].Kind)
	assert.Equal(t, "x", toks[1].String)
	assert.Equal(t, "1.5", toks[2].Number)
	assert.Equal(t, eng.KindEndObject, toks[3].Kind)
}

func TestSource_IndefiniteContainers(t *testing.T) {
	// {_ "a": [_ 1, -2], "b": null }
	in := []byte{0xbf, 0x61, 'a', 0x9f, 0x01, 0x21, 0xff, 0x61, 'b', 0xf6, 0xff}
	toks := readAll(t, NewBytes(in))
	want := []eng.Kind{
		eng.KindBeginObject,
		eng.KindKey, eng.KindBeginArray, eng.KindNumber, eng.KindNumber, eng.KindEndArray,
		eng.KindKey, eng.KindNull,
		eng.KindEndObject,
	}
	require.Len(t, toks, len(want))
	for i, k := range want {
		assert.Equal(t, k, toks[i].Kind, "token %d", i)
	}
	assert.Equal(t, "-2", toks[4].Number)
}

func TestSource_TagsAreTransparent(t *testing.T) {
	// tag 1234 wrapping [1.0 as float32]
	in := []byte{0xd9, 0x04, 0xd2, 0x81, 0xfa, 0x3f, 0x80, 0x00, 0x00}
	toks := readAll(t, NewBytes(in))
	require.Len(t, toks, 3)
	assert.Equal(t, "1", toks[1].Number)
}

func TestSource_SelfDescribeTag(t *testing.T) {
	// tag 55799 wrapping [1, 2]
	in := []byte{0xd9, 0xd9, 0xf7, 0x82, 0x01, 0x02}
	toks := readAll(t, NewBytes(in))
	require.Len(t, toks, 4)
	assert.Equal(t, "1", toks[1].Number)
	assert.Equal(t, "2", toks[2].Number)
}

func TestSource_LargeTagNumber(t *testing.T) {
	// 8-byte tag number wrapping the integer 7
	in := []byte{0xdb, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x07}
	toks := readAll(t, NewBytes(in))
	require.Len(t, toks, 1)
	assert.Equal(t, "7", toks[0].Number)
}

func TestSource_Errors(t *testing.T) {
	cases := map[string][]byte{
		"container key":      {0xa1, 0x80, 0x01},
		"integer key":        {0xa1, 0x01, 0x01},
		"truncated":          {0x82, 0x01},
		"break after key":    {0xbf, 0x61, 'a', 0xff},
		"length exceeds":     {0x9a, 0xff, 0xff, 0xff, 0xff},
		"length wraps":       {0x9b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		"reserved info":      {0x9c},
		"truncated argument": {0x98},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			src := NewBytes(in)
			var err error
			for err == nil {
				_, err = src.NextToken()
			}
			assert.NotEqual(t, io.EOF, err)
		})
	}
}

func TestSource_OffsetsTrackItems(t *testing.T) {
	in := []byte{0x82, 0x01, 0x02}
	src := NewBytes(in)
	tok, err := src.NextToken()
	require.NoError(t, err)
	assert.Equal(t, int64(0), tok.Offset)
	tok, err = src.NextToken()
	require.NoError(t, err)
	assert.Equal(t, int64(1), tok.Offset)
	assert.Equal(t, int64(2), src.Location())
}

func TestNewReader(t *testing.T) {
	toks := readAll(t, NewReader(bytes.NewReader([]byte{0x80})))
	assert.Len(t, toks, 2)
}

func TestWriter_DefiniteHeads(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, tok := range []eng.Token{
		{Kind: eng.KindBeginObject},
		{Kind: eng.KindKey, String: "xy"},
		{Kind: eng.KindNumber, Number: "-2"},
		{Kind: eng.KindKey, String: "ok"},
		{Kind: eng.KindBool, Bool: true},
		{Kind: eng.KindEndObject},
	} {
		require.NoError(t, w.WriteToken(tok))
	}
	require.NoError(t, w.Flush())
	assert.Equal(t, []byte{
		0xa2,
		0x62, 'x', 'y', 0xfa, 0xc0, 0x00, 0x00, 0x00,
		0x62, 'o', 'k', 0xf5,
	}, buf.Bytes())
}

func TestWriter_LongArray(t *testing.T) {
	sink, out := Bytes()
	require.NoError(t, sink.WriteToken(eng.Token{Kind: eng.KindBeginArray}))
	for range 24 {
		require.NoError(t, sink.WriteToken(eng.Token{Kind: eng.KindNull}))
	}
	require.NoError(t, sink.WriteToken(eng.Token{Kind: eng.KindEndArray}))
	require.NoError(t, sink.Flush())
	b := out()
	assert.Equal(t, []byte{0x98, 24}, b[:2])
	assert.Len(t, b, 26)

	var back []any
	require.NoError(t, cbor.Unmarshal(b, &back))
	assert.Len(t, back, 24)
}

func TestWriter_Unbalanced(t *testing.T) {
	sink, _ := Bytes()
	require.NoError(t, sink.WriteToken(eng.Token{Kind: eng.KindBeginObject}))
	require.NoError(t, sink.WriteToken(eng.Token{Kind: eng.KindKey, String: "k"}))
	assert.ErrorIs(t, sink.WriteToken(eng.Token{Kind: eng.KindEndObject}), ErrUnbalanced)

	sink, _ = Bytes()
	require.NoError(t, sink.WriteToken(eng.Token{Kind: eng.KindBeginArray}))
	assert.ErrorIs(t, sink.Flush(), ErrUnbalanced)
}

func TestWriter_RoundTripThroughSource(t *testing.T) {
	sink, out := Bytes()
	toks := []eng.Token{
		{Kind: eng.KindBeginArray},
		{Kind: eng.KindNumber, Number: "0.1"},
		{Kind: eng.KindString, String: "s"},
		{Kind: eng.KindEndArray},
	}
	for _, tok := range toks {
		require.NoError(t, sink.WriteToken(tok))
	}
	require.NoError(t, sink.Flush())
	back := readAll(t, NewBytes(out()))
	require.Len(t, back, 4)
	// float32(0.1) widened to float64 keeps its exact binary value
	assert.Equal(t, "0.10000000149011612", back[1].Number)
	assert.Equal(t, "s", back[2].String)
}
