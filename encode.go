package ultraviolet

import "strconv"

// encodeTokens writes the tokens of a to sink without flushing. Components
// are emitted in ordinal order; matrices column by column.
func encodeTokens(sink Sink, a Aggregate, p Policy) error {
	t := a.FieldTable()
	var buf [maxArity]float32
	vals := a.appendScalars(buf[:0])

	if positional(t, p) {
		if err := sink.WriteToken(Token{Kind: TokenBeginArray, Offset: -1}); err != nil {
			return err
		}
		for _, v := range vals {
			if err := sink.WriteToken(numberToken(v)); err != nil {
				return err
			}
		}
		return sink.WriteToken(Token{Kind: TokenEndArray, Offset: -1})
	}

	if err := sink.WriteToken(Token{Kind: TokenBeginObject, Offset: -1}); err != nil {
		return err
	}
	for i, v := range vals {
		if err := sink.WriteToken(Token{Kind: TokenKey, String: t.fields[i], Offset: -1}); err != nil {
			return err
		}
		if err := sink.WriteToken(numberToken(v)); err != nil {
			return err
		}
	}
	return sink.WriteToken(Token{Kind: TokenEndObject, Offset: -1})
}

// numberToken renders f with the shortest text that parses back to the same
// float32.
func numberToken(f float32) Token {
	return Token{Kind: TokenNumber, Number: strconv.FormatFloat(float64(f), 'g', -1, 32), Offset: -1}
}
