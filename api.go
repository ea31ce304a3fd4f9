package ultraviolet

import (
	"errors"
	"strconv"

	eng "github.com/Frizi/ultraviolet/internal/engine"
	str "github.com/Frizi/ultraviolet/internal/stream"
)

// Decode reads exactly one aggregate of type T from src. Failures are the
// typed errors of this package (or a wrapped io.ErrUnexpectedEOF); no partial
// value is returned.
func Decode[T any, PT AggregatePtr[T]](src Source, opts ...DecodeOpt) (T, error) {
	var v T
	if err := DecodeInto[T, PT](src, &v, opts...); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// DecodeInto is Decode writing into dst. dst is left untouched on failure.
func DecodeInto[T any, PT AggregatePtr[T]](src Source, dst PT, opts ...DecodeOpt) error {
	opt := lastDecodeOpt(opts)
	vals, err := decodeScalars(EnforceSourceIfNeeded(src, opt), dst.FieldTable(), opt)
	if err != nil {
		return err
	}
	dst.setScalars(vals)
	return nil
}

// Encode writes a to sink and flushes it.
func Encode(sink Sink, a Aggregate, opts ...EncodeOpt) error {
	if err := encodeTokens(sink, a, lastEncodeOpt(opts).Policy); err != nil {
		return err
	}
	return sink.Flush()
}

// DecodeSlice reads a sequence of aggregates. Element failures are reported
// as Issues with paths rebased under the element index; unless FailFast is
// set every element is attempted. Errors from the source itself end the
// decode immediately.
func DecodeSlice[T any, PT AggregatePtr[T]](src Source, opts ...DecodeOpt) ([]T, error) {
	opt := lastDecodeOpt(opts)
	src = EnforceSourceIfNeeded(src, opt)
	table := PT(new(T)).FieldTable()

	tok, err := src.NextToken()
	if err != nil {
		return nil, toIssues(eng.UnexpectedEOF(err))
	}
	if tok.Kind != TokenBeginArray {
		return nil, toIssues(&InvalidTypeError{Type: "[]" + table.name, Got: tok.Kind.String(), Expected: "sequence"})
	}

	var (
		out []T
		iss Issues
	)
	for idx := 0; ; idx++ {
		tok, err := src.NextToken()
		if err != nil {
			return nil, AppendIssues(iss, toIssues(eng.UnexpectedEOF(err))...)
		}
		if tok.Kind == TokenEndArray {
			break
		}
		sub := str.NewPreloadedSource(src, tok)
		vals, derr := decodeScalars(sub, table, opt)
		if derr == nil {
			var v T
			PT(&v).setScalars(vals)
			out = append(out, v)
			continue
		}
		base := "/" + strconv.Itoa(idx)
		var ie issuer
		if !errors.As(derr, &ie) {
			// enforcement and source errors carry absolute paths already
			return nil, AppendIssues(iss, toIssues(derr)...)
		}
		iss = AppendIssues(iss, rebaseIssuesUnder(base, Issues{ie.Issue()})...)
		if opt.FailFast {
			return nil, iss
		}
		if err := drain(sub); err != nil {
			return nil, AppendIssues(iss, toIssues(err)...)
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// EncodeSlice writes vs as one sequence and flushes the sink.
func EncodeSlice[T Aggregate](sink Sink, vs []T, opts ...EncodeOpt) error {
	p := lastEncodeOpt(opts).Policy
	if err := sink.WriteToken(Token{Kind: TokenBeginArray, Offset: -1}); err != nil {
		return err
	}
	for _, v := range vs {
		if err := encodeTokens(sink, v, p); err != nil {
			return err
		}
	}
	if err := sink.WriteToken(Token{Kind: TokenEndArray, Offset: -1}); err != nil {
		return err
	}
	return sink.Flush()
}

// drain consumes what is left of a failed element so the next one starts on
// a clean boundary.
func drain(sub *str.PreloadedSource) error {
	for !sub.Done() {
		if _, err := sub.NextToken(); err != nil {
			return eng.UnexpectedEOF(err)
		}
	}
	return nil
}
