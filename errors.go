package ultraviolet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Frizi/ultraviolet/i18n"
	eng "github.com/Frizi/ultraviolet/internal/engine"
)

// Issue codes.
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeUnknownKey   = "unknown_key"
	CodeDuplicateKey = "duplicate_key"
	CodeTooShort     = "too_short"
	CodeTooLong      = "too_long"
	CodeParseError   = "parse_error"
	CodeOverflow     = "overflow"
	CodeTruncated    = "truncated"
	CodeDomainRange  = "domain_range"
)

// Issue is the flattened, path-addressed form of a decode failure.
type Issue struct {
	Path    string // JSON Pointer of the offending element (for example: /2/x).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: the typed error this issue was derived from.
	Offset  int64 // Byte offset in the input source (-1 when unknown).
	// Params carries structured parameters (e.g., {"expected":3, "got":2})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of decode issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_key at /1/w
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// issuer is implemented by every typed decode error.
type issuer interface {
	error
	Issue() Issue
}

// AsIssues extracts Issues from an error. Typed decode errors and
// enforcement errors are converted into a single-entry Issues; other errors
// report false.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	var ie issuer
	if errors.As(err, &ie) {
		return Issues{ie.Issue()}, true
	}
	var ee eng.IssueError
	if errors.As(err, &ee) {
		return Issues{{Path: ee.Path, Code: ee.Code, Message: i18n.T(ee.Code, nil), Cause: err, Offset: -1}}, true
	}
	return nil, false
}

// toIssues normalizes any error into Issues; unknown errors become a single
// parse_error at the root.
func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err, Offset: -1}}
}

// rebaseIssuesUnder prefixes child issue paths with the given base.
func rebaseIssuesUnder(base string, child Issues) Issues {
	out := make(Issues, 0, len(child))
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

func pointer(tokens ...string) string {
	if len(tokens) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, t := range tokens {
		b.WriteByte('/')
		b.WriteString(eng.EscapePointerToken(t))
	}
	return b.String()
}

// fieldPointer addresses ordinal ord of t: by name for named types, by
// index otherwise.
func fieldPointer(t *FieldTable, ord int) string {
	if name := t.Field(ord); name != "" {
		return pointer(name)
	}
	return pointer(strconv.Itoa(ord))
}

// ArityError reports a sequence that ended before every component was read.
// Got is the index of the first missing element.
type ArityError struct {
	Type     string
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("ultraviolet: invalid length %d, expected %d elements for %s", e.Got, e.Expected, e.Type)
}

func (e *ArityError) Issue() Issue {
	data := map[string]string{"expected": strconv.Itoa(e.Expected), "got": strconv.Itoa(e.Got)}
	return Issue{
		Path: "/", Code: CodeTooShort, Message: i18n.T(CodeTooShort, data), Cause: e, Offset: -1,
		Params: map[string]any{"type": e.Type, "expected": e.Expected, "got": e.Got},
	}
}

// TrailingError reports sequence elements past the aggregate's arity.
type TrailingError struct {
	Type     string
	Expected int
}

func (e *TrailingError) Error() string {
	return fmt.Sprintf("ultraviolet: trailing elements, expected %d elements for %s", e.Expected, e.Type)
}

func (e *TrailingError) Issue() Issue {
	data := map[string]string{"expected": strconv.Itoa(e.Expected)}
	return Issue{
		Path: pointer(strconv.Itoa(e.Expected)), Code: CodeTooLong, Message: i18n.T(CodeTooLong, data), Cause: e, Offset: -1,
		Params: map[string]any{"type": e.Type, "expected": e.Expected},
	}
}

// UnknownFieldError reports a map key that is not a field of the aggregate.
type UnknownFieldError struct {
	Type     string
	Name     string
	Expected []string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("ultraviolet: unknown field `%s`, expected %s", e.Name, oneOf(e.Expected))
}

func (e *UnknownFieldError) Issue() Issue {
	data := map[string]string{"key": e.Name, "expected": strings.Join(e.Expected, ", ")}
	return Issue{
		Path: pointer(e.Name), Code: CodeUnknownKey, Message: i18n.T(CodeUnknownKey, data), Cause: e, Offset: -1,
		Params: map[string]any{"type": e.Type, "key": e.Name, "expected": e.Expected},
	}
}

// DuplicateFieldError reports a field that appeared twice in one map.
type DuplicateFieldError struct {
	Type string
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("ultraviolet: duplicate field `%s`", e.Name)
}

func (e *DuplicateFieldError) Issue() Issue {
	return Issue{
		Path: pointer(e.Name), Code: CodeDuplicateKey, Message: i18n.T(CodeDuplicateKey, map[string]string{"key": e.Name}), Cause: e, Offset: -1,
		Params: map[string]any{"type": e.Type, "key": e.Name},
	}
}

// MissingFieldError reports the lowest-ordinal field absent from a map.
type MissingFieldError struct {
	Type string
	Name string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("ultraviolet: missing field `%s`", e.Name)
}

func (e *MissingFieldError) Issue() Issue {
	return Issue{
		Path: pointer(e.Name), Code: CodeRequired, Message: i18n.T(CodeRequired, map[string]string{"key": e.Name}), Cause: e, Offset: -1,
		Params: map[string]any{"type": e.Type, "key": e.Name},
	}
}

// InvalidTypeError reports a token of the wrong kind: a map where only a
// sequence is accepted, a scalar where a container is expected, or a
// non-number component.
type InvalidTypeError struct {
	Type     string
	Path     string
	Got      string
	Expected string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("ultraviolet: invalid type: %s, expected %s", e.Got, e.Expected)
}

func (e *InvalidTypeError) Issue() Issue {
	data := map[string]string{"expected": e.Expected, "got": e.Got}
	return Issue{
		Path: orRoot(e.Path), Code: CodeInvalidType, Message: i18n.T(CodeInvalidType, data), Cause: e, Offset: -1,
		Params: map[string]any{"type": e.Type, "expected": e.Expected, "got": e.Got},
	}
}

// InvalidValueError reports a number that cannot be stored in a float32
// component: out of range, malformed, or non-finite when that is rejected.
type InvalidValueError struct {
	Type  string
	Path  string
	Value string
	Code  string
}

func (e *InvalidValueError) Error() string {
	switch e.Code {
	case CodeOverflow:
		return fmt.Sprintf("ultraviolet: invalid value: %s, expected f32 in range", e.Value)
	case CodeDomainRange:
		return fmt.Sprintf("ultraviolet: invalid value: %s, expected finite f32", e.Value)
	default:
		return fmt.Sprintf("ultraviolet: invalid value: %s, expected f32", e.Value)
	}
}

func (e *InvalidValueError) Issue() Issue {
	return Issue{
		Path: orRoot(e.Path), Code: e.Code, Message: i18n.T(e.Code, map[string]string{"value": e.Value}), Cause: e, Offset: -1,
		Params: map[string]any{"type": e.Type, "value": e.Value},
	}
}

func orRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func oneOf(names []string) string {
	switch len(names) {
	case 0:
		return "no fields"
	case 1:
		return "`" + names[0] + "`"
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "`" + n + "`"
	}
	return "one of " + strings.Join(quoted, ", ")
}
