package ultraviolet

// Policy selects the wire shape of named aggregates.
type Policy int

const (
	// PolicyDefault resolves to the build-time default (see DefaultPolicy).
	PolicyDefault Policy = iota
	// PolicyStructured encodes vectors and bivectors as maps keyed by field
	// name and accepts either a map or a sequence when decoding. Matrices and
	// rotors stay positional.
	PolicyStructured
	// PolicyDense encodes and decodes every aggregate as a flat sequence.
	PolicyDense
)

func (p Policy) String() string {
	switch p {
	case PolicyStructured:
		return "structured"
	case PolicyDense:
		return "dense"
	default:
		return "default"
	}
}

// ParsePolicy maps "structured", "dense" or "" (default) onto a Policy.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "", "default":
		return PolicyDefault, true
	case "structured":
		return PolicyStructured, true
	case "dense":
		return PolicyDense, true
	}
	return PolicyDefault, false
}

// DefaultPolicy returns the policy PolicyDefault stands for in this build.
// Building with -tags uvdense switches it to PolicyDense.
func DefaultPolicy() Policy { return defaultPolicy }

func (p Policy) resolve() Policy {
	if p == PolicyDefault {
		return defaultPolicy
	}
	return p
}

// Strictness relaxes or tightens decode checks beyond the field-table rules.
type Strictness struct {
	AllowTrailing   bool // Skip sequence elements past the aggregate's arity.
	RejectNonFinite bool // Reject NaN/±Inf components.
}

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	Policy     Policy
	Strictness Strictness
	MaxDepth   int
	// MaxBytes caps the input offset reported by the source. YAML counts
	// bytes read from the reader, so the whole document counts at once.
	// Sources with no offset, such as an already decoded yaml.Node, are not
	// limited.
	MaxBytes int64
	// FailFast stops DecodeSlice at the first failing element instead of
	// collecting one issue per element.
	FailFast bool
}

// EncodeOpt bundles encoding options.
type EncodeOpt struct {
	Policy Policy
}

func lastDecodeOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return DecodeOpt{}
}

func lastEncodeOpt(opts []EncodeOpt) EncodeOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return EncodeOpt{}
}

// positional reports whether t uses the sequence shape under p.
func positional(t *FieldTable, p Policy) bool {
	return !t.named || p.resolve() == PolicyDense
}
