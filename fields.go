package ultraviolet

// FieldTable is the immutable wire description of one aggregate type: its
// name, arity and, for named types, the ordered field names. Tables are
// package-level values shared by every decode and encode of that type.
type FieldTable struct {
	name   string
	fields []string
	arity  int
	named  bool
	cols   int
}

// Name returns the aggregate type name used in diagnostics.
func (t *FieldTable) Name() string { return t.name }

// Arity returns the number of float32 components.
func (t *FieldTable) Arity() int { return t.arity }

// Named reports whether the type exposes field names on the wire.
func (t *FieldTable) Named() bool { return t.named }

// Columns returns the column count for matrices and 0 otherwise.
func (t *FieldTable) Columns() int { return t.cols }

// Field returns the wire name of ordinal ord, or "" for positional types.
func (t *FieldTable) Field(ord int) string {
	if !t.named || ord < 0 || ord >= len(t.fields) {
		return ""
	}
	return t.fields[ord]
}

// Fields returns a copy of the ordered field names (nil for positional types).
func (t *FieldTable) Fields() []string {
	if !t.named {
		return nil
	}
	return append([]string(nil), t.fields...)
}

// Resolve maps a wire field name to its ordinal. Lookup is exact and
// case-sensitive; positional types resolve nothing.
func (t *FieldTable) Resolve(name string) (int, bool) {
	if !t.named {
		return 0, false
	}
	for i, f := range t.fields {
		if f == name {
			return i, true
		}
	}
	return 0, false
}

func namedTable(name string, fields ...string) *FieldTable {
	return &FieldTable{name: name, fields: fields, arity: len(fields), named: true}
}

func positionalTable(name string, arity, cols int) *FieldTable {
	return &FieldTable{name: name, arity: arity, cols: cols}
}

var (
	vec2Table   = namedTable("Vec2", "x", "y")
	vec3Table   = namedTable("Vec3", "x", "y", "z")
	vec4Table   = namedTable("Vec4", "x", "y", "z", "w")
	bivec2Table = namedTable("Bivec2", "xy")
	bivec3Table = namedTable("Bivec3", "xy", "xz", "yz")
	rotor2Table = positionalTable("Rotor2", 2, 0)
	rotor3Table = positionalTable("Rotor3", 4, 0)
	mat2Table   = positionalTable("Mat2", 4, 2)
	mat3Table   = positionalTable("Mat3", 9, 3)
	mat4Table   = positionalTable("Mat4", 16, 4)
)

// maxArity bounds the decode accumulator.
const maxArity = 16
