package ultraviolet

import js "github.com/Frizi/ultraviolet/jsonschema"

// JSONSchema projects the accepted wire shapes of t under p into a JSON
// Schema. Named types under the structured policy accept a closed object or
// a fixed-length array; everything else only the array.
func JSONSchema(t *FieldTable, p Policy) *js.Schema {
	seq := js.FixedArray(js.Float32(), t.Arity())
	var s *js.Schema
	if positional(t, p) {
		s = seq
	} else {
		s = &js.Schema{OneOf: []*js.Schema{js.ClosedObject(t.Fields(), js.Float32), seq}}
	}
	s.Schema = js.Draft
	s.Title = t.Name()
	return s
}
