package synth

import "record-forge/schema"

// fakeObject is a minimal map-backed Object for exercising the
// synthesized behaviors without the full instance machinery.
type fakeObject struct {
	schema *schema.Merged
	attrs  map[string]any
}

func newFake(m *schema.Merged) *fakeObject {
	return &fakeObject{schema: m, attrs: make(map[string]any)}
}

func (f *fakeObject) Schema() *schema.Merged { return f.schema }

func (f *fakeObject) Raw(name string) (any, bool) {
	v, ok := f.attrs[name]
	return v, ok
}

func (f *fakeObject) SetRaw(name string, v any) error {
	f.attrs[name] = v
	return nil
}

func (f *fakeObject) DeleteRaw(name string) error {
	delete(f.attrs, name)
	return nil
}

func sealed(name string, opts schema.Options, fields ...schema.FieldSpec) *schema.Merged {
	m := &schema.Merged{TypeName: name, Fields: fields, Options: opts}
	for i := range m.Fields {
		m.Fields[i].Position = i
	}
	m.Seal()
	return m
}
