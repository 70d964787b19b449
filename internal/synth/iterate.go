package synth

import "record-forge/schema"

// NewIterator synthesizes iteration: the live non-internal field values
// in merged order. Internal fields stay hidden, so unpacking against a
// hidden-inclusive count fails at the caller rather than silently
// truncating. Unset fields yield nil.
func NewIterator(m *schema.Merged) func(o Object) []any {
	return func(o Object) []any {
		specs := o.Schema().Visible()
		out := make([]any, len(specs))
		for i, f := range specs {
			out[i], _ = fieldValue(o, f)
		}
		return out
	}
}
