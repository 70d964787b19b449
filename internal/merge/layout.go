package merge

import "record-forge/schema"

// planLayout decides per-field storage. Three regimes:
//
//   - Slots on: every field is slot-backed. The slots newly introduced by
//     this type are its own fields minus the slots an ancestor already
//     defined, so duplicate slot definitions never appear up the chain.
//   - Slots explicitly disabled at the point of use: every field reverts
//     to the flexible map, dropping inherited slot markers (the explicit
//     override is what permits the downgrade).
//   - Slots off by inheritance or default: fields an ancestor made
//     slot-backed stay slot-backed; only new fields go to the map.
//
// Slot-backed fields never fall back to a class-level shared default on
// read; the default is only the source value copied at construction.
func planLayout(m *schema.Merged, explicitOff bool) {
	ancestor := make(map[string]struct{})
	for _, p := range m.Parents {
		for name := range p.SlotIndex {
			ancestor[name] = struct{}{}
		}
	}

	switch {
	case m.Options.Slots:
		m.SlotIndex = make(map[string]int, len(m.Fields))
		for i := range m.Fields {
			f := &m.Fields[i]
			f.Layout = schema.LayoutFixed
			m.SlotIndex[f.Name] = i
			if _, owned := ancestor[f.Name]; !owned {
				m.NewSlots = append(m.NewSlots, f.Name)
			}
		}

	case explicitOff:
		for i := range m.Fields {
			m.Fields[i].Layout = schema.LayoutFlexible
		}

	default:
		for i := range m.Fields {
			f := &m.Fields[i]
			if _, owned := ancestor[f.Name]; !owned {
				continue
			}
			f.Layout = schema.LayoutFixed
			if m.SlotIndex == nil {
				m.SlotIndex = make(map[string]int)
			}
			m.SlotIndex[f.Name] = i
		}
	}
}
