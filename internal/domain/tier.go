package domain

// Item is an atomic draggable unit with a stable identity.
type Item struct {
	ID      string
	Content string
}

// Tier is a named, ordered group of items. A tier owns its Items slice
// exclusively; two tiers never share a backing array.
type Tier struct {
	ID            string
	Name          string
	Items         []Item
	LabelPosition LabelPosition
}

// Label returns the effective label position of the tier.
func (t Tier) Label() LabelPosition {
	return t.LabelPosition.OrDefault()
}

// Clone returns a copy of t with its own item slice.
func (t Tier) Clone() Tier {
	t.Items = append([]Item(nil), t.Items...)
	return t
}
