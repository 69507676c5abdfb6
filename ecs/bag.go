package ecs

import "github.com/kamstrup/intmap"

// Bag is the per-entity component container. It holds at most one value per
// component kind; every value is an owned *T.
type Bag struct {
	items *intmap.Map[ComponentKind, any]
}

func newBag() *Bag {
	return &Bag{
		items: intmap.New[ComponentKind, any](4),
	}
}

// insert stores ptr under kind, replacing any previous value. The old pointer is
// not written through, so views handed out earlier keep their value.
func (b *Bag) insert(kind ComponentKind, ptr any) {
	b.items.Put(kind, ptr)
}

func (b *Bag) get(kind ComponentKind) (any, bool) {
	return b.items.Get(kind)
}

func (b *Bag) has(kind ComponentKind) bool {
	return b.items.Has(kind)
}

func (b *Bag) remove(kind ComponentKind) bool {
	return b.items.Del(kind)
}

// Len returns the number of components in the bag.
func (b *Bag) Len() int {
	return b.items.Len()
}

// Kinds returns the kinds held by the bag, sorted by type name.
func (b *Bag) Kinds() []ComponentKind {
	out := make([]ComponentKind, 0, b.items.Len())
	for k := range b.items.Keys() {
		out = append(out, k)
	}
	sortKinds(out)
	return out
}
