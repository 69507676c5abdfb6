package ecs

//go:generate go run ../cmd/ecs-gen -out . -max 8

// MaxArity is the largest combination generated for And, SetAnd and Group.
// Wider combinations are built by nesting.
const MaxArity = 8

// Nothing is the empty view and the empty output.
type Nothing struct{}

// Access describes what a system reads from one entity. Shapes compose: Read
// and Has match a single kind, Opt always matches, Or tries two shapes in order,
// and And2..And8 require every member to match.
type Access[V any] interface {
	fetch(bag *Bag) (V, bool)
}

// Write describes how a system's output is stored back on an entity.
type Write[V any] interface {
	apply(bag *Bag, value V)
	mutates() bool
}

type read[T any] struct {
	kind ComponentKind
}

// Read matches entities holding a T and yields a pointer to it. The pointer is
// borrowed: it is valid for the rest of the tick but later writes replace the
// stored value rather than writing through it.
func Read[T any]() Access[*T] {
	return read[T]{kind: KindOf[T]()}
}

func (r read[T]) fetch(bag *Bag) (*T, bool) {
	c, ok := bag.get(r.kind)
	if !ok {
		return nil, false
	}
	return c.(*T), true
}

type has struct {
	kind ComponentKind
}

// Has matches entities holding a T without reading it.
func Has[T any]() Access[Nothing] {
	return has{kind: KindOf[T]()}
}

func (h has) fetch(bag *Bag) (Nothing, bool) {
	return Nothing{}, bag.has(h.kind)
}

type optional[V any] struct {
	inner Access[V]
}

// Opt always matches. The view is Some when the inner shape matched.
func Opt[V any](inner Access[V]) Access[Option[V]] {
	return optional[V]{inner: inner}
}

func (o optional[V]) fetch(bag *Bag) (Option[V], bool) {
	if v, ok := o.inner.fetch(bag); ok {
		return Some(v), true
	}
	return None[V](), true
}

type alternation[L, R any] struct {
	left  Access[L]
	right Access[R]
}

// Or tries left first and only evaluates right when left fails. An entity that
// matches both always yields the left outcome.
func Or[L, R any](left Access[L], right Access[R]) Access[Either[L, R]] {
	return alternation[L, R]{left: left, right: right}
}

func (a alternation[L, R]) fetch(bag *Bag) (Either[L, R], bool) {
	if l, ok := a.left.fetch(bag); ok {
		return LeftOf[L, R](l), true
	}
	if r, ok := a.right.fetch(bag); ok {
		return RightOf[L](r), true
	}
	return Either[L, R]{}, false
}

type set[T any] struct {
	kind ComponentKind
}

// Set writes the output as the entity's T.
func Set[T any]() Write[T] {
	return set[T]{kind: KindOf[T]()}
}

func (w set[T]) apply(bag *Bag, value T) {
	bag.insert(w.kind, &value)
}

func (set[T]) mutates() bool {
	return true
}

type noWrite struct{}

// NoWrite is the empty output shape. Systems declaring it are read-only.
func NoWrite() Write[Nothing] {
	return noWrite{}
}

func (noWrite) apply(*Bag, Nothing) {}

func (noWrite) mutates() bool {
	return false
}
