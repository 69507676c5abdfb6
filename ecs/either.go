package ecs

// Option is the view produced by Opt.
type Option[V any] struct {
	value V
	ok    bool
}

// Some returns a present Option.
func Some[V any](v V) Option[V] {
	return Option[V]{value: v, ok: true}
}

// None returns an absent Option.
func None[V any]() Option[V] {
	return Option[V]{}
}

// Get returns the value and whether it is present.
func (o Option[V]) Get() (V, bool) {
	return o.value, o.ok
}

func (o Option[V]) IsSome() bool {
	return o.ok
}

// OrElse returns the value if present, otherwise fallback.
func (o Option[V]) OrElse(fallback V) V {
	if o.ok {
		return o.value
	}
	return fallback
}

// Either is the view produced by Or: exactly one of Left or Right is set.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func LeftOf[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

func RightOf[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}
