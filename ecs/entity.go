package ecs

import "strconv"

// EntityId identifies a live entity in a Storage. Ids are dense, start at zero and
// are reused after removal; an id carries no data of its own.
type EntityId uint64

func (e EntityId) String() string {
	return "entity#" + strconv.FormatUint(uint64(e), 10)
}

// Row pairs an entity with the view produced for it by an Access shape.
type Row[V any] struct {
	Id   EntityId
	View V
}
