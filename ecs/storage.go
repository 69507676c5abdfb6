package ecs

import (
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

// Storage owns every entity and its component bag.
//
// Ids are handed out by a single forward cursor rather than a free-list: removing
// an entity moves the cursor back to the freed id, and the next allocation probes
// upward from there past any id that is still occupied.
type Storage struct {
	bags   *intmap.Map[EntityId, *Bag]
	ids    []EntityId // live ids, ascending
	cursor EntityId
}

type storageOptions struct {
	capacity int
}

// StorageOption configures a Storage.
type StorageOption func(o *storageOptions)

// WithCapacity preallocates room for n entities.
func WithCapacity(n int) StorageOption {
	return func(o *storageOptions) {
		o.capacity = n
	}
}

// NewStorage creates an empty Storage.
func NewStorage(opts ...StorageOption) *Storage {
	o := &storageOptions{
		capacity: 256,
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Storage{
		bags: intmap.New[EntityId, *Bag](o.capacity),
		ids:  make([]EntityId, 0, o.capacity),
	}
}

// CreateEntity allocates a new id with an empty bag.
func (s *Storage) CreateEntity() EntityId {
	id := s.cursor
	for s.bags.Has(id) {
		id++
	}

	s.bags.Put(id, newBag())
	pos, _ := slices.BinarySearch(s.ids, id)
	s.ids = slices.Insert(s.ids, pos, id)

	next := id + 1
	for s.bags.Has(next) {
		next++
	}
	s.cursor = next

	return id
}

// RemoveEntity deletes the entity and all of its components. The allocation
// cursor is reset to id whether or not the entity existed.
func (s *Storage) RemoveEntity(id EntityId) {
	if s.bags.Del(id) {
		if pos, ok := slices.BinarySearch(s.ids, id); ok {
			s.ids = slices.Delete(s.ids, pos, pos+1)
		}
	}
	s.cursor = id
}

// Alive reports whether id names a live entity.
func (s *Storage) Alive(id EntityId) bool {
	return s.bags.Has(id)
}

// Len returns the number of live entities.
func (s *Storage) Len() int {
	return len(s.ids)
}

// Entities returns the live ids in ascending order.
func (s *Storage) Entities() []EntityId {
	return slices.Clone(s.ids)
}

// Bag returns the component bag of a live entity.
func (s *Storage) Bag(id EntityId) (*Bag, bool) {
	return s.bags.Get(id)
}

// Component returns the *T stored under kind for the entity. Missing entities
// and missing kinds are both reported as absent.
func (s *Storage) Component(id EntityId, kind ComponentKind) (any, bool) {
	bag, ok := s.bags.Get(id)
	if !ok {
		return nil, false
	}
	return bag.get(kind)
}

// Set stores a type-erased component on the entity, replacing any value of the
// same kind. Pointer values are dereferenced and their pointee stored. Setting
// on an unknown entity, or setting nil, does nothing.
func (s *Storage) Set(id EntityId, component any) {
	if component == nil {
		return
	}
	bag, ok := s.bags.Get(id)
	if !ok {
		return
	}

	compType := reflect.TypeOf(component)
	if compType.Kind() == reflect.Ptr {
		ptr := reflect.ValueOf(component)
		if ptr.IsNil() {
			return
		}
		compType = compType.Elem()
		component = ptr.Elem().Interface()
	}

	kind := KindFor(compType)
	info, _ := kinds.info(kind)
	bag.insert(kind, info.box(component))
}

// Remove deletes one component from the entity. Absent entities and kinds are
// ignored.
func (s *Storage) Remove(id EntityId, kind ComponentKind) {
	if bag, ok := s.bags.Get(id); ok {
		bag.remove(kind)
	}
}

// Has reports whether the entity holds a component of the given kind.
func (s *Storage) Has(id EntityId, kind ComponentKind) bool {
	bag, ok := s.bags.Get(id)
	return ok && bag.has(kind)
}

// GetComponent returns the entity's T, or false if the entity or component is
// missing. The pointer stays valid after later writes but does not observe them.
func GetComponent[T any](s *Storage, id EntityId) (*T, bool) {
	c, ok := s.Component(id, KindOf[T]())
	if !ok {
		return nil, false
	}
	return c.(*T), true
}

// SetComponent stores value as the entity's T. Unknown entities are ignored.
func SetComponent[T any](s *Storage, id EntityId, value T) {
	if bag, ok := s.bags.Get(id); ok {
		bag.insert(KindOf[T](), &value)
	}
}

// RemoveComponent deletes the entity's T if present.
func RemoveComponent[T any](s *Storage, id EntityId) {
	s.Remove(id, KindOf[T]())
}

// HasComponent reports whether the entity holds a T.
func HasComponent[T any](s *Storage, id EntityId) bool {
	return s.Has(id, KindOf[T]())
}

// Snapshot evaluates access against every live entity and returns the matches
// in ascending id order. The result is fully materialized: writes made after the
// call are not reflected in it.
func Snapshot[V any](s *Storage, access Access[V]) []Row[V] {
	return appendRows(s, nil, access)
}

func appendRows[V any](s *Storage, rows []Row[V], access Access[V]) []Row[V] {
	for _, id := range s.ids {
		bag, _ := s.bags.Get(id)
		if view, ok := access.fetch(bag); ok {
			rows = append(rows, Row[V]{Id: id, View: view})
		}
	}
	return rows
}

// Fetch evaluates access against a single entity.
func Fetch[V any](s *Storage, id EntityId, access Access[V]) (V, bool) {
	bag, ok := s.bags.Get(id)
	if !ok {
		var zero V
		return zero, false
	}
	return access.fetch(bag)
}

// Apply writes value to the entity through the given write shape. Writes to an
// entity that no longer exists are dropped.
func Apply[V any](s *Storage, id EntityId, write Write[V], value V) {
	if bag, ok := s.bags.Get(id); ok {
		write.apply(bag, value)
	}
}
