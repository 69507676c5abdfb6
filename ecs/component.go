package ecs

import (
	"reflect"
	"slices"
	"sync"
)

// ComponentKind is the process-wide descriptor of a component type. Kinds are
// assigned on first use of a type and stay stable for the life of the process.
// The zero kind is never assigned.
type ComponentKind uint32

// Type returns the Go type registered for the kind, or nil for an unknown kind.
func (k ComponentKind) Type() reflect.Type {
	info, ok := kinds.info(k)
	if !ok {
		return nil
	}
	return info.typ
}

func (k ComponentKind) String() string {
	if t := k.Type(); t != nil {
		return t.String()
	}
	return "<unknown kind>"
}

// kindInfo holds the storage operations for one component type.
type kindInfo struct {
	typ reflect.Type
	// box copies a value of the kind's type into a freshly owned pointer.
	box func(value any) any
}

// componentRegistry maps Go types to component kinds. A single registry is shared
// by every Storage in the process so shapes built for one storage work on
// any other.
type componentRegistry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]ComponentKind
	infos  []kindInfo
}

var kinds = &componentRegistry{
	byType: make(map[reflect.Type]ComponentKind),
}

// KindOf returns the component kind for T, registering it on first use.
func KindOf[T any]() ComponentKind {
	t := reflect.TypeFor[T]()
	if k, ok := kinds.lookup(t); ok {
		return k
	}
	return kinds.register(t, func(value any) any {
		v := value.(T)
		return &v
	})
}

// KindFor returns the component kind for the given type, registering it on
// first use. Values of kinds registered through KindFor are boxed by reflection.
func KindFor(t reflect.Type) ComponentKind {
	if k, ok := kinds.lookup(t); ok {
		return k
	}
	return kinds.register(t, func(value any) any {
		ptr := reflect.New(t)
		ptr.Elem().Set(reflect.ValueOf(value))
		return ptr.Interface()
	})
}

// RegisteredKinds returns every kind known to the process, ordered by kind.
func RegisteredKinds() []ComponentKind {
	kinds.mu.RLock()
	defer kinds.mu.RUnlock()

	out := make([]ComponentKind, len(kinds.infos))
	for i := range kinds.infos {
		out[i] = ComponentKind(i + 1)
	}
	return out
}

func (r *componentRegistry) lookup(t reflect.Type) (ComponentKind, bool) {
	r.mu.RLock()
	k, ok := r.byType[t]
	r.mu.RUnlock()
	return k, ok
}

func (r *componentRegistry) register(t reflect.Type, box func(any) any) ComponentKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	// another goroutine may have won the race between lookup and register
	if k, ok := r.byType[t]; ok {
		return k
	}

	r.infos = append(r.infos, kindInfo{typ: t, box: box})
	k := ComponentKind(len(r.infos))
	r.byType[t] = k
	return k
}

func (r *componentRegistry) info(k ComponentKind) (kindInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if k == 0 || int(k) > len(r.infos) {
		return kindInfo{}, false
	}
	return r.infos[k-1], true
}

// sortKinds orders kinds by their type name, then by kind.
func sortKinds(ks []ComponentKind) {
	slices.SortFunc(ks, func(a, b ComponentKind) int {
		an, bn := a.String(), b.String()
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
		return int(a) - int(b)
	})
}
