package ecs

import "github.com/kamstrup/intmap"

// Commands provides a buffer for structural changes that are applied after a
// system's component writes, before the next system in the tick runs.
type Commands struct {
	spawns  []spawnCommand
	deletes []EntityId
	sets    []setComponentCommand
	removes []removeComponentCommand
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type spawnCommand struct {
	components []any
}

type setComponentCommand struct {
	entity    EntityId
	component any
}

type removeComponentCommand struct {
	entity EntityId
	kind   ComponentKind
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Spawn queues creation of an entity holding the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Delete queues an entity removal.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// SetComponent queues a type-erased component write.
func (c *Commands) SetComponent(entity EntityId, component any) {
	c.sets = append(c.sets, setComponentCommand{
		entity:    entity,
		component: component,
	})
}

// RemoveComponent queues a component removal.
func (c *Commands) RemoveComponent(entity EntityId, kind ComponentKind) {
	c.removes = append(c.removes, removeComponentCommand{
		entity: entity,
		kind:   kind,
	})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.sets) + len(c.removes) + len(c.defers)
}

// Flush applies all commands to the storage and resets the buffer. Deletes run
// first; component changes queued for a deleted entity are skipped.
func (c *Commands) Flush(storage *Storage) {
	deletedEntities := intmap.NewSet[EntityId](len(c.deletes))

	for _, id := range c.deletes {
		storage.RemoveEntity(id)
		deletedEntities.Add(id)
	}

	for _, cmd := range c.removes {
		if !deletedEntities.Has(cmd.entity) {
			storage.Remove(cmd.entity, cmd.kind)
		}
	}

	for _, cmd := range c.sets {
		if !deletedEntities.Has(cmd.entity) {
			storage.Set(cmd.entity, cmd.component)
		}
	}

	for _, cmd := range c.spawns {
		id := storage.CreateEntity()
		for _, comp := range cmd.components {
			storage.Set(id, comp)
		}
	}

	for _, df := range c.defers {
		df.fn()
	}

	clear(c.sets)
	clear(c.spawns)
	clear(c.defers)
	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.sets = c.sets[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
