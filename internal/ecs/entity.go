// Package ecs is the entity registry that light emitters and lantern bearers
// live in. Systems enumerate entities by the capabilities they carry.
package ecs

// EntityID uniquely identifies an entity in the world.
type EntityID uint64

// NilEntity is never handed out by CreateEntity.
const NilEntity EntityID = 0

// ComponentType is the capability key a component is stored under.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}
