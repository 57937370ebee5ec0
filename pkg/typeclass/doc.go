// Package typeclass grafts behaviour onto types it does not own. Capabilities
// are interfaces parameterised by the target type and passed explicitly, either
// directly or through a Scope that stacks several of them.
package typeclass
