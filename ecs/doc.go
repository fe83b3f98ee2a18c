// Package ecs provides ECS adapters for breach's gameplay event system.
//
// The primary adapter is [NewDonburiStore], which bridges breach gameplay
// events (target hits, breach shots) into a [Donburi] world as typed
// events. Subscribe to [GameEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	game.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
