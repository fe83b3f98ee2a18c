// Package ecs provides ECS adapters for breach.
package ecs

import (
	"github.com/phanxgames/breach"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GameEventType is the Donburi event type for breach gameplay events.
// Subscribe to this in your ECS systems to receive target hit and breach
// shot events.
var GameEventType = events.NewEventType[breach.GameEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Gameplay events are published to GameEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) breach.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) Publish(event breach.GameEvent) {
	GameEventType.Publish(s.world, event)
}
