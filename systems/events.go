package systems

import (
	"log"

	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/core"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// SimEvent carries every event a tick raised to the presentation systems.
var SimEvent = events.NewEventType[core.Event]()

// publishSimEvents queues a tick's events; they are delivered when
// DispatchEvents runs at the end of the frame.
func publishSimEvents(w donburi.World, es core.Events) {
	for _, e := range es {
		SimEvent.Publish(w, e)
	}
}

// DispatchEvents delivers the queued sim events to their subscribers.
func DispatchEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

// SubscribeSimEvents wires the effect reactions for a world scene.
func SubscribeSimEvents(w donburi.World) {
	SimEvent.Subscribe(w, onSimEvent)
}

func onSimEvent(w donburi.World, e core.Event) {
	switch e.Kind {
	case core.EventPlayerDamaged:
		TriggerScreenShake(w, cfg.ScreenShake.PlayerDamageIntensity, cfg.ScreenShake.PlayerDamageDuration)
		TriggerFlash(w, cfg.Flash.DamageColor, cfg.Flash.DamageDuration)
	case core.EventAttackStarted:
		TriggerScreenShake(w, cfg.ScreenShake.AttackIntensity, cfg.ScreenShake.AttackDuration)
	case core.EventLeveledUp:
		TriggerFlash(w, cfg.Flash.LevelUpColor, cfg.Flash.LevelDuration)
	case core.EventLevelEntered:
		log.Printf("entered level %d", e.Index)
	case core.EventGameOver, core.EventFinished:
		log.Printf("run ended: %v", e)
	}
}
