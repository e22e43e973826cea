package systems

import (
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collisionTags are the things the player can run into.
var collisionTags = []string{tags.ResolvHeart, tags.ResolvSpinach, tags.ResolvEnemy}

// UpdateCollisions applies pickup and enemy effects to the player. An effect
// fires once when contact begins; staying in contact does nothing more.
func UpdateCollisions(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	contacts := getContacts(ecs)

	current := make(map[components.ContactPair]bool, len(contacts.Touching))
	var started []*donburi.Entry
	for _, tag := range collisionTags {
		for _, o := range overlapping(obj.Object, 0, tag) {
			other, ok := o.Data.(*donburi.Entry)
			if !ok || !other.Valid() {
				continue
			}
			pair := components.NewContactPair(playerEntry.Entity(), other.Entity())
			current[pair] = true
			if !contacts.Touching[pair] {
				started = append(started, other)
			}
		}
	}
	contacts.Touching = current

	for _, other := range started {
		if GetGameState(ecs).Over {
			break
		}
		if !other.Valid() {
			continue
		}
		switch {
		case other.HasComponent(tags.Heart):
			collectHeart(ecs, other)
		case other.HasComponent(tags.Spinach):
			collectSpinach(ecs, playerEntry, other)
		case other.HasComponent(tags.Enemy):
			hitEnemy(ecs, playerEntry, other)
		}
	}

	// Pickups are gone now; forget them so a recycled entity starts fresh.
	for pair := range contacts.Touching {
		if !ecs.World.Valid(pair.A) || !ecs.World.Valid(pair.B) {
			delete(contacts.Touching, pair)
		}
	}
}

func collectHeart(ecs *ecs.ECS, heart *donburi.Entry) {
	destroyEntity(ecs, heart)
	state := GetGameState(ecs)
	state.Score += cfg.Pickup.HeartScore
	log.Debug("heart collected", "score", state.Score)
}

func collectSpinach(ecs *ecs.ECS, player, spinach *donburi.Entry) {
	destroyEntity(ecs, spinach)

	state := GetGameState(ecs)
	state.IsPoweredUp = true
	state.PowerGeneration++
	generation := state.PowerGeneration
	setTint(player, cfg.Player.PowerTint.R, cfg.Player.PowerTint.G, cfg.Player.PowerTint.B)
	log.Debug("powered up", "generation", generation)

	// Only the most recent pickup's timer may end the power-up.
	GetClock(ecs).After(cfg.Pickup.PowerDuration, func() {
		state := GetGameState(ecs)
		if state.PowerGeneration != generation {
			return
		}
		state.IsPoweredUp = false
		if player.Valid() {
			components.Tint.Get(player).Reset()
		}
		log.Debug("power-up expired", "generation", generation)
	})
}

func hitEnemy(ecs *ecs.ECS, player, enemyEntry *donburi.Entry) {
	enemy := components.Enemy.Get(enemyEntry)
	if enemy.IsDead {
		return
	}
	state := GetGameState(ecs)

	if state.IsPoweredUp {
		enemy.IsDead = true
		components.Physics.Get(enemyEntry).DisableBody()
		components.Object.Get(enemyEntry).SetFeet(cfg.Enemy.ParkX, cfg.Enemy.ParkY)
		state.Score += cfg.Enemy.DefeatScore
		TriggerScreenShake(ecs, cfg.ScreenShake.DefeatIntensity, cfg.ScreenShake.DefeatDuration)
		log.Debug("enemy defeated", "score", state.Score)

		GetClock(ecs).After(cfg.Enemy.RespawnDelay, func() {
			if !enemyEntry.Valid() {
				return
			}
			enemy := components.Enemy.Get(enemyEntry)
			enemy.IsDead = false
			components.Object.Get(enemyEntry).SetFeet(enemy.HomeX, enemy.HomeY)
			components.Physics.Get(enemyEntry).EnableBody()
			log.Debug("enemy respawned")
		})
		return
	}

	state.Lives--
	p := components.Player.Get(player)
	components.Object.Get(player).SetFeet(p.StartX, p.StartY)
	TriggerScreenShake(ecs, cfg.ScreenShake.LifeLostIntensity, cfg.ScreenShake.LifeLostDuration)
	log.Debug("life lost", "lives", state.Lives)

	if state.Lives <= 0 {
		state.Over = true
		log.Info("game over", "score", state.Score)
	}
}

func setTint(e *donburi.Entry, r, g, b uint8) {
	tint := components.Tint.Get(e)
	tint.R = float32(r) / 255
	tint.G = float32(g) / 255
	tint.B = float32(b) / 255
}
