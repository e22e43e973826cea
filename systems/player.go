package systems

import (
	"github.com/automoto/popeye/components"
	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := cfg.TickDuration()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updatePlayer(e, input, dt)
	})
}

func updatePlayer(e *donburi.Entry, input *components.InputData, dt float64) {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	anim := components.Animation.Get(e)
	obj := components.Object.Get(e)

	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed
	up := GetAction(input, cfg.ActionMoveUp).Pressed
	down := GetAction(input, cfg.ActionMoveDown).Pressed
	vertical := up || down

	onLadder := touches(obj.Object, 0, tags.ResolvLadder)
	onFloor := touches(obj.Object, 1, tags.ResolvPlatform)

	x, y := obj.Feet()

	// The screen wraps horizontally
	width := float64(cfg.C.Width)
	if x < 0 {
		x = width
	} else if x > width {
		x = 0
	}

	switch {
	case onLadder && vertical:
		if !player.IsClimbing {
			player.IsClimbing = true
			physics.DisableBody()
		}
	case onFloor && !vertical && player.IsClimbing:
		player.IsClimbing = false
		physics.EnableBody()
	case !onLadder && player.IsClimbing:
		player.IsClimbing = false
		physics.EnableBody()
	}

	walkClip := cfg.Sheets[cfg.PlayerWalk].Clip
	if left {
		x -= cfg.Player.WalkSpeed * dt
		anim.FlipX = true
		if !player.IsClimbing && !anim.Playing(walkClip) {
			anim.SetSheet(cfg.PlayerWalk)
			anim.Play()
		}
	} else if right {
		x += cfg.Player.WalkSpeed * dt
		anim.FlipX = false
		if !player.IsClimbing && !anim.Playing(walkClip) {
			anim.SetSheet(cfg.PlayerWalk)
			anim.Play()
		}
	}

	if player.IsClimbing {
		if anim.Sheet != cfg.PlayerClimb {
			anim.SetSheet(cfg.PlayerClimb)
		}
		climbClip := cfg.Sheets[cfg.PlayerClimb].Clip
		switch {
		case up:
			y -= cfg.Player.ClimbSpeed
			if !anim.Playing(climbClip) {
				anim.Play()
			}
		case down:
			y += cfg.Player.ClimbSpeed
			if !anim.Playing(climbClip) {
				anim.Play()
			}
		default:
			anim.Stop()
		}
	} else if !left && !right {
		anim.Stop()
		anim.SetFrame(0)
	}

	if y > cfg.Player.FallOutY {
		x, y = player.StartX, player.StartY
	}

	obj.SetFeet(x, y)
}
