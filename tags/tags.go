package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Olive    = donburi.NewTag().SetName("Olive")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Heart    = donburi.NewTag().SetName("Heart")
	Spinach  = donburi.NewTag().SetName("Spinach")
	Ladder   = donburi.NewTag().SetName("Ladder")
	Platform = donburi.NewTag().SetName("Platform")
)

// Resolv tags for collision queries
const (
	ResolvPlatform = "platform"
	ResolvLadder   = "ladder"
	ResolvPlayer   = "Player"
	ResolvOlive    = "Olive"
	ResolvEnemy    = "Enemy"
	ResolvHeart    = "heart"
	ResolvSpinach  = "spinach"
)
