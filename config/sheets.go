package config

// SheetID identifies a sprite sheet and the single clip it carries.
type SheetID int

const (
	SheetNone SheetID = iota
	PlayerWalk
	PlayerClimb
	OliveWalk
	BrutusWalk
	HeartBeat
	SpinachFlash
)

var sheetNames = map[SheetID]string{
	SheetNone:    "none",
	PlayerWalk:   "popeye-walk",
	PlayerClimb:  "popeye-climb",
	OliveWalk:    "olive-walk",
	BrutusWalk:   "brutus",
	HeartBeat:    "heart",
	SpinachFlash: "spinach",
}

// String returns the sheet's file stem under assets/images/spritesheets.
func (s SheetID) String() string {
	if name, ok := sheetNames[s]; ok {
		return name
	}
	return "unknown"
}

// Anchor selects which point of the collision box a sprite is pinned to.
type Anchor int

const (
	AnchorFeet Anchor = iota
	AnchorCenter
)

// SheetDef describes how a sheet is sliced and how fast its clip runs.
type SheetDef struct {
	Frames      int
	FrameWidth  int
	FrameHeight int
	Clip        string
	First       int
	Last        int
	FPS         float64
	Anchor      Anchor
}

// Sheets holds the slicing for every sprite sheet in the game.
var Sheets = map[SheetID]SheetDef{
	PlayerWalk:   {Frames: 5, FrameWidth: 24, FrameHeight: 24, Clip: "walk", First: 0, Last: 4, FPS: 12},
	PlayerClimb:  {Frames: 2, FrameWidth: 24, FrameHeight: 24, Clip: "climb", First: 0, Last: 1, FPS: 10},
	OliveWalk:    {Frames: 5, FrameWidth: 24, FrameHeight: 40, Clip: "walk", First: 0, Last: 4, FPS: 8},
	BrutusWalk:   {Frames: 5, FrameWidth: 32, FrameHeight: 44, Clip: "walk", First: 0, Last: 4, FPS: 10},
	HeartBeat:    {Frames: 5, FrameWidth: 16, FrameHeight: 16, Clip: "beat", First: 0, Last: 4, FPS: 10, Anchor: AnchorCenter},
	SpinachFlash: {Frames: 2, FrameWidth: 16, FrameHeight: 16, Clip: "flash", First: 0, Last: 1, FPS: 4, Anchor: AnchorCenter},
}

// TicksPerFrame converts a clip's frames-per-second into update ticks per frame.
func (d SheetDef) TicksPerFrame() float32 {
	if d.FPS <= 0 {
		return 0
	}
	return float32(float64(C.TPS)/d.FPS) - 1
}
