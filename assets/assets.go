package assets

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/popeye/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	animationFS embed.FS
)

// Rect is an axis-aligned box in world units, X/Y at the top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Spawn is a feet position.
type Spawn struct {
	X, Y float64
}

type Level struct {
	Name        string
	Platforms   []Rect
	Ladders     []Rect
	PlayerSpawn Spawn
	OliveSpawn  Spawn
	BrutusSpawn Spawn
	Width       int
	Height      int
}

// LoadLevel loads levels/<name>.tmx from the embedded assets.
func LoadLevel(name string) (*Level, error) {
	return LoadLevelFS(assetFS, path.Join("levels", name+".tmx"))
}

// LoadLevelFS reads a Tiled map for object placement and the ASCII layout
// it names in its "layout" property for the platforms.
func LoadLevelFS(fsys fs.FS, levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("loading level %s: %w", levelPath, err)
	}

	level := &Level{
		Name:        levelPath,
		Width:       levelMap.Width * levelMap.TileWidth,
		Height:      levelMap.Height * levelMap.TileHeight,
		PlayerSpawn: Spawn{X: config.Player.StartX, Y: config.Player.StartY},
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ladders":
			for _, o := range og.Objects {
				level.Ladders = append(level.Ladders, Rect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				level.PlayerSpawn = Spawn{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		case "OliveSpawn":
			if len(og.Objects) > 0 {
				level.OliveSpawn = Spawn{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		case "BrutusSpawn":
			if len(og.Objects) > 0 {
				level.BrutusSpawn = Spawn{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		}
	}

	layout := levelMap.Properties.GetString("layout")
	if layout == "" {
		return nil, fmt.Errorf("level %s has no layout property", levelPath)
	}
	f, err := fsys.Open(path.Join(path.Dir(levelPath), layout))
	if err != nil {
		return nil, fmt.Errorf("opening layout for %s: %w", levelPath, err)
	}
	defer f.Close()

	level.Platforms, err = ParseLayout(f)
	if err != nil {
		return nil, fmt.Errorf("parsing layout %s: %w", layout, err)
	}

	return level, nil
}

// ParseLayout turns an ASCII layout into platform rects. Each solid cell
// becomes one rect of config.Level.PlatformHeight at the top of its tile.
func ParseLayout(r io.Reader) ([]Rect, error) {
	solid := config.Level.SolidChar
	empty := config.Level.EmptyChar

	var platforms []Rect
	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		for col, ch := range []rune(line) {
			switch string(ch) {
			case solid:
				platforms = append(platforms, Rect{
					X:      config.Level.OriginX + float64(col)*config.Level.TileWidth,
					Y:      config.Level.OriginY + float64(row)*config.Level.TileHeight,
					Width:  config.Level.TileWidth,
					Height: config.Level.PlatformHeight,
				})
			case empty:
			default:
				return nil, fmt.Errorf("row %d col %d: unknown tile %q", row, col, ch)
			}
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return platforms, nil
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := animationFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image for one frame of a sheet.
func (l *AnimationLoader) GetFrame(sheet config.SheetID, frameIndex int) *ebiten.Image {
	key := fmt.Sprintf("%s/%d", sheet, frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	def, ok := config.Sheets[sheet]
	if !ok {
		panic(fmt.Sprintf("No sheet definition for %s", sheet))
	}

	full := l.MustLoadImage(sheetPath(sheet))
	sx := frameIndex * def.FrameWidth
	frame := full.SubImage(image.Rect(sx, 0, sx+def.FrameWidth, def.FrameHeight)).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

func sheetPath(sheet config.SheetID) string {
	return fmt.Sprintf("images/spritesheets/%s.png", sheet)
}

// CheckSheets verifies every configured sheet is embedded and wide enough
// for its frames, without creating GPU images.
func CheckSheets() error {
	for id, def := range config.Sheets {
		f, err := animationFS.Open(sheetPath(id))
		if err != nil {
			return fmt.Errorf("sprite sheet %s: %w", id, err)
		}
		cfg, _, err := image.DecodeConfig(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("decoding sprite sheet %s: %w", id, err)
		}
		if cfg.Width < def.Frames*def.FrameWidth || cfg.Height < def.FrameHeight {
			return fmt.Errorf("sprite sheet %s is %dx%d, need %dx%d",
				id, cfg.Width, cfg.Height, def.Frames*def.FrameWidth, def.FrameHeight)
		}
	}
	return nil
}

var (
	animationLoader = NewAnimationLoader()
)

func GetFrame(sheet config.SheetID, frameIndex int) *ebiten.Image {
	return animationLoader.GetFrame(sheet, frameIndex)
}

// PreloadAllAnimations slices every frame up front so the first draw of a
// sheet does not stall.
func PreloadAllAnimations() {
	for id, def := range config.Sheets {
		for i := 0; i < def.Frames; i++ {
			_ = GetFrame(id, i)
		}
	}
}
