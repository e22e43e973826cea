package ui

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/popeye/config"
	"github.com/automoto/popeye/fonts"
	"github.com/automoto/popeye/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameOverUI holds the ebitenui panel shown after the last life is lost
type GameOverUI struct {
	UI *ebitenui.UI

	titleFace text.Face
	textFace  text.Face
	hintFace  text.Face
}

// NewGameOverUI builds the panel for a finished run.
func NewGameOverUI(finalScore int) (*GameOverUI, error) {
	gui := &GameOverUI{}
	if err := gui.loadFonts(); err != nil {
		return nil, err
	}
	gui.buildUI(finalScore)
	return gui, nil
}

func (gui *GameOverUI) loadFonts() error {
	var err error
	if gui.titleFace, err = fonts.Face(cfg.GameOver.TitleSize); err != nil {
		return fmt.Errorf("game over title font: %w", err)
	}
	if gui.textFace, err = fonts.Face(cfg.GameOver.TextSize); err != nil {
		return fmt.Errorf("game over text font: %w", err)
	}
	if gui.hintFace, err = fonts.Face(cfg.GameOver.TextSize / 2); err != nil {
		return fmt.Errorf("game over hint font: %w", err)
	}
	return nil
}

func (gui *GameOverUI) buildUI(finalScore int) {
	// Transparent root so the scene's background shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{25, 25, 40, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(24)),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(centeredLabel(cfg.GameOver.Title, &gui.titleFace, cfg.GameOver.TitleColor))
	contentContainer.AddChild(centeredLabel(systems.FinalScoreText(finalScore), &gui.textFace, cfg.GameOver.TextColor))
	contentContainer.AddChild(centeredLabel(cfg.GameOver.Hint, &gui.hintFace, cfg.GameOver.HintColor))

	rootContainer.AddChild(contentContainer)

	gui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func centeredLabel(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		),
	)
}
