package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const selectedMarker = "> "

// MainMenuUI is the clickable part of the main menu: one button per option
// and a stats line underneath.
type MainMenuUI struct {
	UI *ebitenui.UI

	OnSelect func(option components.MainMenuOption)

	options    []components.MainMenuOption
	labels     []string
	buttons    []*widget.Button
	statsLabel *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

func NewMainMenuUI(options []components.MainMenuOption, stats string, onSelect func(components.MainMenuOption)) *MainMenuUI {
	ui := &MainMenuUI{
		OnSelect: onSelect,
		options:  options,
	}
	ui.loadFonts()
	ui.buildUI(stats)
	return ui
}

func (ui *MainMenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *MainMenuUI) buildUI(stats string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	for i, option := range ui.options {
		contentContainer.AddChild(ui.buildButton(i, option))
	}

	ui.statsLabel = widget.NewLabel(
		widget.LabelOpts.Text(stats, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	contentContainer.AddChild(ui.statsLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *MainMenuUI) buildButton(index int, option components.MainMenuOption) *widget.Button {
	label := option.String()
	ui.labels = append(ui.labels, label)

	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(cfg.Menu.ButtonIdle),
			Hover:   image.NewNineSliceColor(cfg.Menu.ButtonHover),
			Pressed: image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.TextColor,
			Hover:   cfg.BrightOrange,
			Pressed: cfg.Orange,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnSelect != nil {
				ui.OnSelect(option)
			}
		}),
	)
	ui.buttons = append(ui.buttons, btn)
	return btn
}

// SetSelected marks the keyboard-selected button.
func (ui *MainMenuUI) SetSelected(index int) {
	for i, btn := range ui.buttons {
		label := ui.labels[i]
		if i == index {
			label = selectedMarker + label
		}
		if t := btn.Text(); t != nil && t.Label != label {
			t.Label = label
		}
	}
}
