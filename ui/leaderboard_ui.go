package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MaxNameLength caps leaderboard names.
const MaxNameLength = 8

// NameEntryUI asks for a name after a run that made the leaderboard.
type NameEntryUI struct {
	UI *ebitenui.UI

	OnSubmit func(name string)
	OnSkip   func()

	nameInput *widget.TextInput

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewNameEntryUI builds the form. summary is shown under the title.
func NewNameEntryUI(summary string, onSubmit func(name string), onSkip func()) (*NameEntryUI, error) {
	ui := &NameEntryUI{
		OnSubmit: onSubmit,
		OnSkip:   onSkip,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI(summary)
	return ui, nil
}

func (ui *NameEntryUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load UI font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 9}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 7}
	return nil
}

func (ui *NameEntryUI) buildUI(summary string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("NEW RECORD", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 220, 80, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(summary, &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	contentContainer.AddChild(ui.buildNameRow())
	contentContainer.AddChild(ui.buildButtons())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
	ui.nameInput.Focus(true)
}

func (ui *NameEntryUI) buildNameRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Name:", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	ui.nameInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 16)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("anon"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(3)),
	)
	row.AddChild(ui.nameInput)

	return row
}

func (ui *NameEntryUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	saveButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(60, 18)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text("Save", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.Submit()
		}),
	)
	container.AddChild(saveButton)

	skipButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(60, 18)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Skip", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnSkip != nil {
				ui.OnSkip()
			}
		}),
	)
	container.AddChild(skipButton)

	return container
}

// Submit hands the typed name to OnSubmit.
func (ui *NameEntryUI) Submit() {
	if ui.OnSubmit != nil {
		ui.OnSubmit(CleanName(ui.nameInput.GetText()))
	}
}

// CleanName trims a typed name and caps its length.
func CleanName(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > MaxNameLength {
		s = string(r[:MaxNameLength])
	}
	return s
}

func (ui *NameEntryUI) Update() {
	ui.UI.Update()
}
