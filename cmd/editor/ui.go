package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/platformer/obj"
)

// ToolBar is a row of toggle buttons where exactly one is active.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
}

func (t *ToolBar) SetActive(i int) {
	if t == nil || i < 0 || i >= len(t.buttons) {
		return
	}
	t.group.SetActive(t.buttons[i])
}

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(color.RGBA{40, 40, 40, 255}),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:   solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed: solidNineSlice(color.RGBA{120, 140, 200, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.Black,
			},
		},
	}
}

var buttonTextColor = &widget.ButtonTextColor{
	Idle:     color.Black,
	Hover:    color.Black,
	Pressed:  color.RGBA{0, 0, 200, 255},
	Disabled: color.Gray{Y: 128},
}

// buildRadioRow lays out one toggle button per label and reports the
// selected index through onSelected.
func buildRadioRow(theme *widget.Theme, fontFace *text.Face, dir widget.Direction, labels []string, minW int, onSelected func(int)) (*widget.Container, *ToolBar) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(dir),
				widget.RowLayoutOpts.Spacing(2),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 2, Bottom: 2, Left: 2, Right: 2}),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	bar := &ToolBar{}
	for _, label := range labels {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(minW, toolbarHeight-4),
			),
		)
		bar.buttons = append(bar.buttons, btn)
		row.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(bar.buttons))
	for _, b := range bar.buttons {
		elements = append(elements, b)
	}
	bar.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for idx, b := range bar.buttons {
				if args.Active == b {
					onSelected(idx)
					return
				}
			}
		}),
	)
	return row, bar
}

func actionButton(fontFace *text.Face, theme *widget.Theme, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, fontFace, buttonTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(40, toolbarHeight-4)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// initUI builds the tool row along the top and the entity palette down the
// left edge.
func (e *Editor) initUI() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	var fontFace text.Face = &text.GoTextFace{Source: src, Size: 11}

	ui := &ebitenui.UI{PrimaryTheme: newEditorTheme(&fontFace)}
	theme := ui.PrimaryTheme

	toolLabels := make([]string, len(Tools))
	for i, t := range Tools {
		toolLabels[i] = t.String()
	}
	tools, toolBar := buildRadioRow(theme, &fontFace, widget.DirectionHorizontal, toolLabels, 44, func(i int) {
		if e.ui != nil {
			e.tool = Tools[i]
		}
	})
	tools.AddChild(actionButton(&fontFace, theme, "Undo", func() { e.Undo() }))
	tools.AddChild(actionButton(&fontFace, theme, "Save", e.saveWithStatus))
	tools.AddChild(actionButton(&fontFace, theme, "Play", e.playWithStatus))

	itemLabels := make([]string, len(obj.Palette))
	for i, it := range obj.Palette {
		itemLabels[i] = it.Label
	}
	palette, paletteBar := buildRadioRow(theme, &fontFace, widget.DirectionVertical, itemLabels, paletteWidth-4, func(i int) {
		if e.ui == nil {
			return
		}
		e.item = i
		e.SetTool(ToolEntity)
	})

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	tools.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchHorizontal:  true,
	}
	palette.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}
	root.AddChild(tools)
	root.AddChild(palette)
	ui.Container = root

	toolBar.SetActive(int(e.tool))
	paletteBar.SetActive(e.item)
	e.toolbar = toolBar
	e.palette = paletteBar
	e.ui = ui
	return nil
}

func (e *Editor) saveWithStatus() {
	if err := e.Save(); err != nil {
		e.setStatus("save failed: %v", err)
	}
}

func (e *Editor) playWithStatus() {
	if err := e.StartPlay(); err != nil {
		e.setStatus("%v", err)
	}
}
