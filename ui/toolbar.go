package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// Toolbar holds the ebitenui overlay with the theme toggle
type Toolbar struct {
	UI *ebitenui.UI

	// OnToggleTheme flips the theme and returns whether the page is now dark
	OnToggleTheme func() bool

	themeButton *widget.Button
	face        text.Face
}

// NewToolbar builds the toolbar. dark is the theme the page starts in.
func NewToolbar(dark bool, onToggleTheme func() bool) (*Toolbar, error) {
	tb := &Toolbar{OnToggleTheme: onToggleTheme}

	if err := tb.loadFonts(); err != nil {
		return nil, err
	}
	tb.buildUI(dark)

	return tb, nil
}

func (tb *Toolbar) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return err
	}
	tb.face = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	return nil
}

func (tb *Toolbar) buildUI(dark bool) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(16)),
		)),
	)

	tb.themeButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(96, 32),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(themeLabel(dark), &tb.face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if tb.OnToggleTheme == nil {
				return
			}
			tb.SetDark(tb.OnToggleTheme())
		}),
	)
	rootContainer.AddChild(tb.themeButton)

	tb.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetDark updates the button label for the given theme.
func (tb *Toolbar) SetDark(dark bool) {
	if textWidget := tb.themeButton.Text(); textWidget != nil {
		textWidget.Label = themeLabel(dark)
	}
}

// Update calls the UI's Update method
func (tb *Toolbar) Update() {
	tb.UI.Update()
}

func themeLabel(dark bool) string {
	if dark {
		return "Light mode"
	}
	return "Dark mode"
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 220})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 240})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}
