package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"MyWhiteboard/internal/state"
)

// presetColours are the swatches of the Colour menu, in menu order.
var presetColours = []string{"white", "blue", "red", "black"}

const swatchSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="32" height="16">` +
	`<rect x="0.5" y="0.5" width="31" height="15" fill="%s" stroke="#969696"/></svg>`

// swatchIcon renders a colour as a small bordered rectangle for menu items.
// Unknown colours produce no icon.
func swatchIcon(colour string) fyne.Resource {
	c, err := state.ParseColour(colour)
	if err != nil {
		return nil
	}
	return fyne.NewStaticResource("swatch-"+colour+".svg",
		[]byte(fmt.Sprintf(swatchSVG, state.HexColour(c))))
}

// newWidthSlider builds the line width control. Its value feeds every
// segment drawn after it changes.
func newWidthSlider(lo, hi float64, board *state.Board) *widget.Slider {
	s := widget.NewSlider(lo, hi)
	s.Step = 1
	s.SetValue(float64(board.Width))
	s.OnChanged = func(v float64) {
		board.SetWidth(float32(v))
	}
	return s
}

func newToolbar(slider *widget.Slider) fyne.CanvasObject {
	return container.NewBorder(nil, nil, widget.NewLabel("Size:"), nil, slider)
}
