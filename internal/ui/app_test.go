package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MyWhiteboard/internal/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)

	a := NewApp(w, config.Default())
	a.SetupMenus()
	w.SetContent(a.Build())
	return a
}

func press(b *BoardWidget, button desktop.MouseButton) {
	b.MouseDown(&desktop.MouseEvent{Button: button})
}

func drag(b *BoardWidget, x, y float32) {
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}})
}

func menuItem(t *testing.T, a *App, menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, m := range a.mainMenu.Items {
		if m.Label != menu {
			continue
		}
		for _, it := range m.Items {
			if it.Label == label {
				return it
			}
		}
	}
	require.Failf(t, "menu item not found", "%s > %s", menu, label)
	return nil
}

func TestMenuLayout(t *testing.T) {
	a := newTestApp(t)
	require.Len(t, a.mainMenu.Items, 3)
	assert.Equal(t, "Colour", a.mainMenu.Items[0].Label)
	assert.Equal(t, "Theme", a.mainMenu.Items[1].Label)
	assert.Equal(t, "Erase", a.mainMenu.Items[2].Label)

	colours := a.mainMenu.Items[0].Items
	require.Len(t, colours, 5)
	for i, c := range presetColours {
		assert.Equal(t, c, colours[i].Label)
		assert.NotNil(t, colours[i].Icon)
	}
	assert.Equal(t, "Other", colours[4].Label)
	assert.Len(t, a.mainMenu.Items[1].Items, 1, "only the light theme is offered")
}

func TestInitialWindow(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, "Rakib's board", a.window.Title())
	floor := a.window.Content().MinSize()
	assert.InDelta(t, 500, floor.Width, 0.01)
	assert.InDelta(t, 500, floor.Height, 0.01, "slider row counts towards the floor")
	assert.Less(t, a.board.MinSize().Height, float32(500))
	assert.Equal(t, desktop.CrosshairCursor, a.board.Cursor())
	assert.Equal(t, float64(1), a.slider.Value)
}

func TestPresetColourMenu(t *testing.T) {
	a := newTestApp(t)
	menuItem(t, a, "Colour", "red").Action()
	assert.Equal(t, "red", a.state.Colour)
	assert.False(t, a.state.EraserMode)
}

func TestDragDrawsFromSecondMove(t *testing.T) {
	a := newTestApp(t)
	r := test.WidgetRenderer(a.board)

	press(a.board, desktop.MouseButtonPrimary)
	drag(a.board, 10, 10)
	assert.Zero(t, a.state.SegmentCount())
	assert.Len(t, r.Objects(), 1)

	drag(a.board, 20, 20)
	assert.Equal(t, 1, a.state.SegmentCount())
	assert.Len(t, r.Objects(), 2, "background and one line")

	a.board.MouseUp(&desktop.MouseEvent{Button: desktop.MouseButtonPrimary})
	press(a.board, desktop.MouseButtonPrimary)
	drag(a.board, 30, 30)
	assert.Equal(t, 1, a.state.SegmentCount())
}

func TestWideSegmentsGetRoundCaps(t *testing.T) {
	a := newTestApp(t)
	r := test.WidgetRenderer(a.board)

	a.slider.SetValue(8)
	assert.Equal(t, float32(8), a.state.Width)

	press(a.board, desktop.MouseButtonPrimary)
	drag(a.board, 10, 10)
	drag(a.board, 40, 10)
	assert.Len(t, r.Objects(), 4, "background, line and two caps")
	a.board.DragEnd()
	assert.False(t, a.state.Drawing())
}

func TestClearCanvas(t *testing.T) {
	a := newTestApp(t)
	r := test.WidgetRenderer(a.board)
	press(a.board, desktop.MouseButtonPrimary)
	drag(a.board, 1, 1)
	drag(a.board, 2, 2)
	a.board.DragEnd()
	size := a.window.Canvas().Size()

	menuItem(t, a, "Erase", "Clear canvas").Action()
	assert.Zero(t, a.state.SegmentCount())
	assert.Len(t, r.Objects(), 1)
	assert.Equal(t, "White", a.state.Background)
	assert.Equal(t, size, a.window.Canvas().Size())
}

func TestEraserMenuItem(t *testing.T) {
	a := newTestApp(t)
	item := menuItem(t, a, "Erase", "Eraser")
	menuItem(t, a, "Colour", "red").Action()

	item.Action()
	assert.True(t, item.Checked)
	assert.Equal(t, "White", a.state.Colour)

	item.Action()
	assert.False(t, item.Checked)
	assert.Equal(t, "black", a.state.Colour)
}

func TestLightThemeMenu(t *testing.T) {
	a := newTestApp(t)
	menuItem(t, a, "Theme", "Light").Action()
	assert.Equal(t, "Rakib's Whiteboard", a.window.Title())
	assert.Equal(t, "white", a.state.Background)
}

func TestCustomColour(t *testing.T) {
	a := newTestApp(t)

	a.pickColour = func(func(color.Color)) {}
	menuItem(t, a, "Colour", "Other").Action()
	assert.Equal(t, "blue", a.state.Colour, "cancelled picker keeps the colour")

	a.pickColour = func(onPicked func(color.Color)) {
		onPicked(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})
	}
	menuItem(t, a, "Colour", "Other").Action()
	assert.Equal(t, "#123456", a.state.Colour)
}

func TestRedStrokeThenEraserStroke(t *testing.T) {
	a := newTestApp(t)
	menuItem(t, a, "Colour", "red").Action()
	press(a.board, desktop.MouseButtonPrimary)
	drag(a.board, 0, 0)
	drag(a.board, 5, 5)
	a.board.DragEnd()
	menuItem(t, a, "Erase", "Eraser").Action()
	press(a.board, desktop.MouseButtonPrimary)
	drag(a.board, 5, 5)
	drag(a.board, 6, 6)

	segs := a.state.Segments()
	require.Len(t, segs, 2)
	assert.Equal(t, "red", segs[0].Colour)
	assert.Equal(t, "White", segs[1].Colour)
}

func TestUnknownColourRendersBlack(t *testing.T) {
	a := newTestApp(t)
	a.state.SelectColour("no-such-colour")
	press(a.board, desktop.MouseButtonPrimary)
	drag(a.board, 1, 1)
	drag(a.board, 2, 2)

	objs := test.WidgetRenderer(a.board).Objects()
	require.Len(t, objs, 2)
	line, ok := objs[1].(*canvas.Line)
	require.True(t, ok)
	assert.Equal(t, color.Black, line.StrokeColor)
}

func TestOnlyPrimaryButtonPaints(t *testing.T) {
	a := newTestApp(t)

	press(a.board, desktop.MouseButtonTertiary)
	drag(a.board, 1, 1)
	drag(a.board, 2, 2)
	a.board.DragEnd()
	assert.Zero(t, a.state.SegmentCount())
	assert.False(t, a.state.Drawing())

	press(a.board, desktop.MouseButtonPrimary)
	drag(a.board, 1, 1)
	drag(a.board, 2, 2)
	assert.Equal(t, 1, a.state.SegmentCount())
}
