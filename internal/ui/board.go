package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"MyWhiteboard/internal/state"
)

// BoardWidget is the drawing surface. Drag positions go straight into the
// stroke tracker and every drawn segment becomes a round-capped line.
type BoardWidget struct {
	widget.BaseWidget
	state   *state.Board
	minSize fyne.Size
	button  desktop.MouseButton // button held since the last MouseDown
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)

func NewBoardWidget(s *state.Board, minSize fyne.Size) *BoardWidget {
	b := &BoardWidget{state: s, minSize: minSize}
	b.ExtendBaseWidget(b)
	return b
}

// Dragged paints only while the primary button is held.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.button != desktop.MouseButtonPrimary {
		return
	}
	if _, drawn := b.state.Paint(state.Point{X: e.Position.X, Y: e.Position.Y}); drawn {
		b.Refresh()
	}
}

func (b *BoardWidget) DragEnd() {
	b.state.Release()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.button = 0
		b.state.Release()
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	b.button = e.Button
}

func (b *BoardWidget) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{
		board:      b,
		background: canvas.NewRectangle(color.White),
		colours:    make(map[string]color.Color),
	}
	r.update()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
	drawn      int // segments already turned into objects
	clears     int
	colours    map[string]color.Color
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.update()
	r.background.Refresh()
	canvas.Refresh(r.board)
}

// update catches the object list up with the board's segments, starting
// over when the board was cleared.
func (r *boardWidgetRenderer) update() {
	s := r.board.state
	r.background.FillColor = r.colour(s.Background)

	if r.objects == nil || s.Clears() != r.clears {
		r.objects = []fyne.CanvasObject{r.background}
		r.drawn = 0
		r.clears = s.Clears()
	}
	for _, seg := range s.SegmentsFrom(r.drawn) {
		r.objects = append(r.objects, r.segmentObjects(seg)...)
	}
	r.drawn = s.SegmentCount()
}

func (r *boardWidgetRenderer) segmentObjects(seg state.Segment) []fyne.CanvasObject {
	c := r.colour(seg.Colour)
	line := canvas.NewLine(c)
	line.StrokeWidth = seg.Width
	line.Position1 = fyne.NewPos(seg.From.X, seg.From.Y)
	line.Position2 = fyne.NewPos(seg.To.X, seg.To.Y)
	if seg.Width <= 1 {
		return []fyne.CanvasObject{line}
	}
	return []fyne.CanvasObject{line, roundCap(c, seg.From, seg.Width), roundCap(c, seg.To, seg.Width)}
}

// roundCap covers a line end with a disc as wide as the line.
func roundCap(c color.Color, p state.Point, width float32) *canvas.Circle {
	dot := canvas.NewCircle(c)
	dot.Resize(fyne.NewSize(width, width))
	dot.Move(fyne.NewPos(p.X-width/2, p.Y-width/2))
	return dot
}

func (r *boardWidgetRenderer) colour(name string) color.Color {
	if c, ok := r.colours[name]; ok {
		return c
	}
	c, err := state.ParseColour(name)
	if err != nil {
		log.Printf("[UI] %v, drawing in black", err)
		c = color.Black
	}
	r.colours[name] = c
	return c
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.minSize
}

func (r *boardWidgetRenderer) Destroy() {}
