package state

import (
	"log"

	"github.com/google/uuid"

	"MyWhiteboard/internal/config"
)

// Colour the eraser falls back to when it is switched off. The colour
// chosen before the eraser was enabled is not restored.
const EraserOffColour = "black"

// Board is the whole mutable state of the application. It is owned by the
// UI and only touched from fyne's event callbacks, so it holds no locks.
type Board struct {
	Colour       string
	EraserMode   bool
	EraserColour string
	Width        float32
	Background   string
	Title        string

	last     *Point
	strokeID string
	strokeN  int // segments drawn in the current stroke
	segments []Segment
	clears   int
}

func NewBoard(cfg config.Config) *Board {
	return &Board{
		Colour:       cfg.Colour,
		EraserColour: cfg.EraserColour,
		Width:        float32(cfg.WidthMin),
		Background:   cfg.Background,
		Title:        cfg.Owner + "'s board",
		segments:     make([]Segment, 0),
	}
}

// Paint handles one drag position. It returns the segment drawn from the
// previous position, or false when there was none to draw from.
func (b *Board) Paint(p Point) (Segment, bool) {
	if b.last == nil {
		b.last = &p
		b.strokeID = uuid.NewString()
		return Segment{}, false
	}
	colour := b.Colour
	if b.EraserMode {
		colour = b.EraserColour
	}
	seg := Segment{
		StrokeID: b.strokeID,
		From:     *b.last,
		To:       p,
		Colour:   colour,
		Width:    b.Width,
	}
	b.segments = append(b.segments, seg)
	b.strokeN++
	b.last = &p
	return seg, true
}

// Release ends the current stroke. The next Paint only records a position.
// Releasing with no stroke in progress does nothing.
func (b *Board) Release() {
	if b.strokeID != "" {
		log.Printf("[BOARD] Stroke %s ended, %d segments", b.strokeID, b.strokeN)
	}
	b.last = nil
	b.strokeID = ""
	b.strokeN = 0
}

func (b *Board) Drawing() bool {
	return b.last != nil
}

func (b *Board) SelectColour(c string) {
	b.Colour = c
}

// SetCustomColour applies the result of the colour picker. A cancelled
// dialog (ok false) or an empty value keeps the current colour.
func (b *Board) SetCustomColour(hex string, ok bool) {
	if !ok || hex == "" {
		return
	}
	log.Printf("[BOARD] Custom colour picked: %s", hex)
	b.Colour = hex
}

// ToggleEraser flips eraser mode and returns the new setting.
func (b *Board) ToggleEraser() bool {
	b.EraserMode = !b.EraserMode
	if b.EraserMode {
		b.Colour = b.EraserColour
	} else {
		b.Colour = EraserOffColour
	}
	log.Printf("[BOARD] Eraser on: %v, colour now %s", b.EraserMode, b.Colour)
	return b.EraserMode
}

func (b *Board) SetWidth(w float32) {
	b.Width = w
}

func (b *Board) ApplyTheme(t Theme) {
	b.Background = t.Background
	b.Title = t.Title
	log.Printf("[BOARD] Theme %q applied", t.Name)
}

// Clear removes every segment. Background, title and the stroke tracker
// are kept.
func (b *Board) Clear() {
	log.Printf("[BOARD] Clearing %d segments", len(b.segments))
	b.segments = make([]Segment, 0)
	b.clears++
}

// Clears counts calls to Clear, letting renderers notice that segments
// they already drew are gone.
func (b *Board) Clears() int {
	return b.clears
}

// Segments returns the drawn segments in draw order.
func (b *Board) Segments() []Segment {
	out := make([]Segment, len(b.segments))
	copy(out, b.segments)
	return out
}

// SegmentsFrom returns the segments drawn after the first i.
func (b *Board) SegmentsFrom(i int) []Segment {
	if i >= len(b.segments) {
		return nil
	}
	out := make([]Segment, len(b.segments)-i)
	copy(out, b.segments[i:])
	return out
}

func (b *Board) SegmentCount() int {
	return len(b.segments)
}

// Strokes counts the distinct strokes that produced at least one segment.
func (b *Board) Strokes() int {
	seen := make(map[string]bool)
	for _, s := range b.segments {
		seen[s.StrokeID] = true
	}
	return len(seen)
}
