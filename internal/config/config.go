package config

import (
	"errors"
	"fmt"
)

const (
	DefaultOwner        = "Rakib"
	DefaultCanvasWidth  = 1040
	DefaultCanvasHeight = 2160
	DefaultMinWidth     = 500
	DefaultMinHeight    = 500
)

// Config holds the values the window and board are built from at startup.
type Config struct {
	Owner        string  // Used in window titles, e.g. "Rakib's board"
	CanvasWidth  float32 // Initial window width
	CanvasHeight float32 // Initial window height
	MinWidth     float32 // Size floor reported by the canvas
	MinHeight    float32
	WidthMin     float64 // Line width slider range
	WidthMax     float64
	Colour       string // Starting stroke colour
	EraserColour string
	Background   string
}

func Default() Config {
	return Config{
		Owner:        DefaultOwner,
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
		MinWidth:     DefaultMinWidth,
		MinHeight:    DefaultMinHeight,
		WidthMin:     1,
		WidthMax:     25,
		Colour:       "blue",
		EraserColour: "White",
		Background:   "White",
	}
}

// Validate reports the first setting that would leave the window unusable.
func (c Config) Validate() error {
	if c.MinWidth <= 0 || c.MinHeight <= 0 {
		return fmt.Errorf("minimum size %vx%v must be positive", c.MinWidth, c.MinHeight)
	}
	if c.CanvasWidth < c.MinWidth || c.CanvasHeight < c.MinHeight {
		return fmt.Errorf("canvas %vx%v is smaller than minimum %vx%v",
			c.CanvasWidth, c.CanvasHeight, c.MinWidth, c.MinHeight)
	}
	if c.WidthMin <= 0 || c.WidthMax < c.WidthMin {
		return fmt.Errorf("invalid line width range %v..%v", c.WidthMin, c.WidthMax)
	}
	if c.Colour == "" || c.EraserColour == "" || c.Background == "" {
		return errors.New("colours must not be empty")
	}
	return nil
}
