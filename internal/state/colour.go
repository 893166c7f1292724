package state

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var ErrUnknownColour = errors.New("unknown colour")

// ParseColour resolves a colour the way the menus and the colour picker
// produce them: a case-insensitive name ("blue", "White") or "#rgb"/"#rrggbb".
func ParseColour(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		c, err := parseHex(name[1:])
		if err != nil {
			return nil, fmt.Errorf("parse colour %q: %w", s, err)
		}
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("parse colour %q: %w", s, ErrUnknownColour)
}

func parseHex(h string) (color.Color, error) {
	if len(h) != 3 && len(h) != 6 {
		return nil, ErrUnknownColour
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, ErrUnknownColour
	}
	if len(h) == 3 {
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return color.NRGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}, nil
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// HexColour formats c as "#rrggbb", dropping alpha.
func HexColour(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
