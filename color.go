package kanvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
)

type colorKind uint8

const (
	colorRGB colorKind = iota
	colorName
	colorHex
)

// Color is a color input: a symbolic name, an explicit RGB triple or a hex
// string. The zero value is black.
//
// A Color is validated when it is resolved, so constructing one never fails.
// Canvas and shape constructors resolve their colors eagerly and return
// ErrInvalidColorName or ErrInvalidColorValue before any pixel is written.
type Color struct {
	kind    colorKind
	name    string
	r, g, b int
}

// Named colors. These are the only names accepted by Named and ParseColor.
var (
	Red    = Named("red")
	Green  = Named("green")
	Yellow = Named("yellow")
	Blue   = Named("blue")
	Brown  = Named("brown")
	Black  = Named("black")
	White  = Named("white")
	Pink   = Named("pink")
	Orange = Named("orange")
	Purple = Named("purple")
	Gray   = Named("gray")
)

var colorTable = map[string]color.RGBA{
	"red":    {255, 0, 0, 255},
	"green":  {0, 255, 0, 255},
	"yellow": {255, 255, 0, 255},
	"blue":   {0, 0, 255, 255},
	"brown":  {165, 42, 42, 255},
	"black":  {0, 0, 0, 255},
	"white":  {255, 255, 255, 255},
	"pink":   {255, 192, 203, 255},
	"orange": {255, 165, 0, 255},
	"purple": {128, 0, 128, 255},
	"gray":   {128, 128, 128, 255},
}

// ColorNames returns the accepted color names in table order.
func ColorNames() []string {
	return []string{"red", "green", "yellow", "blue", "brown", "black", "white", "pink", "orange", "purple", "gray"}
}

// Named creates a color from a name in the fixed table. Names are matched
// case-insensitively.
func Named(name string) Color {
	return Color{kind: colorName, name: name}
}

// RGB creates a color from an explicit triple. Channels must lie in [0, 255].
func RGB(r, g, b int) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// Hex creates a color from a "#rrggbb" string.
func Hex(s string) Color {
	return Color{kind: colorHex, name: s}
}

// FromRGBA converts a resolved color back into a Color input.
func FromRGBA(c color.RGBA) Color {
	return RGB(int(c.R), int(c.G), int(c.B))
}

// ParseColor parses a color name, a "#rrggbb" hex string or a comma
// separated "r,g,b" triple. The returned color has already been validated.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	var c Color
	switch {
	case strings.HasPrefix(s, "#"):
		c = Hex(s)
	case strings.Contains(s, ","):
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return Color{}, &ColorError{Input: s, Err: ErrInvalidColorValue}
		}
		var ch [3]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return Color{}, &ColorError{Input: s, Err: ErrInvalidColorValue}
			}
			ch[i] = v
		}
		c = RGB(ch[0], ch[1], ch[2])
	default:
		c = Named(s)
	}
	if _, err := c.Resolve(); err != nil {
		return Color{}, err
	}
	return c, nil
}

// Resolve returns the opaque RGBA value for c.
func (c Color) Resolve() (color.RGBA, error) {
	switch c.kind {
	case colorName:
		rgba, ok := colorTable[cases.Fold().String(c.name)]
		if !ok {
			return color.RGBA{}, &ColorError{Input: c.name, Err: ErrInvalidColorName}
		}
		return rgba, nil
	case colorHex:
		cf, err := colorful.Hex(c.name)
		if err != nil {
			return color.RGBA{}, &ColorError{Input: c.name, Err: ErrInvalidColorValue}
		}
		r, g, b := cf.RGB255()
		return color.RGBA{r, g, b, 255}, nil
	default:
		if !inByteRange(c.r) || !inByteRange(c.g) || !inByteRange(c.b) {
			return color.RGBA{}, &ColorError{
				Input: fmt.Sprintf("(%d, %d, %d)", c.r, c.g, c.b),
				Err:   ErrInvalidColorValue,
			}
		}
		return color.RGBA{uint8(c.r), uint8(c.g), uint8(c.b), 255}, nil
	}
}

// String returns the name for named colors and the hex form otherwise.
func (c Color) String() string {
	if c.kind == colorName {
		return c.name
	}
	rgba, err := c.Resolve()
	if err != nil {
		if c.kind == colorHex {
			return c.name
		}
		return fmt.Sprintf("rgb(%d, %d, %d)", c.r, c.g, c.b)
	}
	return hexOf(rgba)
}

func hexOf(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func inByteRange(v int) bool {
	return v >= 0 && v <= 255
}
