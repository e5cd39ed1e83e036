package recording

import "image/color"

// ColorRef is a reference to a color in a Palette.
type ColorRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference is not InvalidRef.
func (r ColorRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// Palette stores the colors referenced by recorded commands. Each distinct
// color is stored once.
//
// Palette is not safe for concurrent use.
type Palette struct {
	colors []color.RGBA
	index  map[color.RGBA]ColorRef
}

// NewPalette creates an empty palette.
func NewPalette() *Palette {
	return &Palette{
		colors: make([]color.RGBA, 0, 16),
		index:  make(map[color.RGBA]ColorRef, 16),
	}
}

// Add returns the reference for c, adding it if it is new.
func (p *Palette) Add(c color.RGBA) ColorRef {
	if ref, ok := p.index[c]; ok {
		return ref
	}
	// #nosec G115 -- palette size is bounded by distinct RGBA values
	ref := ColorRef(uint32(len(p.colors)))
	p.colors = append(p.colors, c)
	p.index[c] = ref
	return ref
}

// Get returns the color for ref, or transparent black if ref is out of range.
func (p *Palette) Get(ref ColorRef) color.RGBA {
	if int(ref) >= len(p.colors) {
		return color.RGBA{}
	}
	return p.colors[ref]
}

// Len returns the number of distinct colors.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Colors returns a copy of the palette in insertion order.
func (p *Palette) Colors() []color.RGBA {
	out := make([]color.RGBA, len(p.colors))
	copy(out, p.colors)
	return out
}
