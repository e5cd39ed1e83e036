package kanvas

import (
	"strconv"
	"strings"
)

// Dimension is a canvas width or height: either a positive pixel count or
// the Full sentinel, which resolves to the surface's native extent.
type Dimension struct {
	px   int
	full bool
}

// Full spans the whole surface along one axis.
var Full = Dimension{full: true}

// Px returns a fixed pixel Dimension. It is validated when the canvas is
// initialized.
func Px(n int) Dimension {
	return Dimension{px: n}
}

// ReasonFullOrPositive is the DimensionError reason for inputs that may be
// either the "full" sentinel or a pixel count.
const ReasonFullOrPositive = `must be "full" or a positive integer`

// ParseDimension parses "full" (case-insensitive) or a decimal integer.
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "full") {
		return Full, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return Dimension{}, &DimensionError{Field: "dimension", Value: strconv.Quote(s), Reason: ReasonFullOrPositive}
	}
	return Px(n), nil
}

// IsFull reports whether d is the Full sentinel.
func (d Dimension) IsFull() bool { return d.full }

func (d Dimension) String() string {
	if d.full {
		return "full"
	}
	return strconv.Itoa(d.px)
}

// resolve returns the pixel extent of d against a surface extent of native.
// Fixed extents larger than the surface are kept; the surface drops the
// writes that fall outside it.
func (d Dimension) resolve(field string, native int) (int, error) {
	if d.full {
		return native, nil
	}
	if d.px <= 0 {
		return 0, &DimensionError{Field: field, Value: strconv.Itoa(d.px)}
	}
	return d.px, nil
}
