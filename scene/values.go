package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gogpu/kanvas"
)

// Dim is a canvas dimension: the string "full" or a positive integer.
type Dim struct {
	raw json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dim) UnmarshalJSON(b []byte) error {
	d.raw = append(d.raw[:0], b...)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Dim) MarshalJSON() ([]byte, error) {
	if len(d.raw) == 0 {
		return []byte("null"), nil
	}
	return d.raw, nil
}

// Dimension converts d. A nil Dim is Full.
func (d *Dim) Dimension(field string) (kanvas.Dimension, error) {
	if d == nil || len(d.raw) == 0 {
		return kanvas.Full, nil
	}
	var s string
	if err := json.Unmarshal(d.raw, &s); err == nil {
		if dim, err := kanvas.ParseDimension(s); err == nil && dim.IsFull() {
			return dim, nil
		}
		return kanvas.Dimension{}, &kanvas.DimensionError{Field: field, Value: strconv.Quote(s), Reason: kanvas.ReasonFullOrPositive}
	}
	n, err := integer(json.Number(bytes.TrimSpace(d.raw)))
	if err != nil || n <= 0 {
		return kanvas.Dimension{}, &kanvas.DimensionError{Field: field, Value: string(d.raw)}
	}
	return kanvas.Px(n), nil
}

// ColorValue is a color given as a name, a hex string or an [r, g, b] array.
type ColorValue struct {
	raw json.RawMessage
}

// Named returns a ColorValue holding the string s.
func Named(s string) *ColorValue {
	b, _ := json.Marshal(s)
	return &ColorValue{raw: b}
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ColorValue) UnmarshalJSON(b []byte) error {
	c.raw = append(c.raw[:0], b...)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c ColorValue) MarshalJSON() ([]byte, error) {
	if len(c.raw) == 0 {
		return []byte("null"), nil
	}
	return c.raw, nil
}

// Color converts c, validating it.
func (c *ColorValue) Color() (kanvas.Color, error) {
	var s string
	if err := json.Unmarshal(c.raw, &s); err == nil {
		return kanvas.ParseColor(s)
	}

	var triple []json.Number
	if err := json.Unmarshal(c.raw, &triple); err != nil || len(triple) != 3 {
		return kanvas.Color{}, &kanvas.ColorError{Input: string(c.raw), Err: kanvas.ErrInvalidColorValue}
	}
	var ch [3]int
	for i, n := range triple {
		v, err := integer(n)
		if err != nil {
			return kanvas.Color{}, &kanvas.ColorError{Input: string(c.raw), Err: kanvas.ErrInvalidColorValue}
		}
		ch[i] = v
	}
	col := kanvas.RGB(ch[0], ch[1], ch[2])
	if _, err := col.Resolve(); err != nil {
		return kanvas.Color{}, err
	}
	return col, nil
}

// colorOr converts c, or returns def when c is nil.
func colorOr(c *ColorValue, def kanvas.Color) (kanvas.Color, error) {
	if c == nil {
		return def, nil
	}
	return c.Color()
}

// integer parses n as a base-10 integer. Fractions and exponents are
// rejected with ErrInvalidCoordinate.
func integer(n json.Number) (int, error) {
	v, err := strconv.Atoi(string(n))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", kanvas.ErrInvalidCoordinate, string(n))
	}
	return v, nil
}

// coord parses a required coordinate field.
func coord(field string, n json.Number) (int, error) {
	if n == "" {
		return 0, fmt.Errorf("%w: %s is required", kanvas.ErrInvalidCoordinate, field)
	}
	v, err := integer(n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	return v, nil
}

// extent parses a required width, height or radius field.
func extent(field string, n json.Number) (int, error) {
	if n == "" {
		return 0, &kanvas.DimensionError{Field: field, Reason: "is required"}
	}
	v, err := integer(n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if v <= 0 {
		return 0, &kanvas.DimensionError{Field: field, Value: string(n)}
	}
	return v, nil
}
