package kanvas

import (
	"errors"
	"fmt"
)

// Sentinel errors for the kanvas package. Match them with errors.Is.
var (
	// ErrAlreadyInitialized is returned when a second canvas is initialized on a display.
	ErrAlreadyInitialized = errors.New("kanvas: canvas already initialized")

	// ErrNotInitialized is returned when a shape is used without a live canvas.
	ErrNotInitialized = errors.New("kanvas: canvas not initialized")

	// ErrInvalidDimension is returned for non-positive extents or a malformed "full" sentinel.
	ErrInvalidDimension = errors.New("kanvas: invalid dimension")

	// ErrInvalidColorName is returned for a name outside the fixed color table.
	ErrInvalidColorName = errors.New("kanvas: invalid color name")

	// ErrInvalidColorValue is returned for a malformed or out-of-range color triple.
	ErrInvalidColorValue = errors.New("kanvas: invalid color value")

	// ErrInvalidCoordinate is returned when a coordinate is not an integer.
	ErrInvalidCoordinate = errors.New("kanvas: invalid coordinate")

	// ErrIllegalStateTransition is returned under PolicyStrict for draw-when-drawn
	// and destroy-when-not-drawn.
	ErrIllegalStateTransition = errors.New("kanvas: illegal state transition")
)

// DimensionError describes a rejected width, height or radius.
type DimensionError struct {
	Field string
	Value string

	// Reason states the violated rule. Empty means "must be a positive integer".
	Reason string
}

func (e *DimensionError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "must be a positive integer"
	}
	if e.Value == "" {
		return fmt.Sprintf("kanvas: invalid dimension: %s %s", e.Field, reason)
	}
	return fmt.Sprintf("kanvas: invalid dimension: %s %s, got %s", e.Field, reason, e.Value)
}

// Unwrap returns ErrInvalidDimension.
func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}

// ColorError describes a color input that could not be resolved.
// Err is ErrInvalidColorName or ErrInvalidColorValue.
type ColorError struct {
	Input string
	Err   error
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Input)
}

// Unwrap returns the underlying sentinel.
func (e *ColorError) Unwrap() error {
	return e.Err
}

// TransitionError is returned by Draw or Destroy under PolicyStrict.
type TransitionError struct {
	Kind  Kind
	ID    string
	Op    string
	Drawn bool
}

func (e *TransitionError) Error() string {
	state := "not drawn"
	if e.Drawn {
		state = "drawn"
	}
	return fmt.Sprintf("kanvas: illegal state transition: %s %s on %s %s", e.Op, e.Kind, state, e.ID)
}

// Unwrap returns ErrIllegalStateTransition.
func (e *TransitionError) Unwrap() error {
	return ErrIllegalStateTransition
}
