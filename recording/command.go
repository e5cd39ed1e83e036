package recording

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdSetPixel CommandType = iota // Set a single pixel
	CmdFillRect                    // Fill an axis-aligned rectangle
	CmdDrawText                    // Draw text in fixed glyph cells
	CmdMark                        // Label the commands that follow
)

var commandTypeNames = [...]string{
	CmdSetPixel: "SetPixel",
	CmdFillRect: "FillRect",
	CmdDrawText: "DrawText",
	CmdMark:     "Mark",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SetPixelCommand sets one pixel.
type SetPixelCommand struct {
	X, Y  int
	Color ColorRef
}

// Type implements Command.
func (SetPixelCommand) Type() CommandType { return CmdSetPixel }

// FillRectCommand fills Width×Height pixels whose top-left corner is (X, Y).
type FillRectCommand struct {
	X, Y          int
	Width, Height int
	Color         ColorRef
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// DrawTextCommand draws Text with its first cell's top-left corner at (X, Y).
type DrawTextCommand struct {
	Text  string
	X, Y  int
	Color ColorRef
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// MarkCommand labels the commands that follow it, up to the next mark.
// Canvases emit one per shape operation, e.g. "draw circle <id>".
type MarkCommand struct {
	Label string
}

// Type implements Command.
func (MarkCommand) Type() CommandType { return CmdMark }
