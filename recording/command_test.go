package recording

import "testing"

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		ct   CommandType
		want string
	}{
		{CmdSetPixel, "SetPixel"},
		{CmdFillRect, "FillRect"},
		{CmdDrawText, "DrawText"},
		{CmdMark, "Mark"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.ct.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.ct, got, tt.want)
		}
	}
}

func TestCommandTypes(t *testing.T) {
	tests := []struct {
		cmd  Command
		want CommandType
	}{
		{SetPixelCommand{}, CmdSetPixel},
		{FillRectCommand{}, CmdFillRect},
		{DrawTextCommand{}, CmdDrawText},
		{MarkCommand{}, CmdMark},
	}
	for _, tt := range tests {
		if got := tt.cmd.Type(); got != tt.want {
			t.Errorf("%T.Type() = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}
