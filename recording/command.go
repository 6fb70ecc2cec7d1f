package recording

import "github.com/fedorabots/emblem"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdDefineGradient CommandType = iota // Define a gradient
	CmdFillShape                         // Fill a shape
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdDefineGradient: "DefineGradient",
	CmdFillShape:      "FillShape",
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

// DefineGradientCommand makes a gradient available to later fills.
type DefineGradientCommand struct {
	Gradient emblem.Gradient
}

// Type implements Command.
func (DefineGradientCommand) Type() CommandType { return CmdDefineGradient }

// FillShapeCommand fills a shape.
type FillShapeCommand struct {
	Shape emblem.Shape
}

// Type implements Command.
func (FillShapeCommand) Type() CommandType { return CmdFillShape }
