package control

import (
	"fmt"
	"strconv"
	"strings"
)

// Action identifies one of the eight user-triggerable gripper commands
type Action int

const (
	ActionOpen Action = iota
	ActionClose
	ActionMove
	ActionFlex
	ActionStop
	ActionSetForce
	ActionSetDiameter
	ActionSetGripType
)

// String returns the API-facing name of the action
func (a Action) String() string {
	switch a {
	case ActionOpen:
		return "open"
	case ActionClose:
		return "close"
	case ActionMove:
		return "move"
	case ActionFlex:
		return "flex"
	case ActionStop:
		return "stop"
	case ActionSetForce:
		return "set_force"
	case ActionSetDiameter:
		return "set_diameter"
	case ActionSetGripType:
		return "set_griptype"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// HasValue reports whether the action carries an integer payload
func (a Action) HasValue() bool {
	switch a {
	case ActionSetForce, ActionSetDiameter, ActionSetGripType:
		return true
	default:
		return false
	}
}

// Command is a named command event placed on the session's dispatch queue.
// Value is only meaningful for the three parameter-setting actions.
type Command struct {
	Action Action
	Value  int
}

// ParseValue converts user-supplied text into a parameter value.
// Missing or non-numeric input coerces to 0; no error is ever raised.
// This mirrors the panel's historical behavior and is intentional.
func ParseValue(text string) int {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return v
}

// SetForce builds a set_force command from user-supplied text
func SetForce(text string) Command {
	return Command{Action: ActionSetForce, Value: ParseValue(text)}
}

// SetDiameter builds a set_diameter command from user-supplied text
func SetDiameter(text string) Command {
	return Command{Action: ActionSetDiameter, Value: ParseValue(text)}
}

// SetGripType builds a set_griptype command from user-supplied text
func SetGripType(text string) Command {
	return Command{Action: ActionSetGripType, Value: ParseValue(text)}
}
