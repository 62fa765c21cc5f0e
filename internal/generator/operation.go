package generator

import (
	"fmt"
	"strings"

	"github.com/firefly-engineering/cfgbeast/internal/errors"
)

// Operation is the file-level write applied to each target config.
type Operation int

const (
	// Overwrite creates or truncates the target and writes the cvars.
	Overwrite Operation = iota
	// Append adds the cvars to the end of the target, creating it if needed.
	Append
	// Remove deletes every occurrence of each cvar line from the target.
	Remove
	// Delete removes the target file.
	Delete
)

var operationNames = map[Operation]string{
	Overwrite: "overwrite",
	Append:    "append",
	Remove:    "remove",
	Delete:    "delete",
}

// Operations returns every operation in menu order.
func Operations() []Operation {
	return []Operation{Overwrite, Append, Remove, Delete}
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// Description is a one-line summary for help output.
func (o Operation) Description() string {
	switch o {
	case Overwrite:
		return "create or overwrite the config of every selected map"
	case Append:
		return "add cvars to the end of existing configs"
	case Remove:
		return "strip the given cvars from existing configs"
	case Delete:
		return "delete the configs of every selected map"
	default:
		return ""
	}
}

// ParseOperation parses an operation name. "create" is accepted for Overwrite.
func ParseOperation(s string) (Operation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "create" {
		return Overwrite, nil
	}
	for op, opName := range operationNames {
		if name == opName {
			return op, nil
		}
	}
	return 0, errors.ValidationError(fmt.Sprintf("unknown operation %q (valid: overwrite, append, remove, delete)", s))
}
