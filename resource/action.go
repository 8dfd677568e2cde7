package resource

import "fmt"

/* Action is the lifecycle verb the orchestration framework invokes
 * Wire values are the upper-case names CloudFormation sends
 */
type Action int

const (
	Create Action = iota + 1
	Read
	Update
	Delete
	List
)

// String returns the wire representation of the action
func (a Action) String() string {
	switch a {
	case Create:
		return "CREATE"
	case Read:
		return "READ"
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	case List:
		return "LIST"
	default:
		return "UNKNOWN"
	}
}

// NewAction creates an Action from its wire representation
// Unknown values yield an invalid Action, see Validate
func NewAction(s string) Action {
	switch s {
	case "CREATE":
		return Create
	case "READ":
		return Read
	case "UPDATE":
		return Update
	case "DELETE":
		return Delete
	case "LIST":
		return List
	default:
		return 0
	}
}

// Validate checks if the action is valid
func (a Action) Validate() error {
	if a < Create || a > List {
		return fmt.Errorf("invalid action: %d", a)
	}
	return nil
}
