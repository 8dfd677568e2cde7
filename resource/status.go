package resource

import "fmt"

/* OperationStatus is the outcome reported back to the orchestration framework
 * InProgress asks to be invoked again with the returned callback context
 */
type OperationStatus int

const (
	InProgress OperationStatus = iota + 1
	Success
	Failed
)

// String returns the wire representation of the status
func (s OperationStatus) String() string {
	switch s {
	case InProgress:
		return "IN_PROGRESS"
	case Success:
		return "SUCCESS"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Validate checks if the status is valid
func (s OperationStatus) Validate() error {
	if s < InProgress || s > Failed {
		return fmt.Errorf("invalid status: %d", s)
	}
	return nil
}

// IsFinal returns true if the status is a terminal state
func (s OperationStatus) IsFinal() bool {
	return s == Success || s == Failed
}
