package resource

import "fmt"

/* ErrorMode decides what happens to the classification of a failed remote call
 * Preserve keeps the code derived from the HTTP status
 * Flatten reports every remote failure as InternalFailure, like the first provider release
 */
type ErrorMode int

const (
	Preserve ErrorMode = iota + 1
	Flatten
)

// String returns the string representation of the error mode
func (m ErrorMode) String() string {
	switch m {
	case Preserve:
		return "preserve"
	case Flatten:
		return "flatten"
	default:
		return "unknown"
	}
}

// NewErrorMode creates an ErrorMode from a string, empty means Preserve
func NewErrorMode(s string) ErrorMode {
	switch s {
	case "", "preserve":
		return Preserve
	case "flatten":
		return Flatten
	default:
		return 0
	}
}

// Validate checks if the error mode is valid
func (m ErrorMode) Validate() error {
	if m != Preserve && m != Flatten {
		return fmt.Errorf("invalid error mode: %d", m)
	}
	return nil
}

/* ReadMode decides whether Read contacts the remote API
 * Echo returns the model CloudFormation passed in
 * Fetch loads the hook and refreshes the model from it
 */
type ReadMode int

const (
	Echo ReadMode = iota + 1
	Fetch
)

// String returns the string representation of the read mode
func (m ReadMode) String() string {
	switch m {
	case Echo:
		return "echo"
	case Fetch:
		return "fetch"
	default:
		return "unknown"
	}
}

// NewReadMode creates a ReadMode from a string, empty means Echo
func NewReadMode(s string) ReadMode {
	switch s {
	case "", "echo":
		return Echo
	case "fetch":
		return Fetch
	default:
		return 0
	}
}

// Validate checks if the read mode is valid
func (m ReadMode) Validate() error {
	if m != Echo && m != Fetch {
		return fmt.Errorf("invalid read mode: %d", m)
	}
	return nil
}
