// Package pcgerrors defines the PCG core's typed error values, matching
// the error table in the core's design: two fatal build-time errors
// (TooManyPreferences, MalformedTopology) and two consistency-engine
// errors that the caller sees as Err results (Inconsistent, SimplePath).
// All satisfy error and support errors.Is/errors.As, in the style this
// codebase's storage package uses for StorageError.
package pcgerrors

import "fmt"

// ErrTooManyPreferences is returned when the builder is given more than 31
// DFAs (BitSet31 cannot represent more preference levels).
var ErrTooManyPreferences = fmt.Errorf("pcg: more than %d preference levels requested", maxPreferences)

const maxPreferences = 31

// ErrMalformedTopology is returned when the builder is given a topology
// that is not weakly connected.
var ErrMalformedTopology = fmt.Errorf("pcg: topology is not weakly connected")

// StateRef identifies a PCG state for error reporting without importing
// the pcg package (which imports this one), avoiding an import cycle.
type StateRef struct {
	ID  uint32
	Loc string
}

func (r StateRef) String() string { return fmt.Sprintf("state#%d@%s", r.ID, r.Loc) }

// InconsistentError reports that two PCG states sharing a location are
// incomparable under the protect relation: neither protects the other.
type InconsistentError struct {
	X, Y StateRef
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf("pcg: inconsistent preference order between %s and %s", e.X, e.Y)
}

// SimplePathError reports that a required shadow-protection pair
// (mustPrefer) is not witnessed by the simulation.
type SimplePathError struct {
	X, Y StateRef
}

func (e *SimplePathError) Error() string {
	return fmt.Sprintf("pcg: required preference %s ≻ %s is not simulated", e.X, e.Y)
}
