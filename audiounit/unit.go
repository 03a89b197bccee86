package audiounit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for a parameter id the unit does not expose.
	ErrInvalidParameter = errors.New("audiounit: invalid parameter")
	// ErrInvalidScope is returned for a scope the parameter does not live in.
	ErrInvalidScope = errors.New("audiounit: invalid scope")
	// ErrInvalidElement is returned for an element index the scope does not have.
	ErrInvalidElement = errors.New("audiounit: invalid element")
	// ErrInvalidValue is returned for NaN parameter values.
	ErrInvalidValue = errors.New("audiounit: invalid parameter value")
)

// ParameterID addresses one parameter of a unit.
type ParameterID uint32

// Parameter ids of the filter units.
const (
	BandpassCenterFrequency ParameterID = 0
	BandpassBandwidth       ParameterID = 1

	LowPassCutoffFrequency ParameterID = 0
	LowPassResonance       ParameterID = 1

	HighPassCutoffFrequency ParameterID = 0
	HighPassResonance       ParameterID = 1
)

// Scope selects which part of a unit a parameter write targets.
type Scope uint32

// Scopes.
const (
	ScopeGlobal Scope = iota
	ScopeInput
	ScopeOutput
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeInput:
		return "input"
	case ScopeOutput:
		return "output"
	default:
		return fmt.Sprintf("scope(%d)", uint32(s))
	}
}

// Unit is an opaque effect unit.
type Unit interface {
	// SetParameter writes value to parameter id in the given scope and element.
	SetParameter(id ParameterID, scope Scope, element uint32, value float32) error

	// Parameter reads back a parameter value.
	Parameter(id ParameterID, scope Scope, element uint32) (float32, error)

	// Process renders one block of src into dst. Both have equal length and
	// may alias.
	Process(dst, src []float64)

	// Reset clears any processing state (delay lines, envelopes).
	Reset()
}

// ParameterInfo describes a unit parameter.
type ParameterInfo struct {
	ID      ParameterID
	Name    string
	Unit    string
	Min     float32
	Max     float32
	Default float32
}

// Describer is implemented by units that publish their parameter table.
type Describer interface {
	ParameterInfo() []ParameterInfo
}
