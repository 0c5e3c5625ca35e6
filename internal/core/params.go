package core

import "strings"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
)

// Parameter describes a single tunable value exposed by a pattern.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// Entry formats the parameter as a key=value entry.
func (p Parameter) Entry() string {
	return p.Key + "=" + p.Value
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures a set of parameters and their values.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Entries flattens the snapshot into key=value entries in group order.
func (s ParameterSnapshot) Entries() []string {
	var out []string
	for _, g := range s.Groups {
		for _, p := range g.Params {
			out = append(out, p.Entry())
		}
	}
	return out
}

// String renders the snapshot on a single line, e.g. for window captions.
func (s ParameterSnapshot) String() string {
	return strings.Join(s.Entries(), " ")
}
