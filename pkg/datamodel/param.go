// Package datamodel holds the static, per-device-model parameter
// tables: the path a canonical parameter name maps to on the wire, its
// type and invasiveness, and the bidirectional value transforms
// applied at the device/canonical boundary. Tables are constructed
// once at process init and never mutated afterward.
package datamodel

// InvalidTrParamPath is the sentinel path for synthetic parameters
// (e.g. the DOWNLOAD_* family) that never cross the wire. The diff
// engine skips any TrParam with this path for every wire operation.
const InvalidTrParamPath = ""

// ParameterType is the closed set of value types a TrParam may
// declare. Declared as an enum rather than a string literal so that
// data-model construction can validate it.
type ParameterType int

const (
	ParameterTypeObject ParameterType = iota
	ParameterTypeBool
	ParameterTypeInt
	ParameterTypeUnsignedInt
	ParameterTypeString
)

func (t ParameterType) String() string {
	switch t {
	case ParameterTypeObject:
		return "object"
	case ParameterTypeBool:
		return "bool"
	case ParameterTypeInt:
		return "int"
	case ParameterTypeUnsignedInt:
		return "unsigned_int"
	case ParameterTypeString:
		return "string"
	default:
		return "unknown"
	}
}

// TrParam is the immutable metadata for a single canonical parameter
// on a given device model.
type TrParam struct {
	Path       string
	Type       ParameterType
	IsInvasive bool
	IsOptional bool
}

// IsSynthetic reports whether this parameter never crosses the wire.
func (p TrParam) IsSynthetic() bool {
	return p.Path == InvalidTrParamPath
}
