package datamodel

import "fmt"

// Transform is a unary value converter applied at the device/canonical
// boundary. Values are always stored in canonical form in the
// configuration store; TransformsForENB converts canonical -> wire
// form at emission, TransformsForMagma converts wire -> canonical form
// at ingestion.
type Transform func(string) string

// identity is the default transform when a parameter needs no conversion.
func identity(v string) string { return v }

// DataModel is the per-device-model, process-wide-immutable table of
// parameter metadata, object templates, and value transforms. A
// DataModel is built once via NewDataModel and never mutated after
// construction — every handler of the same device model shares the
// same *DataModel.
type DataModel struct {
	Parameters          map[ParameterName]TrParam
	NumberedParamNames  map[ObjectFamily][]ParameterName
	ObjectTemplatePaths map[ObjectFamily]string // exactly one "%d" placeholder
	TransformsForENB    map[ParameterName]Transform
	TransformsForMagma  map[ParameterName]Transform

	// LoadParameters is the seed list requested at session start
	// (get_transient_params / the initial get_params pass).
	LoadParameters []ParameterName

	NumPLMNs        int
	NumNeighborCell int
	NumNeighborFreq int
}

// Spec is the declarative input to NewDataModel — the per-model table
// a concrete device model (e.g. baicells_qafa.go) supplies.
type Spec struct {
	Parameters          map[ParameterName]TrParam
	NumberedParamNames  map[ObjectFamily][]ParameterName
	ObjectTemplatePaths map[ObjectFamily]string
	TransformsForENB    map[ParameterName]Transform
	TransformsForMagma  map[ParameterName]Transform
	LoadParameters      []ParameterName
	NumPLMNs            int
	NumNeighborCell     int
	NumNeighborFreq     int
}

// NewDataModel validates a Spec and returns the immutable DataModel.
// Validation failures panic: data models are process-wide constants
// built at init time, not user input — a malformed table is a
// build-time bug.
func NewDataModel(s Spec) *DataModel {
	for name, p := range s.Parameters {
		if p.Type < ParameterTypeObject || p.Type > ParameterTypeString {
			panic(fmt.Sprintf("datamodel: parameter %s has invalid type %d", name, p.Type))
		}
	}
	for family, path := range s.ObjectTemplatePaths {
		if !hasSinglePlaceholder(path) {
			panic(fmt.Sprintf("datamodel: object template %s path %q must contain exactly one %%d placeholder", family, path))
		}
	}

	dm := &DataModel{
		Parameters:          s.Parameters,
		NumberedParamNames:  s.NumberedParamNames,
		ObjectTemplatePaths: s.ObjectTemplatePaths,
		TransformsForENB:    s.TransformsForENB,
		TransformsForMagma:  s.TransformsForMagma,
		LoadParameters:      s.LoadParameters,
		NumPLMNs:            s.NumPLMNs,
		NumNeighborCell:     s.NumNeighborCell,
		NumNeighborFreq:     s.NumNeighborFreq,
	}
	if dm.TransformsForENB == nil {
		dm.TransformsForENB = map[ParameterName]Transform{}
	}
	if dm.TransformsForMagma == nil {
		dm.TransformsForMagma = map[ParameterName]Transform{}
	}
	return dm
}

func hasSinglePlaceholder(path string) bool {
	count := 0
	for i := 0; i+1 < len(path); i++ {
		if path[i] == '%' && path[i+1] == 'd' {
			count++
		}
	}
	return count == 1
}

// Lookup returns the TrParam for name, and whether it is declared on
// this model at all (a ParameterName may legitimately be absent).
func (dm *DataModel) Lookup(name ParameterName) (TrParam, bool) {
	p, ok := dm.Parameters[name]
	return p, ok
}

// TransformForENB returns the canonical->wire converter for name, or
// identity if the model declares none.
func (dm *DataModel) TransformForENB(name ParameterName) Transform {
	if t, ok := dm.TransformsForENB[name]; ok {
		return t
	}
	return identity
}

// TransformForMagma returns the wire->canonical converter for name, or
// identity if the model declares none.
func (dm *DataModel) TransformForMagma(name ParameterName) Transform {
	if t, ok := dm.TransformsForMagma[name]; ok {
		return t
	}
	return identity
}

// RenderPath renders the wire path for (name, obj): for a root-object
// parameter this is simply TrParam.Path; for a family member it
// substitutes obj.Index into the "%d" placeholder.
func (dm *DataModel) RenderPath(name ParameterName, obj ObjectID) string {
	p, ok := dm.Parameters[name]
	if !ok || p.IsSynthetic() {
		return ""
	}
	if obj.IsRoot() {
		return p.Path
	}
	return fmt.Sprintf(p.Path, obj.Index)
}

// InstancePath renders the full wire path of one object instance, e.g.
// "Device.PLMNList.1." for (FamilyPLMN, 1).
func (dm *DataModel) InstancePath(family ObjectFamily, index int) string {
	tmpl, ok := dm.ObjectTemplatePaths[family]
	if !ok {
		return ""
	}
	return fmt.Sprintf(tmpl, index)
}

// ObjectParentPath returns the wire path of the parent container an
// AddObject targets, i.e. the family's template path with its "%d"
// placeholder truncated away.
func (dm *DataModel) ObjectParentPath(family ObjectFamily) string {
	tmpl, ok := dm.ObjectTemplatePaths[family]
	if !ok {
		return ""
	}
	idx := indexOfPlaceholder(tmpl)
	if idx < 0 {
		return tmpl
	}
	return tmpl[:idx]
}

func indexOfPlaceholder(s string) int {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '%' && s[i+1] == 'd' {
			return i
		}
	}
	return -1
}

// Families returns the indexed object families this model declares,
// in a stable order (PLMN, then neighbor cell, then neighbor freq) so
// that diff computations are deterministic.
func (dm *DataModel) Families() []ObjectFamily {
	var out []ObjectFamily
	for _, f := range []ObjectFamily{FamilyPLMN, FamilyNeighborCell, FamilyNeighborFreq} {
		if _, ok := dm.NumberedParamNames[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Capacity returns the configured maximum instance count for a family
// — the upper bound the engine will never probe past, regardless of
// what the device reports.
func (dm *DataModel) Capacity(family ObjectFamily) int {
	switch family {
	case FamilyPLMN:
		return dm.NumPLMNs
	case FamilyNeighborCell:
		return dm.NumNeighborCell
	case FamilyNeighborFreq:
		return dm.NumNeighborFreq
	default:
		return 0
	}
}

// CountParam returns the canonical ParameterName the device reports
// its instance count under for a family (e.g. NUM_PLMNS for FamilyPLMN).
func CountParam(family ObjectFamily) ParameterName {
	switch family {
	case FamilyPLMN:
		return ParamNumPLMNs
	case FamilyNeighborCell:
		return ParamNumNeighborCell
	case FamilyNeighborFreq:
		return ParamNumNeighborFreq
	default:
		return ""
	}
}

// LookupByPath resolves a root-level wire path (as used by the
// control RPC surface, which addresses parameters the way an operator
// tool does — by TR-069 dotted name, not by canonical ParameterName)
// back to its ParameterName and TrParam. Indexed family members are
// not resolvable this way since their wire path embeds an instance
// index the caller would have to already know the family template for;
// pkg/acs restricts GetParameter/SetParameter to root-level parameters.
func (dm *DataModel) LookupByPath(path string) (ParameterName, TrParam, bool) {
	for name, p := range dm.Parameters {
		if !p.IsSynthetic() && p.Path == path {
			return name, p, true
		}
	}
	return "", TrParam{}, false
}
