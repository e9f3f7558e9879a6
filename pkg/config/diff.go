package config

import (
	"strconv"

	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
)

// ParamValueChange is one entry of the values-to-set diff: a
// (object, parameter) pair whose desired value differs from the
// device's reported value, rendered in wire (post transform_for_enb)
// form.
type ParamValueChange struct {
	Object datamodel.ObjectID
	Name   datamodel.ParameterName
	Value  string
}

// familyChildSet returns the set of ParameterNames that belong to some
// indexed family's template, so scalar root parameters can be told
// apart from family-child parameters sharing the same Parameters map.
func familyChildSet(dm *datamodel.DataModel) map[datamodel.ParameterName]bool {
	out := map[datamodel.ParameterName]bool{}
	for _, children := range dm.NumberedParamNames {
		for _, c := range children {
			out[c] = true
		}
	}
	return out
}

// ScalarParamNames returns the non-indexed (root) parameter names this
// data model declares with a real wire path (sentinel-pathed synthetic
// parameters are never fetched).
func ScalarParamNames(dm *datamodel.DataModel) []datamodel.ParameterName {
	children := familyChildSet(dm)
	var out []datamodel.ParameterName
	for name, p := range dm.Parameters {
		if children[name] || p.IsSynthetic() {
			continue
		}
		out = append(out, name)
	}
	return out
}

// ParamsToGet computes the params-to-get set. On a fresh session
// (requestAllParams, set on a BOOTSTRAP/BOOT event) this is the
// model's declared load-parameters seed list in full. Otherwise it is
// every declared non-optional scalar parameter still absent from
// device.
func ParamsToGet(device *Store, dm *datamodel.DataModel, requestAllParams bool) []datamodel.ParameterName {
	if requestAllParams {
		var out []datamodel.ParameterName
		for _, name := range dm.LoadParameters {
			if _, ok := dm.Lookup(name); ok {
				out = append(out, name)
			}
		}
		return out
	}

	var out []datamodel.ParameterName
	for _, name := range ScalarParamNames(dm) {
		p, _ := dm.Lookup(name)
		if device.HasParameter(name) {
			continue
		}
		if p.IsOptional {
			continue
		}
		out = append(out, name)
	}
	return out
}

// ObjectParamsToGet computes the object-params-to-get set: for
// each indexed family, ensure an object exists in device for every
// reported instance (creating it if absent, as specified), then
// collect any child parameter still missing a cached value. Mutates
// device by creating the missing objects — this is the one
// explicitly-specified side effect the diff engine performs.
func ObjectParamsToGet(device *Store, dm *datamodel.DataModel, requestAllParams bool) map[datamodel.ObjectID][]datamodel.ParameterName {
	out := map[datamodel.ObjectID][]datamodel.ParameterName{}
	for _, family := range dm.Families() {
		children := dm.NumberedParamNames[family]
		numReported := reportedCount(device, dm, family)
		for i := 1; i <= numReported; i++ {
			obj := datamodel.ObjectID{Family: family, Index: i}
			if !device.HasObject(obj) {
				_ = device.AddObject(obj)
			}
			var missing []datamodel.ParameterName
			for _, child := range children {
				if requestAllParams {
					missing = append(missing, child)
					continue
				}
				if _, ok := device.GetParameterForObject(obj, child); !ok {
					missing = append(missing, child)
				}
			}
			if len(missing) > 0 {
				out[obj] = missing
			}
		}
	}
	return out
}

// reportedCount reads the device's reported instance count for family,
// clamped to the data model's configured capacity.
func reportedCount(device *Store, dm *datamodel.DataModel, family datamodel.ObjectFamily) int {
	countParam := datamodel.CountParam(family)
	n := 0
	if v, ok := device.GetParameter(countParam); ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			n = parsed
		}
	}
	if cap := dm.Capacity(family); n > cap {
		n = cap
	}
	if n < 0 {
		n = 0
	}
	return n
}

// ObjectsToDelete computes objects present in device but absent from
// desired. Only indexed-family objects are ever in either
// store's object set, so no extra restriction is needed.
func ObjectsToDelete(desired, device *Store) []datamodel.ObjectID {
	var out []datamodel.ObjectID
	for _, obj := range device.Objects() {
		if !desired.HasObject(obj) {
			out = append(out, obj)
		}
	}
	return out
}

// ObjectsToAdd computes objects present in desired but absent from
// device.
func ObjectsToAdd(desired, device *Store) []datamodel.ObjectID {
	var out []datamodel.ObjectID
	for _, obj := range desired.Objects() {
		if !device.HasObject(obj) {
			out = append(out, obj)
		}
	}
	return out
}

// ValuesToSet computes the values-to-set diff: every (obj,
// param) pair in desired whose value differs from device, after
// rendering the desired value through transform_for_enb. Booleans and
// numbers compare by value; strings compare verbatim.
func ValuesToSet(desired, device *Store, dm *datamodel.DataModel) []ParamValueChange {
	var out []ParamValueChange

	check := func(obj datamodel.ObjectID, name datamodel.ParameterName, desiredVal string) {
		p, ok := dm.Lookup(name)
		if !ok || p.IsSynthetic() {
			return
		}
		enbDesired := dm.TransformForENB(name)(desiredVal)
		deviceVal, present := device.GetParameterForObject(obj, name)
		if present && valuesEqual(p.Type, enbDesired, deviceVal) {
			return
		}
		out = append(out, ParamValueChange{Object: obj, Name: name, Value: enbDesired})
	}

	for _, name := range ScalarParamNames(dm) {
		if v, ok := desired.GetParameter(name); ok {
			check(datamodel.RootObject, name, v)
		}
	}
	for _, obj := range desired.Objects() {
		for _, name := range desired.GetParameterNamesForObject(obj) {
			v, _ := desired.GetParameterForObject(obj, name)
			check(obj, name, v)
		}
	}
	return out
}

func valuesEqual(t datamodel.ParameterType, a, b string) bool {
	switch t {
	case datamodel.ParameterTypeBool:
		return normalizeBool(a) == normalizeBool(b)
	case datamodel.ParameterTypeInt, datamodel.ParameterTypeUnsignedInt:
		na, errA := strconv.ParseInt(a, 10, 64)
		nb, errB := strconv.ParseInt(b, 10, 64)
		if errA == nil && errB == nil {
			return na == nb
		}
		return a == b
	default:
		return a == b
	}
}

func normalizeBool(v string) bool {
	return v == "1" || v == "true" || v == "True" || v == "Enabled"
}
