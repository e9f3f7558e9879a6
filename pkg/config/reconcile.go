package config

import (
	"strconv"

	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
)

// ReconcileObjectCount overwrites a misreported instance count.
// Devices sometimes misreport NUM_PLMNS / NUM_LTE_NEIGHBOR_FREQ /
// NUM_LTE_NEIGHBOR_CELL; the caller (the wait-get-object-parameters
// state) re-counts by probing each slot's primary child path and calls
// this once it knows the true count, which:
//   - rewrites the family's count parameter in device to actual
//   - deletes any device objects whose index exceeds actual
//
// Returns true if the stored count needed correction, so the caller
// can log a warning.
func ReconcileObjectCount(device *Store, family datamodel.ObjectFamily, actual int) bool {
	countParam := datamodel.CountParam(family)
	reported, _ := device.GetParameter(countParam)
	reportedN, _ := strconv.Atoi(reported)

	corrected := reportedN != actual
	_ = device.SetParameter(countParam, strconv.Itoa(actual))

	for _, obj := range device.Objects() {
		if obj.Family == family && obj.Index > actual {
			device.DeleteObject(obj)
		}
	}
	return corrected
}

// PrimaryChild returns the first declared child ParameterName for a
// family, used as the probe field during object-count reconciliation:
// a slot is considered present iff this field has a cached, non-empty
// value.
func PrimaryChild(dm *datamodel.DataModel, family datamodel.ObjectFamily) (datamodel.ParameterName, bool) {
	children := dm.NumberedParamNames[family]
	if len(children) == 0 {
		return "", false
	}
	return children[0], true
}
