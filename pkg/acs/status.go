// Package acs implements the control RPC surface: the facade an
// external gRPC servicer or HTTP handler would wrap directly around —
// GetParameter, SetParameter, Reboot, RebootAll, Download, GetStatus,
// GetAllEnodebStatus, GetEnodebStatus. It translates each call into
// manager/handler operations, taking only the lock it needs per
// device rather than a manager-wide lock.
package acs

import (
	"github.com/enodebd-net/enodebd-acs/pkg/config"
	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
	"github.com/enodebd-net/enodebd-acs/pkg/fsm"
)

// EnodebStatus is the per-device status row returned by
// GetEnodebStatus/GetAllEnodebStatus.
type EnodebStatus struct {
	DeviceSerial   string
	IPAddress      string
	Connected      bool
	Configured     bool
	OpStateEnabled bool
	RFTxOn         bool
	RFTxDesired    bool
	GPSConnected   bool
	PTPConnected   bool
	MMEConnected   bool
	GPSLongitude   string
	GPSLatitude    string
	FSMState       string
}

func boolParam(store *config.Store, name datamodel.ParameterName) bool {
	v, _ := store.GetParameter(name)
	return v == "true"
}

func stringParam(store *config.Store, name datamodel.ParameterName) string {
	v, _ := store.GetParameter(name)
	return v
}

// isConfigured reports whether the handler's device_cfg currently
// satisfies desired_cfg: no params/objects left to fetch, add, delete,
// or set. Computed fresh from the diff engine rather than cached, so
// it always reflects the live configuration snapshots.
func isConfigured(h *fsm.DeviceHandler) bool {
	dm := h.DataModel()
	device := h.DeviceConfig()
	desired := h.DesiredConfig()

	if len(config.ParamsToGet(device, dm, false)) > 0 {
		return false
	}
	if len(config.ObjectsToAdd(desired, device)) > 0 || len(config.ObjectsToDelete(desired, device)) > 0 {
		return false
	}
	return len(config.ValuesToSet(desired, device, dm)) == 0
}

// statusFor builds an EnodebStatus from a live handler. ipAddress is
// supplied by the caller (the ACS facade tracks it separately — the
// core has no notion of transport-level addressing).
func statusFor(h *fsm.DeviceHandler, ipAddress string) EnodebStatus {
	var st EnodebStatus
	h.WithLock(func() {
		device := h.DeviceConfig()
		st = EnodebStatus{
			DeviceSerial:   h.Serial(),
			IPAddress:      ipAddress,
			Connected:      h.IsConnectedLocked(),
			Configured:     isConfigured(h),
			OpStateEnabled: boolParam(device, datamodel.ParamOpState),
			RFTxOn:         boolParam(device, datamodel.ParamRFTxStatus),
			RFTxDesired:    boolParam(h.DesiredConfig(), datamodel.ParamAdminState),
			GPSConnected:   boolParam(device, datamodel.ParamGPSStatus),
			PTPConnected:   boolParam(device, datamodel.ParamPTPStatus),
			MMEConnected:   boolParam(device, datamodel.ParamMMEStatus),
			GPSLongitude:   stringParam(device, datamodel.ParamGPSLongitude),
			GPSLatitude:    stringParam(device, datamodel.ParamGPSLatitude),
			FSMState:       string(h.CurrentStateLocked()),
		}
	})
	return st
}
