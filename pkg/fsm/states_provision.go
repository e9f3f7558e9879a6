package fsm

import (
	"github.com/enodebd-net/enodebd-acs/pkg/config"
	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
	"github.com/enodebd-net/enodebd-acs/pkg/tr069"
)

// probeEntry records which (object, parameter) a single
// GetParameterValues request element targets, so the corresponding
// response's positional ParameterValueStruct can be written back to
// the right slot in device_cfg without re-parsing the wire path.
type probeEntry struct {
	Object datamodel.ObjectID
	Name   datamodel.ParameterName
}

// recordInform applies an Inform's device identity fields into
// device_cfg (for whichever the model declares) and sets
// request_all_params on a bootstrap or boot event, forcing a full
// refetch of the declared parameter set.
func recordInform(h *DeviceHandler, inform tr069.Inform) {
	setIfDeclared := func(name datamodel.ParameterName, v string) {
		if v == "" {
			return
		}
		if _, ok := h.dm.Lookup(name); ok {
			_ = h.deviceCfg.SetParameter(name, v)
		}
	}
	setIfDeclared(datamodel.ParamDeviceOUI, inform.DeviceID.OUI)
	setIfDeclared(datamodel.ParamSerialNumber, inform.DeviceID.SerialNumber)
	setIfDeclared(datamodel.ParamSoftwareVersion, inform.DeviceID.SoftwareVersion)
	setIfDeclared(datamodel.ParamHardwareVersion, inform.DeviceID.HardwareVersion)

	for _, ev := range inform.EventCodes {
		if ev == tr069.EventBootstrap || ev == tr069.EventBoot {
			h.requestAllParams = true
		}
	}
}

// checkFault inspects msg for a Fault, recording it and reporting
// whether the caller should treat this as unhandled — a device fault
// drives the session to unexpected_fault.
func checkFault(h *DeviceHandler, msg tr069.Inbound) bool {
	f, ok := msg.(tr069.Fault)
	if !ok {
		return false
	}
	h.lastFault = &tr069.ProtocolFault{Serial: h.serial, FaultString: f.FaultString}
	h.logger.Warnf("device fault: %s", f.FaultString)
	return true
}

func statusFault(h *DeviceHandler, status tr069.Status) bool {
	if status == tr069.StatusOK {
		return false
	}
	h.lastFault = &tr069.ProtocolFault{Serial: h.serial, Status: status}
	h.logger.Warnf("non-OK status %d", status)
	return true
}

func storeProbeResponse(h *DeviceHandler, resp tr069.GetParameterValuesResponse) {
	n := len(h.pendingQuery)
	if len(resp.ParameterList) < n {
		n = len(resp.ParameterList)
	}
	for i := 0; i < n; i++ {
		entry := h.pendingQuery[i]
		val := h.dm.TransformForMagma(entry.Name)(resp.ParameterList[i].Value)
		_ = h.deviceCfg.SetParameterForObject(entry.Object, entry.Name, val)
	}
	h.pendingQuery = nil
}

func buildRootQuery(h *DeviceHandler, names []datamodel.ParameterName) (tr069.GetParameterValues, []probeEntry) {
	var paths []string
	var entries []probeEntry
	for _, name := range names {
		path := h.dm.RenderPath(name, datamodel.RootObject)
		if path == "" {
			continue
		}
		paths = append(paths, path)
		entries = append(entries, probeEntry{Object: datamodel.RootObject, Name: name})
	}
	return tr069.GetParameterValues{ParameterNames: paths}, entries
}

func buildObjectQuery(h *DeviceHandler, missing map[datamodel.ObjectID][]datamodel.ParameterName) (tr069.GetParameterValues, []probeEntry) {
	var paths []string
	var entries []probeEntry
	for obj, names := range missing {
		for _, name := range names {
			path := h.dm.RenderPath(name, obj)
			if path == "" {
				continue
			}
			paths = append(paths, path)
			entries = append(entries, probeEntry{Object: obj, Name: name})
		}
	}
	return tr069.GetParameterValues{ParameterNames: paths}, entries
}

var transientStatusNames = []datamodel.ParameterName{
	datamodel.ParamOpState,
	datamodel.ParamRFTxStatus,
	datamodel.ParamGPSStatus,
	datamodel.ParamGPSLatitude,
	datamodel.ParamGPSLongitude,
	datamodel.ParamMMEStatus,
	datamodel.ParamPTPStatus,
	datamodel.ParamREMStatus,
}

// ---- wait_inform ----

type waitInformState struct{}

func (waitInformState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	inform, ok := msg.(tr069.Inform)
	if !ok {
		return unhandled()
	}
	recordInform(h, inform)
	return goTo(LabelGetRPCMethods)
}

func (waitInformState) Emit(h *DeviceHandler) EmitOutcome {
	// Reached only when a recovery path (factory reset, reboot-inform
	// timeout) lands the handler back here mid-conversation; there is
	// no session to drive, so close the round-trip and keep waiting.
	return EmitOutcome{Msg: tr069.Empty{}, Next: ""}
}

// ---- get_rpc_methods ----

type getRPCMethodsState struct{}

func (getRPCMethodsState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if checkFault(h, msg) {
		return unhandled()
	}
	if _, ok := msg.(tr069.GetRPCMethodsResponse); !ok {
		return unhandled()
	}
	return goTo(LabelWaitEmpty)
}

func (getRPCMethodsState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.GetRPCMethods{}, Next: ""}
}

// ---- wait_empty ----

type waitEmptyState struct{}

func (waitEmptyState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if checkFault(h, msg) {
		return unhandled()
	}
	if _, ok := msg.(tr069.DummyInput); !ok {
		return unhandled()
	}
	return goTo(LabelGetTransientParams)
}

func (waitEmptyState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.Empty{}, Next: ""}
}

// ---- get_transient_params ----

type getTransientParamsState struct{}

func (getTransientParamsState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if checkFault(h, msg) {
		return unhandled()
	}
	resp, ok := msg.(tr069.GetParameterValuesResponse)
	if !ok {
		return unhandled()
	}
	storeProbeResponse(h, resp)
	return goTo(LabelWaitGetTransientParams)
}

func (getTransientParamsState) Emit(h *DeviceHandler) EmitOutcome {
	req, entries := buildRootQuery(h, transientStatusNames)
	h.pendingQuery = entries
	return EmitOutcome{Msg: req, Next: ""}
}

// ---- wait_get_transient_params: the branching hub ----

type waitGetTransientParamsState struct{}

func (waitGetTransientParamsState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	return unhandled()
}

func (waitGetTransientParamsState) Emit(h *DeviceHandler) EmitOutcome {
	missing := config.ParamsToGet(h.deviceCfg, h.dm, h.requestAllParams)
	if len(missing) > 0 {
		req, entries := buildRootQuery(h, missing)
		h.pendingQuery = entries
		return EmitOutcome{Msg: req, Next: LabelWaitGetParams}
	}

	objMissing := config.ObjectParamsToGet(h.deviceCfg, h.dm, h.requestAllParams)
	if len(objMissing) > 0 {
		req, entries := buildObjectQuery(h, objMissing)
		h.pendingQuery = entries
		return EmitOutcome{Msg: req, Next: LabelGetObjParams}
	}

	return decideAfterObjectSync(h)
}

// ---- get_params / wait_get_params ----

type waitGetParamsState struct{}

func (waitGetParamsState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if checkFault(h, msg) {
		return unhandled()
	}
	resp, ok := msg.(tr069.GetParameterValuesResponse)
	if !ok {
		return unhandled()
	}
	storeProbeResponse(h, resp)
	return goTo(LabelGetObjParams)
}

func (waitGetParamsState) Emit(h *DeviceHandler) EmitOutcome {
	objMissing := config.ObjectParamsToGet(h.deviceCfg, h.dm, h.requestAllParams)
	if len(objMissing) > 0 {
		req, entries := buildObjectQuery(h, objMissing)
		h.pendingQuery = entries
		return EmitOutcome{Msg: req, Next: LabelGetObjParams}
	}
	return decideAfterObjectSync(h)
}

// ---- get_obj_params ----

type getObjParamsState struct{}

func (getObjParamsState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if checkFault(h, msg) {
		return unhandled()
	}
	resp, ok := msg.(tr069.GetParameterValuesResponse)
	if !ok {
		return unhandled()
	}
	storeProbeResponse(h, resp)
	reconcileObjectCounts(h)
	return goTo(LabelDeleteObjs)
}

func (getObjParamsState) Emit(h *DeviceHandler) EmitOutcome {
	// Reached when wait_get_params just finished a scalar-params round
	// and is handing off here for the first time this session; the
	// object-params query has not been sent yet, so build and send it.
	// If the hub (wait_get_transient_params) already sent this query
	// directly, get_obj_params.Read consumes the response and leaves
	// before this Emit ever runs.
	objMissing := config.ObjectParamsToGet(h.deviceCfg, h.dm, h.requestAllParams)
	if len(objMissing) > 0 {
		req, entries := buildObjectQuery(h, objMissing)
		h.pendingQuery = entries
		return EmitOutcome{Msg: req, Next: ""}
	}
	reconcileObjectCounts(h)
	return decideAfterObjectSync(h)
}

// reconcileObjectCounts: for every indexed family,
// recount instances by probing primary-child presence and rewrite a
// misreported count.
func reconcileObjectCounts(h *DeviceHandler) {
	for _, family := range h.dm.Families() {
		primary, ok := config.PrimaryChild(h.dm, family)
		if !ok {
			continue
		}
		actual := 0
		for i := 1; i <= h.dm.Capacity(family); i++ {
			obj := datamodel.ObjectID{Family: family, Index: i}
			v, present := h.deviceCfg.GetParameterForObject(obj, primary)
			if !present || v == "" {
				break
			}
			actual = i
		}
		if config.ReconcileObjectCount(h.deviceCfg, family, actual) {
			h.logger.Warnf("corrected reported %s count to %d", family, actual)
		}
	}
}

// ---- delete_objs / add_objs / set_params cascade ----

func decideAfterObjectSync(h *DeviceHandler) EmitOutcome {
	toDelete := config.ObjectsToDelete(h.desiredCfg, h.deviceCfg)
	if len(toDelete) > 0 {
		h.pendingDeleteTarget = toDelete[0]
		return EmitOutcome{Msg: tr069.DeleteObject{ObjectName: h.dm.InstancePath(toDelete[0].Family, toDelete[0].Index)}, Next: LabelDeleteObjs}
	}
	return decideAfterDeletes(h)
}

func decideAfterDeletes(h *DeviceHandler) EmitOutcome {
	toAdd := config.ObjectsToAdd(h.desiredCfg, h.deviceCfg)
	if len(toAdd) > 0 {
		h.pendingAddTarget = toAdd[0]
		return EmitOutcome{Msg: tr069.AddObject{ObjectName: h.dm.ObjectParentPath(toAdd[0].Family)}, Next: LabelAddObjs}
	}
	return decideAfterAdds(h)
}

func decideAfterAdds(h *DeviceHandler) EmitOutcome {
	changes := config.ValuesToSet(h.desiredCfg, h.deviceCfg, h.dm)
	if len(changes) > 0 {
		return emitSetParams(h, changes)
	}
	// No diff at all (the device already matches desired config):
	// enter end_session and run its entry action in this same Emit, since
	// nothing here is waiting on a device response to get there. Every
	// other path into end_session arrives via a Read's goTo, which the
	// engine re-dispatches through Emit on its own (see stepLocked); this
	// cascade has no such Read to ride, so it must call through directly.
	return endSessionState{}.Emit(h)
}

func emitSetParams(h *DeviceHandler, changes []config.ParamValueChange) EmitOutcome {
	var list []tr069.ParameterValueStruct
	invasive := false
	for _, c := range changes {
		p, ok := h.dm.Lookup(c.Name)
		if !ok {
			continue
		}
		path := h.dm.RenderPath(c.Name, c.Object)
		if path == "" {
			continue
		}
		list = append(list, tr069.ParameterValueStruct{Name: path, Value: c.Value, Type: p.Type.String()})
		if p.IsInvasive {
			invasive = true
		}
	}
	h.pendingSetChanges = changes
	h.pendingInvasiveSet = invasive
	return EmitOutcome{Msg: tr069.SetParameterValues{ParameterList: list}, Next: LabelWaitSetParams}
}

type deleteObjsState struct{}

func (deleteObjsState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if checkFault(h, msg) {
		return unhandled()
	}
	resp, ok := msg.(tr069.DeleteObjectResponse)
	if !ok {
		return unhandled()
	}
	if statusFault(h, resp.Status) {
		return unhandled()
	}
	h.deviceCfg.DeleteObject(h.pendingDeleteTarget)
	return stay()
}

func (deleteObjsState) Emit(h *DeviceHandler) EmitOutcome {
	toDelete := config.ObjectsToDelete(h.desiredCfg, h.deviceCfg)
	if len(toDelete) > 0 {
		h.pendingDeleteTarget = toDelete[0]
		return EmitOutcome{Msg: tr069.DeleteObject{ObjectName: h.dm.InstancePath(toDelete[0].Family, toDelete[0].Index)}, Next: ""}
	}
	return decideAfterDeletes(h)
}

type addObjsState struct{}

func (addObjsState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if checkFault(h, msg) {
		return unhandled()
	}
	resp, ok := msg.(tr069.AddObjectResponse)
	if !ok {
		return unhandled()
	}
	if statusFault(h, resp.Status) {
		return unhandled()
	}
	tentative := h.pendingAddTarget
	final := tentative.WithIndex(resp.InstanceNumber)
	h.desiredCfg.RenameObject(tentative, final)
	_ = h.deviceCfg.AddObject(final)
	return stay()
}

func (addObjsState) Emit(h *DeviceHandler) EmitOutcome {
	toAdd := config.ObjectsToAdd(h.desiredCfg, h.deviceCfg)
	if len(toAdd) > 0 {
		h.pendingAddTarget = toAdd[0]
		return EmitOutcome{Msg: tr069.AddObject{ObjectName: h.dm.ObjectParentPath(toAdd[0].Family)}, Next: ""}
	}
	return decideAfterAdds(h)
}

// ---- set_params / wait_set_params ----

type waitSetParamsState struct{}

func (waitSetParamsState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if checkFault(h, msg) {
		return unhandled()
	}
	resp, ok := msg.(tr069.SetParameterValuesResponse)
	if !ok {
		return unhandled()
	}
	if statusFault(h, resp.Status) {
		return unhandled()
	}
	for _, c := range h.pendingSetChanges {
		canonical := h.dm.TransformForMagma(c.Name)(c.Value)
		_ = h.deviceCfg.SetParameterForObject(c.Object, c.Name, canonical)
	}
	if h.pendingInvasiveSet && h.invasivePolicy == ApplyViaReboot {
		return goTo(LabelReboot)
	}
	return goTo(LabelCheckGetParams)
}

func (waitSetParamsState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.Empty{}, Next: ""}
}

// ---- check_get_params / check_wait_get_params ----

type checkGetParamsState struct{}

func (checkGetParamsState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	return unhandled()
}

func (checkGetParamsState) Emit(h *DeviceHandler) EmitOutcome {
	var paths []string
	var entries []probeEntry
	for _, c := range h.pendingSetChanges {
		path := h.dm.RenderPath(c.Name, c.Object)
		if path == "" {
			continue
		}
		paths = append(paths, path)
		entries = append(entries, probeEntry{Object: c.Object, Name: c.Name})
	}
	h.pendingQuery = entries
	return EmitOutcome{Msg: tr069.GetParameterValues{ParameterNames: paths}, Next: LabelCheckWaitGetParams}
}

type checkWaitGetParamsState struct{}

func (checkWaitGetParamsState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if checkFault(h, msg) {
		return unhandled()
	}
	resp, ok := msg.(tr069.GetParameterValuesResponse)
	if !ok {
		return unhandled()
	}
	storeProbeResponse(h, resp)
	h.pendingSetChanges = nil
	h.pendingInvasiveSet = false
	return goTo(LabelEndSession)
}

func (checkWaitGetParamsState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.Empty{}, Next: LabelEndSession}
}

// ---- end_session ----

type endSessionState struct{}

func (endSessionState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	return unhandled()
}

func (endSessionState) Emit(h *DeviceHandler) EmitOutcome {
	h.requestAllParams = false
	if h.domainProxy != nil {
		return EmitOutcome{Msg: tr069.Empty{}, Next: LabelNotifyDP}
	}
	return EmitOutcome{Msg: tr069.Empty{}, Next: LabelWaitInform}
}

// BuildProvisioningStates returns the shared provisioning-loop state
// map every device model registers, before any model-specific extra
// vertices (e.g. notify_dp) are added.
func BuildProvisioningStates() map[Label]State {
	return map[Label]State{
		LabelWaitInform:             waitInformState{},
		LabelGetRPCMethods:          getRPCMethodsState{},
		LabelWaitEmpty:              waitEmptyState{},
		LabelGetTransientParams:     getTransientParamsState{},
		LabelWaitGetTransientParams: waitGetTransientParamsState{},
		LabelWaitGetParams:          waitGetParamsState{},
		LabelGetObjParams:           getObjParamsState{},
		LabelDeleteObjs:             deleteObjsState{},
		LabelAddObjs:                addObjsState{},
		LabelWaitSetParams:          waitSetParamsState{},
		LabelCheckGetParams:         checkGetParamsState{},
		LabelCheckWaitGetParams:     checkWaitGetParamsState{},
		LabelEndSession:             endSessionState{},
	}
}
