package fsm

import (
	"errors"
	"testing"
	"time"

	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
	"github.com/enodebd-net/enodebd-acs/pkg/models"
	"github.com/enodebd-net/enodebd-acs/pkg/tr069"
	"github.com/enodebd-net/enodebd-acs/pkg/util"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestHandler(dm *datamodel.DataModel, policy InvasivePolicy, clock *fakeClock) *DeviceHandler {
	return NewDeviceHandler(Config{
		Serial:         "S1",
		ModelKey:       datamodel.ModelBaicellsQAFA,
		DataModel:      dm,
		States:         BuildStandardStates(),
		InvasivePolicy: policy,
		Logger:         util.NewHandlerLogger("S1"),
		Now:            clock.now,
	})
}

func bootstrapInform(serial string) tr069.Inform {
	return tr069.Inform{
		EventCodes: []tr069.EventCode{tr069.EventBootstrap},
		DeviceID:   tr069.DeviceID{OUI: "48BF74", SerialNumber: serial, SoftwareVersion: "BaiBS_QAFA"},
	}
}

// answer builds a positional GetParameterValuesResponse for req, looking
// each requested path up in vals (missing paths answer as empty strings,
// the way a device reports an unpopulated slot).
func answer(req tr069.GetParameterValues, vals map[string]string) tr069.GetParameterValuesResponse {
	list := make([]tr069.ParameterValueStruct, 0, len(req.ParameterNames))
	for _, path := range req.ParameterNames {
		list = append(list, tr069.ParameterValueStruct{Name: path, Value: vals[path]})
	}
	return tr069.GetParameterValuesResponse{ParameterList: list}
}

func pathOf(t *testing.T, dm *datamodel.DataModel, name datamodel.ParameterName) string {
	t.Helper()
	p := dm.RenderPath(name, datamodel.RootObject)
	if p == "" {
		t.Fatalf("%s has no wire path", name)
	}
	return p
}

func objPathOf(t *testing.T, dm *datamodel.DataModel, name datamodel.ParameterName, obj datamodel.ObjectID) string {
	t.Helper()
	p := dm.RenderPath(name, obj)
	if p == "" {
		t.Fatalf("%s has no wire path for %s", name, obj.Name())
	}
	return p
}

// runToDecision walks a cold session (Inform -> GetRPCMethods -> empty
// -> transient params -> load params) and returns whatever the engine
// emits once the load-params response is in: the first provisioning
// decision of the session.
func runToDecision(t *testing.T, h *DeviceHandler, vals map[string]string) tr069.Outbound {
	t.Helper()

	out := h.Step(bootstrapInform(h.Serial()))
	if _, ok := out.(tr069.GetRPCMethods); !ok {
		t.Fatalf("after Inform: emitted %T, want GetRPCMethods", out)
	}
	out = h.Step(tr069.GetRPCMethodsResponse{})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after GetRPCMethodsResponse: emitted %T, want Empty", out)
	}
	out = h.Step(tr069.DummyInput{})
	transient, ok := out.(tr069.GetParameterValues)
	if !ok {
		t.Fatalf("after empty: emitted %T, want GetParameterValues (transient)", out)
	}
	out = h.Step(answer(transient, vals))
	load, ok := out.(tr069.GetParameterValues)
	if !ok {
		t.Fatalf("after transient response: emitted %T, want GetParameterValues (load params)", out)
	}
	return h.Step(answer(load, vals))
}

func TestColdSessionAgainstMatchingDeviceEmitsNoWrites(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := newTestHandler(dm, ApplyInPlace, clock)

	if err := h.SetParameterASAP(datamodel.ParamPeriodicInformInterval, "60"); err != nil {
		t.Fatalf("staging desired value: %v", err)
	}
	if err := h.SetParameterASAP(datamodel.ParamAdminState, "true"); err != nil {
		t.Fatalf("staging desired value: %v", err)
	}

	vals := map[string]string{
		pathOf(t, dm, datamodel.ParamPeriodicInformInterval): "60",
		pathOf(t, dm, datamodel.ParamAdminState):             "1",
		pathOf(t, dm, datamodel.ParamNumPLMNs):               "0",
	}
	out := runToDecision(t, h, vals)
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("already-converged device: decision emitted %T, want Empty", out)
	}
	if h.CurrentState() != LabelWaitInform {
		t.Fatalf("session ended in %q, want %q", h.CurrentState(), LabelWaitInform)
	}
}

func TestStagedParameterProducesExactlyOneSet(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := newTestHandler(dm, ApplyInPlace, clock)

	// SetParameter RPC arrives while the handler is idle; the next
	// session's values-to-set must include exactly that parameter.
	if err := h.SetParameterASAP(datamodel.ParamPeriodicInformInterval, "60"); err != nil {
		t.Fatalf("staging desired value: %v", err)
	}

	informPath := pathOf(t, dm, datamodel.ParamPeriodicInformInterval)
	vals := map[string]string{
		informPath:                             "30",
		pathOf(t, dm, datamodel.ParamNumPLMNs): "0",
	}
	out := runToDecision(t, h, vals)
	set, ok := out.(tr069.SetParameterValues)
	if !ok {
		t.Fatalf("decision emitted %T, want SetParameterValues", out)
	}
	if len(set.ParameterList) != 1 {
		t.Fatalf("SetParameterValues carries %d entries, want 1: %+v", len(set.ParameterList), set.ParameterList)
	}
	if set.ParameterList[0].Name != informPath || set.ParameterList[0].Value != "60" {
		t.Fatalf("set %s=%s, want %s=60", set.ParameterList[0].Name, set.ParameterList[0].Value, informPath)
	}

	out = h.Step(tr069.SetParameterValuesResponse{Status: tr069.StatusOK})
	check, ok := out.(tr069.GetParameterValues)
	if !ok {
		t.Fatalf("after SetParameterValuesResponse: emitted %T, want verification GetParameterValues", out)
	}
	out = h.Step(answer(check, map[string]string{informPath: "60"}))
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after verification response: emitted %T, want Empty", out)
	}
	if h.CurrentState() != LabelWaitInform {
		t.Fatalf("session ended in %q, want %q", h.CurrentState(), LabelWaitInform)
	}
	if v, _ := h.DeviceConfig().GetParameter(datamodel.ParamPeriodicInformInterval); v != "60" {
		t.Fatalf("device_cfg PERIODIC_INFORM_INTERVAL = %q, want 60", v)
	}
}

func TestObjectCountSelfCorrection(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := newTestHandler(dm, ApplyInPlace, clock)

	plmn1 := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 1}
	h.WithLock(func() {
		_ = h.DesiredConfig().AddObject(plmn1)
		_ = h.DesiredConfig().SetParameterForObject(plmn1, datamodel.ParamPLMNPLMNID, "00101")
		_ = h.DesiredConfig().SetParameterForObject(plmn1, datamodel.ParamPLMNEnable, "true")
	})

	// Device claims two PLMN entries, but only slot 1 has a PLMNID.
	vals := map[string]string{
		pathOf(t, dm, datamodel.ParamNumPLMNs):             "2",
		objPathOf(t, dm, datamodel.ParamPLMNPLMNID, plmn1): "00101",
		objPathOf(t, dm, datamodel.ParamPLMNEnable, plmn1): "1",
	}
	out := runToDecision(t, h, vals)
	objReq, ok := out.(tr069.GetParameterValues)
	if !ok {
		t.Fatalf("decision emitted %T, want GetParameterValues for object params", out)
	}
	out = h.Step(answer(objReq, vals))
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after object-params response: emitted %T, want Empty", out)
	}

	if v, _ := h.DeviceConfig().GetParameter(datamodel.ParamNumPLMNs); v != "1" {
		t.Fatalf("device_cfg NUM_PLMNS = %q, want corrected to 1", v)
	}
	plmn2 := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 2}
	if h.DeviceConfig().HasObject(plmn2) {
		t.Fatal("phantom PLMN.2 should have been dropped during reconciliation")
	}
}

func TestAddObjectResponseRemapsInstanceNumber(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := newTestHandler(dm, ApplyInPlace, clock)

	tentative := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 1}
	h.WithLock(func() {
		_ = h.DesiredConfig().AddObject(tentative)
		_ = h.DesiredConfig().SetParameterForObject(tentative, datamodel.ParamPLMNPLMNID, "00101")
		_ = h.DesiredConfig().SetParameterForObject(tentative, datamodel.ParamPLMNEnable, "true")
	})

	vals := map[string]string{
		pathOf(t, dm, datamodel.ParamNumPLMNs): "0",
	}
	out := runToDecision(t, h, vals)
	add, ok := out.(tr069.AddObject)
	if !ok {
		t.Fatalf("decision emitted %T, want AddObject", out)
	}
	if add.ObjectName != dm.ObjectParentPath(datamodel.FamilyPLMN) {
		t.Fatalf("AddObject targets %q, want the parent path %q", add.ObjectName, dm.ObjectParentPath(datamodel.FamilyPLMN))
	}

	// Device assigns instance 3 to the new object; subsequent writes
	// must target PLMNList.3.
	out = h.Step(tr069.AddObjectResponse{Status: tr069.StatusOK, InstanceNumber: 3})
	set, ok := out.(tr069.SetParameterValues)
	if !ok {
		t.Fatalf("after AddObjectResponse: emitted %T, want SetParameterValues", out)
	}
	assigned := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 3}
	wantPLMNID := objPathOf(t, dm, datamodel.ParamPLMNPLMNID, assigned)
	found := false
	for _, pv := range set.ParameterList {
		if pv.Name == wantPLMNID {
			found = true
			if pv.Value != "00101" {
				t.Fatalf("PLMNID set to %q, want 00101", pv.Value)
			}
		}
	}
	if !found {
		t.Fatalf("SetParameterValues %+v does not target %s", set.ParameterList, wantPLMNID)
	}
	if h.DesiredConfig().HasObject(tentative) {
		t.Fatal("tentative PLMN.1 should have been renamed away in desired_cfg")
	}
	if !h.DesiredConfig().HasObject(assigned) {
		t.Fatal("desired_cfg should now hold PLMN.3")
	}
}

func TestUndesiredObjectIsDeleted(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := newTestHandler(dm, ApplyInPlace, clock)

	plmn1 := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 1}
	vals := map[string]string{
		pathOf(t, dm, datamodel.ParamNumPLMNs):             "1",
		objPathOf(t, dm, datamodel.ParamPLMNPLMNID, plmn1): "00101",
	}
	out := runToDecision(t, h, vals)
	objReq, ok := out.(tr069.GetParameterValues)
	if !ok {
		t.Fatalf("decision emitted %T, want GetParameterValues for object params", out)
	}
	out = h.Step(answer(objReq, vals))
	del, ok := out.(tr069.DeleteObject)
	if !ok {
		t.Fatalf("after object-params response: emitted %T, want DeleteObject", out)
	}
	if del.ObjectName != dm.InstancePath(datamodel.FamilyPLMN, 1) {
		t.Fatalf("DeleteObject targets %q, want %q", del.ObjectName, dm.InstancePath(datamodel.FamilyPLMN, 1))
	}

	out = h.Step(tr069.DeleteObjectResponse{Status: tr069.StatusOK})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after DeleteObjectResponse: emitted %T, want Empty (nothing left to do)", out)
	}
	if h.DeviceConfig().HasObject(plmn1) {
		t.Fatal("device_cfg should no longer hold PLMN.1")
	}
}

func TestInvasiveChangeRoutesThroughRebootBranch(t *testing.T) {
	dm := models.NewBaicellsQRTB()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := newTestHandler(dm, ApplyViaReboot, clock)

	if err := h.SetParameterASAP(datamodel.ParamEARFCNDL, "56190"); err != nil {
		t.Fatalf("staging desired value: %v", err)
	}

	earfcnPath := pathOf(t, dm, datamodel.ParamEARFCNDL)
	vals := map[string]string{
		earfcnPath:                             "55990",
		pathOf(t, dm, datamodel.ParamNumPLMNs): "0",
	}
	out := runToDecision(t, h, vals)
	set, ok := out.(tr069.SetParameterValues)
	if !ok {
		t.Fatalf("decision emitted %T, want SetParameterValues", out)
	}
	if len(set.ParameterList) != 1 || set.ParameterList[0].Name != earfcnPath {
		t.Fatalf("SetParameterValues %+v, want a single EARFCNDL entry", set.ParameterList)
	}

	// Invasive change + apply-via-reboot policy: the very next emission
	// after the set is acknowledged must be Reboot.
	out = h.Step(tr069.SetParameterValuesResponse{Status: tr069.StatusOK})
	if _, ok := out.(tr069.Reboot); !ok {
		t.Fatalf("after acking an invasive set: emitted %T, want Reboot", out)
	}
	out = h.Step(tr069.RebootResponse{})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after RebootResponse: emitted %T, want Empty", out)
	}
	if h.CurrentState() != LabelWaitPostRebootInform {
		t.Fatalf("state = %q, want %q", h.CurrentState(), LabelWaitPostRebootInform)
	}

	// Device comes back 61s later with a BOOT Inform; QRTB idles through
	// the queued-events holdoff before re-entering provisioning.
	clock.advance(61 * time.Second)
	boot := tr069.Inform{
		EventCodes: []tr069.EventCode{tr069.EventBoot},
		DeviceID:   tr069.DeviceID{OUI: "48BF74", SerialNumber: "S1", SoftwareVersion: "BaiBS_QRTB"},
	}
	out = h.Step(boot)
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after post-reboot Inform: emitted %T, want Empty (holdoff)", out)
	}
	if h.CurrentState() != LabelWaitQueuedEventsPostReboot {
		t.Fatalf("state = %q, want %q", h.CurrentState(), LabelWaitQueuedEventsPostReboot)
	}

	// Mid-holdoff traffic is absorbed with empty envelopes.
	clock.advance(10 * time.Second)
	out = h.Step(tr069.DummyInput{})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("mid-holdoff: emitted %T, want Empty", out)
	}
	if h.CurrentState() != LabelWaitQueuedEventsPostReboot {
		t.Fatalf("state = %q, want to still be in the holdoff", h.CurrentState())
	}

	// Past the deadline the engine moves on and waits for a fresh Inform.
	clock.advance(PostRebootHoldoff)
	out = h.Step(tr069.DummyInput{})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("post-holdoff poll: emitted %T, want Empty", out)
	}
	if h.CurrentState() != LabelWaitInformPostReboot {
		t.Fatalf("state = %q, want %q", h.CurrentState(), LabelWaitInformPostReboot)
	}
	out = h.Step(boot)
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after post-holdoff Inform: emitted %T, want Empty", out)
	}
	out = h.Step(tr069.DummyInput{})
	if _, ok := out.(tr069.GetParameterValues); !ok {
		t.Fatalf("re-entering provisioning: emitted %T, want GetParameterValues", out)
	}
	if h.CurrentState() != LabelGetTransientParams {
		t.Fatalf("state = %q, want %q", h.CurrentState(), LabelGetTransientParams)
	}
}

func TestRebootRPCPreemptsNextEmission(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := newTestHandler(dm, ApplyInPlace, clock)

	h.RebootASAP()

	// The next session the device opens is immediately diverted into the
	// reboot branch: the emission answering its Inform is Reboot.
	out := h.Step(bootstrapInform("S1"))
	if _, ok := out.(tr069.Reboot); !ok {
		t.Fatalf("after Inform with a queued reboot: emitted %T, want Reboot", out)
	}
	out = h.Step(tr069.RebootResponse{})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after RebootResponse: emitted %T, want Empty", out)
	}

	// Apply-in-place models skip the queued-events holdoff entirely.
	clock.advance(61 * time.Second)
	out = h.Step(tr069.Inform{
		EventCodes: []tr069.EventCode{tr069.EventBoot},
		DeviceID:   tr069.DeviceID{OUI: "48BF74", SerialNumber: "S1", SoftwareVersion: "BaiBS_QAFA"},
	})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after post-reboot Inform: emitted %T, want Empty", out)
	}
	if h.CurrentState() != LabelWaitEmptyPostReboot {
		t.Fatalf("state = %q, want %q", h.CurrentState(), LabelWaitEmptyPostReboot)
	}
	out = h.Step(tr069.DummyInput{})
	if _, ok := out.(tr069.GetParameterValues); !ok {
		t.Fatalf("re-entering provisioning: emitted %T, want GetParameterValues", out)
	}
}

func TestRebootInformTimeoutResetsToWaitInform(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := newTestHandler(dm, ApplyInPlace, clock)

	h.RebootASAP()
	if out := h.Step(bootstrapInform("S1")); out == nil {
		t.Fatal("expected an emission")
	}
	if out := h.Step(tr069.RebootResponse{}); out == nil {
		t.Fatal("expected an emission")
	}
	if h.CurrentState() != LabelWaitPostRebootInform {
		t.Fatalf("state = %q, want %q", h.CurrentState(), LabelWaitPostRebootInform)
	}

	clock.advance(PostRebootInformTimeout + time.Minute)
	out := h.Step(tr069.DummyInput{})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after timeout: emitted %T, want Empty", out)
	}
	if h.CurrentState() != LabelWaitInform {
		t.Fatalf("state = %q, want %q (device never came back)", h.CurrentState(), LabelWaitInform)
	}
}

func TestDeviceFaultEntersUnexpectedFaultThenRecoversOnInform(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := newTestHandler(dm, ApplyInPlace, clock)

	if err := h.SetParameterASAP(datamodel.ParamPeriodicInformInterval, "60"); err != nil {
		t.Fatalf("staging desired value: %v", err)
	}
	vals := map[string]string{
		pathOf(t, dm, datamodel.ParamPeriodicInformInterval): "30",
		pathOf(t, dm, datamodel.ParamNumPLMNs):               "0",
	}
	out := runToDecision(t, h, vals)
	if _, ok := out.(tr069.SetParameterValues); !ok {
		t.Fatalf("decision emitted %T, want SetParameterValues", out)
	}

	out = h.Step(tr069.Fault{FaultCode: 9005, FaultString: "InvalidParameterName"})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after Fault: emitted %T, want Empty", out)
	}
	if h.CurrentState() != LabelUnexpectedFault {
		t.Fatalf("state = %q, want %q", h.CurrentState(), LabelUnexpectedFault)
	}
	var pf *tr069.ProtocolFault
	if !errors.As(h.LastFault(), &pf) {
		t.Fatalf("LastFault = %v, want a *tr069.ProtocolFault", h.LastFault())
	}
	if pf.FaultString != "InvalidParameterName" {
		t.Fatalf("FaultString = %q, want InvalidParameterName", pf.FaultString)
	}

	// Non-Inform traffic keeps being absorbed.
	out = h.Step(tr069.DummyInput{})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("mid-fault poll: emitted %T, want Empty", out)
	}

	// The next Inform resumes the session from the top.
	out = h.Step(bootstrapInform("S1"))
	if _, ok := out.(tr069.GetRPCMethods); !ok {
		t.Fatalf("after recovery Inform: emitted %T, want GetRPCMethods", out)
	}
}

func TestDownloadRPCDrivesDownloadBranch(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := newTestHandler(dm, ApplyInPlace, clock)

	err := h.DownloadASAP("http://example.com/fw.bin", "admin", "secret", "fw.bin", 4096, "deadbeef")
	if err != nil {
		t.Fatalf("DownloadASAP: %v", err)
	}

	out := h.Step(bootstrapInform("S1"))
	dl, ok := out.(tr069.Download)
	if !ok {
		t.Fatalf("after Inform with a queued download: emitted %T, want Download", out)
	}
	if dl.URL != "http://example.com/fw.bin" || dl.TargetFileName != "fw.bin" || dl.FileSize != 4096 || dl.MD5 != "deadbeef" {
		t.Fatalf("Download fields %+v do not match the RPC arguments", dl)
	}

	out = h.Step(tr069.DownloadResponse{Status: tr069.StatusOK})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after DownloadResponse: emitted %T, want Empty", out)
	}
	out = h.Step(tr069.Inform{
		EventCodes: []tr069.EventCode{tr069.EventTransferComp, tr069.EventBoot},
		DeviceID:   tr069.DeviceID{OUI: "48BF74", SerialNumber: "S1", SoftwareVersion: "BaiBS_QAFA"},
	})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after post-download Inform: emitted %T, want Empty", out)
	}
	out = h.Step(tr069.DummyInput{})
	if _, ok := out.(tr069.GetParameterValues); !ok {
		t.Fatalf("re-entering provisioning: emitted %T, want GetParameterValues", out)
	}
}

func TestFactoryResetRPCReturnsToWaitInform(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := newTestHandler(dm, ApplyInPlace, clock)

	h.FactoryResetASAP()
	out := h.Step(bootstrapInform("S1"))
	if _, ok := out.(tr069.FactoryReset); !ok {
		t.Fatalf("after Inform with a queued factory reset: emitted %T, want FactoryReset", out)
	}
	out = h.Step(tr069.FactoryResetResponse{})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after FactoryResetResponse: emitted %T, want Empty", out)
	}
	if h.CurrentState() != LabelWaitInform {
		t.Fatalf("state = %q, want %q", h.CurrentState(), LabelWaitInform)
	}
}

func TestUnexpectedMessageInProvisioningFaults(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := newTestHandler(dm, ApplyInPlace, clock)

	if out := h.Step(bootstrapInform("S1")); out == nil {
		t.Fatal("expected an emission")
	}
	// A DownloadResponse while waiting for GetRPCMethodsResponse is
	// protocol desync; the handler must park in unexpected_fault.
	out := h.Step(tr069.DownloadResponse{})
	if _, ok := out.(tr069.Empty); !ok {
		t.Fatalf("after unexpected message: emitted %T, want Empty", out)
	}
	if h.CurrentState() != LabelUnexpectedFault {
		t.Fatalf("state = %q, want %q", h.CurrentState(), LabelUnexpectedFault)
	}
}

func TestDisconnectMidSessionResumesFromWaitInform(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	h := newTestHandler(dm, ApplyInPlace, clock)

	if out := h.Step(bootstrapInform("S1")); out == nil {
		t.Fatal("expected an emission")
	}
	if h.CurrentState() == LabelWaitInform {
		t.Fatal("handler should be mid-session")
	}

	h.Disconnect()
	if h.CurrentState() != LabelWaitInform {
		t.Fatalf("state = %q, want %q after disconnect", h.CurrentState(), LabelWaitInform)
	}
	if h.IsConnected() {
		t.Fatal("IsConnected should be false after disconnect")
	}

	out := h.Step(bootstrapInform("S1"))
	if _, ok := out.(tr069.GetRPCMethods); !ok {
		t.Fatalf("after reconnect Inform: emitted %T, want GetRPCMethods", out)
	}
}

func TestTimerExpiry(t *testing.T) {
	var tm Timer
	base := time.Unix(1700000000, 0)
	if tm.Expired(base) {
		t.Fatal("unarmed timer must not report expired")
	}
	tm.Arm(base, time.Minute)
	if tm.Expired(base.Add(59 * time.Second)) {
		t.Fatal("timer expired early")
	}
	if !tm.Expired(base.Add(time.Minute)) {
		t.Fatal("timer should expire exactly at its deadline")
	}
	tm.Disarm()
	if tm.Expired(base.Add(time.Hour)) {
		t.Fatal("disarmed timer must not report expired")
	}
}
