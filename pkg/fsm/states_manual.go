package fsm

import (
	"strconv"

	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
	"github.com/enodebd-net/enodebd-acs/pkg/tr069"
)

// ---- reboot branch ----

type rebootState struct{}

func (rebootState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	return unhandled()
}

func (rebootState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.Reboot{}, Next: LabelWaitReboot}
}

type waitRebootState struct{}

func (waitRebootState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if checkFault(h, msg) {
		return unhandled()
	}
	if _, ok := msg.(tr069.RebootResponse); !ok {
		return unhandled()
	}
	h.rebootInformTimer.Arm(h.Now(), PostRebootInformTimeout)
	return goTo(LabelWaitPostRebootInform)
}

func (waitRebootState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.Empty{}, Next: ""}
}

type waitPostRebootInformState struct{}

func (waitPostRebootInformState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	inform, ok := msg.(tr069.Inform)
	if !ok {
		if h.rebootInformTimer.Expired(h.Now()) {
			// Device did not come back: give up on this reboot
			// cycle and wait for a fresh session.
			h.rebootInformTimer.Disarm()
			return goTo(LabelWaitInform)
		}
		return ReadOutcome{Handled: true}
	}
	h.rebootInformTimer.Disarm()
	recordInform(h, inform)
	if h.invasivePolicy == ApplyViaReboot {
		return goTo(LabelWaitQueuedEventsPostReboot)
	}
	return goTo(LabelWaitEmptyPostReboot)
}

func (waitPostRebootInformState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.Empty{}, Next: ""}
}

// wait_queued_events_post_reboot arms the post-reboot holdoff timer
// and absorbs every inbound with an empty envelope until it
// expires, regardless of message type.
type waitQueuedEventsPostRebootState struct{}

func (waitQueuedEventsPostRebootState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if h.postRebootTimer.Expired(h.Now()) {
		h.postRebootTimer.Disarm()
		return goTo(LabelWaitInformPostReboot)
	}
	return ReadOutcome{Handled: true}
}

func (waitQueuedEventsPostRebootState) Emit(h *DeviceHandler) EmitOutcome {
	if !h.postRebootTimer.Armed() {
		h.postRebootTimer.Arm(h.Now(), PostRebootHoldoff)
	}
	return EmitOutcome{Msg: tr069.Empty{}, Next: ""}
}

type waitInformPostRebootState struct{}

func (waitInformPostRebootState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	inform, ok := msg.(tr069.Inform)
	if !ok {
		// The device may still be polling with empty envelopes right
		// after the holdoff expires; absorb them until it Informs.
		return ReadOutcome{Handled: true}
	}
	recordInform(h, inform)
	return goTo(LabelWaitEmptyPostReboot)
}

func (waitInformPostRebootState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.Empty{}, Next: ""}
}

type waitEmptyPostRebootState struct{}

func (waitEmptyPostRebootState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if _, ok := msg.(tr069.DummyInput); !ok {
		return unhandled()
	}
	return goTo(LabelGetTransientParams)
}

func (waitEmptyPostRebootState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.Empty{}, Next: ""}
}

// ---- download branch ----

type downloadState struct{}

func (downloadState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	return unhandled()
}

func (downloadState) Emit(h *DeviceHandler) EmitOutcome {
	get := func(name datamodel.ParameterName) string {
		v, _ := h.desiredCfg.GetParameter(name)
		return v
	}
	size, _ := strconv.Atoi(get(datamodel.ParamDownloadFileSize))
	return EmitOutcome{
		Msg: tr069.Download{
			URL:            get(datamodel.ParamDownloadURL),
			Username:       get(datamodel.ParamDownloadUser),
			Password:       get(datamodel.ParamDownloadPass),
			FileType:       get(datamodel.ParamDownloadFileType),
			FileSize:       size,
			TargetFileName: get(datamodel.ParamDownloadTargetFileName),
			MD5:            get(datamodel.ParamDownloadMD5),
		},
		Next: LabelWaitDownload,
	}
}

type waitDownloadState struct{}

func (waitDownloadState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if checkFault(h, msg) {
		return unhandled()
	}
	resp, ok := msg.(tr069.DownloadResponse)
	if !ok {
		return unhandled()
	}
	if statusFault(h, resp.Status) {
		return unhandled()
	}
	return goTo(LabelWaitInformPostDownload)
}

func (waitDownloadState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.Empty{}, Next: ""}
}

type waitInformPostDownloadState struct{}

func (waitInformPostDownloadState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	inform, ok := msg.(tr069.Inform)
	if !ok {
		return unhandled()
	}
	recordInform(h, inform)
	return goTo(LabelWaitEmptyPostDownload)
}

func (waitInformPostDownloadState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.Empty{}, Next: ""}
}

type waitEmptyPostDownloadState struct{}

func (waitEmptyPostDownloadState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if _, ok := msg.(tr069.DummyInput); !ok {
		return unhandled()
	}
	return goTo(LabelGetTransientParams)
}

func (waitEmptyPostDownloadState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.Empty{}, Next: ""}
}

// ---- factory_reset branch ----

type factoryResetState struct{}

func (factoryResetState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	return unhandled()
}

func (factoryResetState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.FactoryReset{}, Next: LabelWaitFactoryReset}
}

type waitFactoryResetState struct{}

func (waitFactoryResetState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	if checkFault(h, msg) {
		return unhandled()
	}
	if _, ok := msg.(tr069.FactoryResetResponse); !ok {
		return unhandled()
	}
	return goTo(LabelWaitInform)
}

func (waitFactoryResetState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.Empty{}, Next: ""}
}

// BuildManualStates returns the reboot/download/factory-reset branch
// vertices, registered alongside BuildProvisioningStates for every model.
func BuildManualStates() map[Label]State {
	return map[Label]State{
		LabelReboot:                     rebootState{},
		LabelWaitReboot:                 waitRebootState{},
		LabelWaitPostRebootInform:       waitPostRebootInformState{},
		LabelWaitQueuedEventsPostReboot: waitQueuedEventsPostRebootState{},
		LabelWaitInformPostReboot:       waitInformPostRebootState{},
		LabelWaitEmptyPostReboot:        waitEmptyPostRebootState{},

		LabelDownload:               downloadState{},
		LabelWaitDownload:           waitDownloadState{},
		LabelWaitInformPostDownload: waitInformPostDownloadState{},
		LabelWaitEmptyPostDownload:  waitEmptyPostDownloadState{},

		LabelFactoryReset:     factoryResetState{},
		LabelWaitFactoryReset: waitFactoryResetState{},
	}
}
