package fsm

import "github.com/enodebd-net/enodebd-acs/pkg/tr069"

// unexpectedFaultState is the handler's error parking state: it accepts
// and silently absorbs any message until the next Inform, at which
// point it re-enters the provisioning loop exactly like wait_inform.
type unexpectedFaultState struct{}

func (unexpectedFaultState) Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome {
	inform, ok := msg.(tr069.Inform)
	if !ok {
		return ReadOutcome{Handled: true}
	}
	recordInform(h, inform)
	return goTo(LabelGetRPCMethods)
}

func (unexpectedFaultState) Emit(h *DeviceHandler) EmitOutcome {
	return EmitOutcome{Msg: tr069.Empty{}, Next: ""}
}

// BuildErrorStates returns the fault-recovery vertex, registered
// alongside the provisioning and manual-branch state maps.
func BuildErrorStates() map[Label]State {
	return map[Label]State{
		LabelUnexpectedFault: unexpectedFaultState{},
	}
}

// BuildStandardStates merges the provisioning loop, the manual
// branches, and the error state into the map every model starts from;
// a model then layers in any extra vertices of its own (e.g. notify_dp
// for CBRS) before constructing its handler.
func BuildStandardStates() map[Label]State {
	states := BuildProvisioningStates()
	for label, st := range BuildManualStates() {
		states[label] = st
	}
	for label, st := range BuildErrorStates() {
		states[label] = st
	}
	return states
}
