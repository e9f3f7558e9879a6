// Package fsm implements the per-device TR-069 session state machine:
// a named-state graph where each state classifies an inbound
// message and, on its turn, emits the next outbound envelope. State
// transitions are plain label values so that a control RPC can inject
// a manual branch (reboot, download, factory reset) without reaching
// into the live state object.
package fsm

import "github.com/enodebd-net/enodebd-acs/pkg/tr069"

// Label names a vertex in the state graph.
type Label string

// Read outcomes. Handled=false drives the engine into unexpectedFault.
// Next == "" means "remain in the current state" — the caller should
// not change DeviceHandler.current.
type ReadOutcome struct {
	Handled bool
	Next    Label
}

func stay() ReadOutcome        { return ReadOutcome{Handled: true} }
func goTo(l Label) ReadOutcome { return ReadOutcome{Handled: true, Next: l} }
func unhandled() ReadOutcome   { return ReadOutcome{Handled: false} }

// EmitOutcome is what a state produces on its turn: the outbound
// message to send, and the state to hold after sending it. As with
// ReadOutcome, Next == "" keeps the handler in its current state;
// many states emit that way while they wait for the device's answer.
type EmitOutcome struct {
	Msg  tr069.Outbound
	Next Label
}

// State is the contract every vertex in the graph implements.
type State interface {
	// Read classifies an inbound message. If the type is not one this
	// state expects, it returns ReadOutcome{Handled: false} and the
	// engine transitions to unexpectedFault.
	Read(h *DeviceHandler, msg tr069.Inbound) ReadOutcome
	// Emit produces the next outbound envelope and the state to hold.
	Emit(h *DeviceHandler) EmitOutcome
}

// Well-known labels, one per vertex in the session graph.
const (
	LabelWaitInform             Label = "wait_inform"
	LabelGetRPCMethods          Label = "get_rpc_methods"
	LabelWaitEmpty              Label = "wait_empty"
	LabelGetTransientParams     Label = "get_transient_params"
	LabelWaitGetTransientParams Label = "wait_get_transient_params"
	LabelWaitGetParams          Label = "wait_get_params"
	LabelGetObjParams           Label = "get_obj_params"
	LabelDeleteObjs             Label = "delete_objs"
	LabelAddObjs                Label = "add_objs"
	LabelWaitSetParams          Label = "wait_set_params"
	LabelCheckGetParams         Label = "check_get_params"
	LabelCheckWaitGetParams     Label = "check_wait_get_params"
	LabelEndSession             Label = "end_session"
	LabelNotifyDP               Label = "notify_dp"

	LabelReboot                     Label = "reboot"
	LabelWaitReboot                 Label = "wait_reboot"
	LabelWaitPostRebootInform       Label = "wait_post_reboot_inform"
	LabelWaitQueuedEventsPostReboot Label = "wait_queued_events_post_reboot"
	LabelWaitInformPostReboot       Label = "wait_inform_post_reboot"
	LabelWaitEmptyPostReboot        Label = "wait_empty_post_reboot"

	LabelDownload               Label = "download"
	LabelWaitDownload           Label = "wait_download"
	LabelWaitInformPostDownload Label = "wait_inform_post_download"
	LabelWaitEmptyPostDownload  Label = "wait_empty_post_download"

	LabelFactoryReset     Label = "factory_reset"
	LabelWaitFactoryReset Label = "wait_factory_reset"

	LabelUnexpectedFault Label = "unexpected_fault"
)
