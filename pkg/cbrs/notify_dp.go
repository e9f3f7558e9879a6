package cbrs

import (
	"context"
	"fmt"

	"github.com/enodebd-net/enodebd-acs/pkg/config"
	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
	"github.com/enodebd-net/enodebd-acs/pkg/fsm"
	"github.com/enodebd-net/enodebd-acs/pkg/tr069"
)

// NotifyDPState is the QRTB-only entry action run between end_session
// and wait_inform: it fetches the CBSD's current SAS grant and
// projects it into desired_cfg, so the next provisioning loop picks up
// the updated radio parameters like any other desired-vs-device diff.
//
// It is registered only for handlers constructed with a non-nil
// DomainProxyClient (QRTB); BuildProvisioningStates never routes to it
// on its own — end_session.Emit checks DomainProxy() != nil.
type NotifyDPState struct{}

// Read absorbs whatever the device sends after end_session's closing
// envelope (typically a DummyInput ack); the real work happens in
// Emit, fired the same step since Read never transitions away.
func (NotifyDPState) Read(h *fsm.DeviceHandler, msg tr069.Inbound) fsm.ReadOutcome {
	return fsm.ReadOutcome{Handled: true}
}

func (NotifyDPState) Emit(h *fsm.DeviceHandler) fsm.EmitOutcome {
	client := h.DomainProxy()
	if client == nil {
		// Should never happen for a handler with no domain proxy wired;
		// defensive fallback matching the Non-CBRS path.
		return fsm.EmitOutcome{Msg: tr069.Empty{}, Next: fsm.LabelWaitInform}
	}

	state, err := client.FetchCBSDState(context.Background(), h.Serial())
	if err != nil {
		h.SetLastFault(&tr069.DomainProxyUnavailableError{Serial: h.Serial(), Cause: err})
		h.Logger().Warnf("domain proxy unavailable: %v", err)
		return fsm.EmitOutcome{Msg: tr069.Empty{}, Next: fsm.LabelWaitInform}
	}

	desired := h.DesiredConfig()
	_ = desired.SetParameter(datamodel.ParamSASRadioEnable, boolStr(state.RadioEnabled))
	if !state.RadioEnabled {
		return fsm.EmitOutcome{Msg: tr069.Empty{}, Next: fsm.LabelWaitInform}
	}

	earfcn := CalcEARFCN(state.LowHz, state.HighHz)
	bandwidthMHz := CalcBandwidthMHz(state.LowHz, state.HighHz)
	bandwidthRBs := CalcBandwidthRBs(bandwidthMHz)
	psd, ok := CalcPSD(state.MaxEIRPDBmMHz)
	if !ok {
		cfgErr := &config.ConfigurationError{Message: fmt.Sprintf(
			"power spectral density %d exceeds allowed range [%d, %d]", psd, SASMinPSD, SASMaxPSD,
		)}
		h.SetLastFault(cfgErr)
		h.Logger().Warnf("%v", cfgErr)
		return fsm.EmitOutcome{Msg: tr069.Empty{}, Next: fsm.LabelNotifyDP}
	}

	_ = desired.SetParameter(datamodel.ParamBand, fmt.Sprintf("%d", Band))
	_ = desired.SetParameter(datamodel.ParamDLBandwidth, fmt.Sprintf("%d", bandwidthRBs))
	_ = desired.SetParameter(datamodel.ParamULBandwidth, fmt.Sprintf("%d", bandwidthRBs))
	_ = desired.SetParameter(datamodel.ParamEARFCNDL, fmt.Sprintf("%d", earfcn))
	_ = desired.SetParameter(datamodel.ParamEARFCNUL, fmt.Sprintf("%d", earfcn))
	_ = desired.SetParameter(datamodel.ParamPowerSpectralDensity, fmt.Sprintf("%d", psd))

	return fsm.EmitOutcome{Msg: tr069.Empty{}, Next: fsm.LabelWaitInform}
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// BuildStates returns the notify_dp vertex, to be merged into a QRTB
// handler's state map alongside fsm.BuildStandardStates.
func BuildStates() map[fsm.Label]fsm.State {
	return map[fsm.Label]fsm.State{
		fsm.LabelNotifyDP: NotifyDPState{},
	}
}
