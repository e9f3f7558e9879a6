// Package postprocess implements the per-model config post-processor:
// after the operator's ServiceConfig/GatewayConfig has been projected
// into desired_cfg, each model gets one more pass to apply overrides
// the operator config can't express directly — dropping a parameter
// the device manages locally, forcing a fixed interval, marking an
// object field, or deleting values a different subsystem (SAS, for
// QRTB) is responsible for instead.
package postprocess

import (
	"strconv"

	"github.com/enodebd-net/enodebd-acs/pkg/config"
	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
	"github.com/enodebd-net/enodebd-acs/pkg/fsm"
	"github.com/enodebd-net/enodebd-acs/pkg/opconfig"
)

// DefaultPerfMgmtUploadInterval is the fixed interval every Baicells
// model forces regardless of what the operator config requests.
const DefaultPerfMgmtUploadInterval = 900

// baseline returns the overrides shared by every Baicells model:
// ADMIN_STATE is dropped (the device's own FAPControl state machine
// owns it, not the operator-desired config), the perf-mgmt upload
// interval is pinned, and PLMN 1 is marked cell-reserved so the
// primary PLMN is always selectable by UEs camping on this cell.
func baseline(desired *config.Store) {
	desired.DeleteParameter(datamodel.ParamAdminState)
	_ = desired.SetParameter(datamodel.ParamPerfMgmtUploadInterval, strconv.Itoa(DefaultPerfMgmtUploadInterval))

	plmn1 := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 1}
	if desired.HasObject(plmn1) {
		_ = desired.SetParameterForObject(plmn1, datamodel.ParamPLMNCellReserved, "true")
	}
}

// QAFA returns the QAFA/QAFAGPS post-processor: the shared baseline
// only, since neither variant has SAS-owned parameters.
func QAFA(mconfig opconfig.GatewayConfig, svc opconfig.ServiceConfig) fsm.PostProcessor {
	return func(desired *config.Store) {
		baseline(desired)
	}
}

// QAFB returns the QAFB post-processor: identical to QAFA today, kept
// as its own entry point because the two model keys dispatch to
// distinct factories and a
// future firmware-specific override belongs here, not in QAFA's.
func QAFB(mconfig opconfig.GatewayConfig, svc opconfig.ServiceConfig) fsm.PostProcessor {
	return func(desired *config.Store) {
		baseline(desired)
	}
}

// QRTB returns the QRTB post-processor: the shared baseline, plus
// SAS_ENABLED=1 (CBRS units always run under SAS coordination) and
// deletion of the RF parameters notify_dp computes from the SAS grant
// — leaving them in desired_cfg here would race the next
// session's values-to-set pass against whatever notify_dp just wrote.
func QRTB(mconfig opconfig.GatewayConfig, svc opconfig.ServiceConfig) fsm.PostProcessor {
	return func(desired *config.Store) {
		baseline(desired)
		_ = desired.SetParameter(datamodel.ParamSASEnabled, "true")

		for _, name := range []datamodel.ParameterName{
			datamodel.ParamEARFCNDL,
			datamodel.ParamEARFCNUL,
			datamodel.ParamBand,
			datamodel.ParamDLBandwidth,
			datamodel.ParamULBandwidth,
			datamodel.ParamPowerSpectralDensity,
		} {
			desired.DeleteParameter(name)
		}
	}
}
