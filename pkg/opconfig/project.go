package opconfig

import (
	"strconv"

	"github.com/enodebd-net/enodebd-acs/pkg/config"
	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
)

// Project writes the operator's GatewayConfig/ServiceConfig fields
// into desired_cfg, in canonical form. This runs before a model's
// ConfigPostProcessor: projection lays down what the operator
// asked for; the post-processor then applies model-specific overrides
// on top (dropping parameters the device owns locally, forcing fixed
// intervals the operator config doesn't expose).
//
// Parameters the target data model doesn't declare are silently
// skipped rather than erroring — not every model exposes every field
// (e.g. only QRTB declares SAS_ENABLED).
func Project(desired *config.Store, dm *datamodel.DataModel, gw GatewayConfig, svc ServiceConfig) {
	set := func(name datamodel.ParameterName, value string) {
		if _, ok := dm.Lookup(name); !ok {
			return
		}
		_ = desired.SetParameter(name, value)
	}

	if gw.EARFCNDL > 0 {
		set(datamodel.ParamEARFCNDL, strconv.Itoa(gw.EARFCNDL))
	}
	if gw.PCI > 0 {
		set(datamodel.ParamPCI, strconv.Itoa(gw.PCI))
	}
	if gw.CellID > 0 {
		set(datamodel.ParamCellID, strconv.Itoa(gw.CellID))
	}
	set(datamodel.ParamAdminState, boolStr(gw.TransmitEnabled))
	set(datamodel.ParamSASEnabled, boolStr(gw.SASEnabled))

	if svc.Tac > 0 {
		set(datamodel.ParamTAC, strconv.Itoa(svc.Tac))
	}
	if svc.SpecialSubframePattern > 0 {
		set(datamodel.ParamSpecialSubframePattern, strconv.Itoa(svc.SpecialSubframePattern))
	}
	set(datamodel.ParamSubframeAssignment, boolStr(svc.SubframeAssignment != 0))
	if svc.PerfMgmtUploadInterval > 0 {
		set(datamodel.ParamPerfMgmtUploadInterval, strconv.Itoa(svc.PerfMgmtUploadInterval))
	}

	if svc.PLMNID != "" {
		plmn1 := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 1}
		if !desired.HasObject(plmn1) {
			_ = desired.AddObject(plmn1)
		}
		_ = desired.SetParameterForObject(plmn1, datamodel.ParamPLMNPLMNID, svc.PLMNID)
		_ = desired.SetParameterForObject(plmn1, datamodel.ParamPLMNEnable, "true")
	}
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
