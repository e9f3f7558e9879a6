package postprocess

import (
	"testing"

	"github.com/enodebd-net/enodebd-acs/pkg/config"
	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
	"github.com/enodebd-net/enodebd-acs/pkg/models"
	"github.com/enodebd-net/enodebd-acs/pkg/opconfig"
)

func TestBaselineDropsAdminStateAndPinsPerfMgmtInterval(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	desired := config.NewStore(dm)
	_ = desired.SetParameter(datamodel.ParamAdminState, "true")

	QAFA(opconfig.GatewayConfig{}, opconfig.ServiceConfig{})(desired)

	if desired.HasParameter(datamodel.ParamAdminState) {
		t.Error("ADMIN_STATE should be dropped by the baseline post-processor")
	}
	v, ok := desired.GetParameter(datamodel.ParamPerfMgmtUploadInterval)
	if !ok || v != "900" {
		t.Errorf("PERF_MGMT_UPLOAD_INTERVAL = %q, %v; want 900, true", v, ok)
	}
}

func TestBaselineMarksPLMN1CellReservedIfPresent(t *testing.T) {
	dm := models.NewBaicellsQAFA()
	desired := config.NewStore(dm)
	plmn1 := datamodel.ObjectID{Family: datamodel.FamilyPLMN, Index: 1}
	_ = desired.AddObject(plmn1)

	QAFA(opconfig.GatewayConfig{}, opconfig.ServiceConfig{})(desired)

	v, ok := desired.GetParameterForObject(plmn1, datamodel.ParamPLMNCellReserved)
	if !ok || v != "true" {
		t.Errorf("PLMN 1 cell-reserved = %q, %v; want true, true", v, ok)
	}
}

func TestQRTBEnablesSASAndDeletesSASOwnedRFParams(t *testing.T) {
	dm := models.NewBaicellsQRTB()
	desired := config.NewStore(dm)
	for _, name := range []datamodel.ParameterName{
		datamodel.ParamEARFCNDL, datamodel.ParamEARFCNUL, datamodel.ParamBand,
		datamodel.ParamDLBandwidth, datamodel.ParamULBandwidth, datamodel.ParamPowerSpectralDensity,
	} {
		_ = desired.SetParameter(name, "1")
	}

	QRTB(opconfig.GatewayConfig{}, opconfig.ServiceConfig{})(desired)

	if v, _ := desired.GetParameter(datamodel.ParamSASEnabled); v != "true" {
		t.Errorf("SAS_ENABLED = %q, want true", v)
	}
	for _, name := range []datamodel.ParameterName{
		datamodel.ParamEARFCNDL, datamodel.ParamEARFCNUL, datamodel.ParamBand,
		datamodel.ParamDLBandwidth, datamodel.ParamULBandwidth, datamodel.ParamPowerSpectralDensity,
	} {
		if desired.HasParameter(name) {
			t.Errorf("%s should have been deleted by the QRTB post-processor (SAS-owned)", name)
		}
	}
}

func TestQAFBMatchesQAFABaseline(t *testing.T) {
	dm := models.NewBaicellsQAFB()
	desired := config.NewStore(dm)
	_ = desired.SetParameter(datamodel.ParamAdminState, "true")

	QAFB(opconfig.GatewayConfig{}, opconfig.ServiceConfig{})(desired)

	if desired.HasParameter(datamodel.ParamAdminState) {
		t.Error("ADMIN_STATE should be dropped by the QAFB post-processor too")
	}
}
