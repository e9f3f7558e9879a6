package models

import "github.com/enodebd-net/enodebd-acs/pkg/datamodel"

// qrtbGPSPrefix matches the CBRS SKU's GPS object location — QRTB
// units carry a GPS receiver for SAS location reporting and expose it
// under the same FAP.GPS tree as the QAFA GPS variant.
const qrtbGPSPrefix = "Device.FAP.GPS"

// NewBaicellsQRTB builds the data model for the Baicells QRTB CBRS
// SKU: apply-via-reboot invasive policy, plus the SAS-facing
// parameters the notify_dp state writes into desired_cfg.
func NewBaicellsQRTB() *datamodel.DataModel {
	params := commonScalarParams(qrtbGPSPrefix)
	commonFamilyParams(params)
	addSASParams(params)
	numbered, templates := commonObjectFamilies()
	forEnb, forMagma := commonTransforms()

	loadParams := append([]datamodel.ParameterName{}, commonLoadParameters...)
	loadParams = append(loadParams, datamodel.ParamSASEnabled)

	return datamodel.NewDataModel(datamodel.Spec{
		Parameters:          params,
		NumberedParamNames:  numbered,
		ObjectTemplatePaths: templates,
		TransformsForENB:    forEnb,
		TransformsForMagma:  forMagma,
		LoadParameters:      loadParams,
		NumPLMNs:            defaultNumPLMNs,
		NumNeighborCell:     defaultNumNeighborCell,
		NumNeighborFreq:     defaultNumNeighborFreq,
	})
}

func addSASParams(params map[datamodel.ParameterName]datamodel.TrParam) {
	params[datamodel.ParamSASEnabled] = datamodel.TrParam{
		Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.CBRS.SASEnable", Type: datamodel.ParameterTypeBool,
	}
	params[datamodel.ParamSASRadioEnable] = datamodel.TrParam{
		Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.CBRS.SASRadioEnable", Type: datamodel.ParameterTypeBool,
	}
	params[datamodel.ParamPowerSpectralDensity] = datamodel.TrParam{
		Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.RF.PowerSpectralDensity", Type: datamodel.ParameterTypeInt, IsInvasive: true,
	}
}
