package models

import "github.com/enodebd-net/enodebd-acs/pkg/datamodel"

// qafbGPSPrefix matches the newer QAFB firmware's GPS object location,
// which moved again relative to both QAFA variants.
const qafbGPSPrefix = "Device.DeviceInfo.X_BAICELLS_COM_GPSSTATUS"

// NewBaicellsQAFB builds the data model for the newer-firmware QAFB
// outdoor small cell. Same apply-in-place invasive policy and the same
// PLMN/neighbor-cell/neighbor-frequency capacities as QAFA.
func NewBaicellsQAFB() *datamodel.DataModel {
	params := commonScalarParams(qafbGPSPrefix)
	commonFamilyParams(params)
	numbered, templates := commonObjectFamilies()
	forEnb, forMagma := commonTransforms()

	return datamodel.NewDataModel(datamodel.Spec{
		Parameters:          params,
		NumberedParamNames:  numbered,
		ObjectTemplatePaths: templates,
		TransformsForENB:    forEnb,
		TransformsForMagma:  forMagma,
		LoadParameters:      commonLoadParameters,
		NumPLMNs:            defaultNumPLMNs,
		NumNeighborCell:     defaultNumNeighborCell,
		NumNeighborFreq:     defaultNumNeighborFreq,
	})
}
