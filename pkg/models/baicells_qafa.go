package models

import "github.com/enodebd-net/enodebd-acs/pkg/datamodel"

// qafaGPSPrefix is the GPS parameter path family most QAFA firmware
// builds expose (X_BAICELLS_COM_GPS.*).
const qafaGPSPrefix = "Device.DeviceInfo.X_BAICELLS_COM_GPS"

// NewBaicellsQAFA builds the data model for the Baicells QAFA indoor
// small cell: apply-in-place invasive policy, no CBRS extras. This is
// the X_BAICELLS_COM_GPS.* firmware variant; see NewBaicellsQAFAGPS
// for the FAP.GPS.* variant.
func NewBaicellsQAFA() *datamodel.DataModel {
	params := commonScalarParams(qafaGPSPrefix)
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
