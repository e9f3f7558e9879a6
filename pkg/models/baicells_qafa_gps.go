package models

import "github.com/enodebd-net/enodebd-acs/pkg/datamodel"

// qafaGPSAltPrefix is the GPS parameter path family later QAFA
// firmware revisions expose — the GPS status object moved out of the
// vendor-extension namespace and under the standard FAP.GPS tree.
// Both variants stay registered under distinct software-version keys
// rather than silently picking one.
const qafaGPSAltPrefix = "Device.FAP.GPS"

// NewBaicellsQAFAGPS builds the FAP.GPS.* firmware variant of the QAFA
// data model. Everything else is identical to NewBaicellsQAFA.
func NewBaicellsQAFAGPS() *datamodel.DataModel {
	params := commonScalarParams(qafaGPSAltPrefix)
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
