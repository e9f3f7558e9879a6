// Package models declares the concrete per-device data models the
// registry dispatches sessions to: the Baicells QAFA/QAFB/QRTB
// family. The tables map each canonical parameter name to the TR-069
// wire path, type, and invasiveness the firmware actually exposes.
package models

import "github.com/enodebd-net/enodebd-acs/pkg/datamodel"

// baicellsOUI is the Baicells manufacturer OUI declared on every
// registered triple for this family.
const baicellsOUI = "48BF74"

// commonScalarParams returns the scalar (non-indexed) parameter table
// shared by every Baicells model. gpsPrefix lets the two QAFA GPS
// firmware variants supply their own path family while reusing
// everything else.
func commonScalarParams(gpsPrefix string) map[datamodel.ParameterName]datamodel.TrParam {
	return map[datamodel.ParameterName]datamodel.TrParam{
		datamodel.ParamDeviceOUI:       {Path: "Device.DeviceInfo.ManufacturerOUI", Type: datamodel.ParameterTypeString},
		datamodel.ParamSerialNumber:    {Path: "Device.DeviceInfo.SerialNumber", Type: datamodel.ParameterTypeString},
		datamodel.ParamSoftwareVersion: {Path: "Device.DeviceInfo.SoftwareVersion", Type: datamodel.ParameterTypeString},
		datamodel.ParamHardwareVersion: {Path: "Device.DeviceInfo.HardwareVersion", Type: datamodel.ParameterTypeString},
		datamodel.ParamPeriodicInformInterval: {
			Path: "Device.ManagementServer.PeriodicInformInterval", Type: datamodel.ParameterTypeUnsignedInt,
		},

		datamodel.ParamEARFCNDL:    {Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.RF.EARFCNDL", Type: datamodel.ParameterTypeUnsignedInt, IsInvasive: true},
		datamodel.ParamEARFCNUL:    {Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.RF.EARFCNUL", Type: datamodel.ParameterTypeUnsignedInt, IsInvasive: true},
		datamodel.ParamBand:        {Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.RF.FreqBandIndicator", Type: datamodel.ParameterTypeUnsignedInt, IsInvasive: true},
		datamodel.ParamDLBandwidth: {Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.RF.DLBandwidth", Type: datamodel.ParameterTypeString, IsInvasive: true},
		datamodel.ParamULBandwidth: {Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.RF.ULBandwidth", Type: datamodel.ParameterTypeString, IsInvasive: true},
		datamodel.ParamPCI:         {Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.RF.PhyCellID", Type: datamodel.ParameterTypeUnsignedInt, IsInvasive: true},
		datamodel.ParamCellID:      {Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.Common.CellIdentity", Type: datamodel.ParameterTypeUnsignedInt, IsInvasive: true},
		datamodel.ParamTAC:         {Path: "Device.Services.FAPService.1.CellConfig.LTE.EPC.TAC", Type: datamodel.ParameterTypeUnsignedInt, IsInvasive: true},

		datamodel.ParamAdminState: {Path: "Device.Services.FAPService.1.FAPControl.LTE.AdminState", Type: datamodel.ParameterTypeBool},
		datamodel.ParamOpState:    {Path: "Device.Services.FAPService.1.FAPControl.LTE.OpState", Type: datamodel.ParameterTypeBool, IsOptional: true},
		datamodel.ParamCellBarred: {Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.CellRestriction.CellBarred", Type: datamodel.ParameterTypeBool},
		datamodel.ParamSubframeAssignment: {
			Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.PHY.TDDFrame.SubFrameAssignment",
			Type: datamodel.ParameterTypeBool, IsInvasive: true, IsOptional: true,
		},
		datamodel.ParamSpecialSubframePattern: {
			Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.PHY.TDDFrame.SpecialSubFramePatterns",
			Type: datamodel.ParameterTypeUnsignedInt, IsInvasive: true, IsOptional: true,
		},

		datamodel.ParamRFTxStatus:   {Path: "Device.Services.FAPService.1.FAPControl.LTE.RFTxStatus", Type: datamodel.ParameterTypeBool, IsOptional: true},
		datamodel.ParamGPSStatus:    {Path: gpsPrefix + ".GPSStatus", Type: datamodel.ParameterTypeBool, IsOptional: true},
		datamodel.ParamGPSLatitude:  {Path: gpsPrefix + ".LatitudeValue", Type: datamodel.ParameterTypeInt, IsOptional: true},
		datamodel.ParamGPSLongitude: {Path: gpsPrefix + ".LongitudeValue", Type: datamodel.ParameterTypeInt, IsOptional: true},
		datamodel.ParamMMEStatus:    {Path: "Device.Services.FAPService.1.FAPControl.LTE.Gateway.S1SigLinkStatus", Type: datamodel.ParameterTypeBool, IsOptional: true},
		datamodel.ParamPTPStatus:    {Path: "Device.DeviceInfo.X_BAICELLS_COM_PTP_STATUS", Type: datamodel.ParameterTypeBool, IsOptional: true},
		datamodel.ParamREMStatus:    {Path: "Device.DeviceInfo.X_BAICELLS_COM_REM_STATUS", Type: datamodel.ParameterTypeBool, IsOptional: true},

		datamodel.ParamNumPLMNs:        {Path: "Device.Services.FAPService.1.CellConfig.LTE.EPC.PLMNListNumberOfEntries", Type: datamodel.ParameterTypeUnsignedInt},
		datamodel.ParamNumNeighborCell: {Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.NeighborList.X_BAICELLS_COM_NeighborListNumberOfEntries", Type: datamodel.ParameterTypeUnsignedInt, IsOptional: true},
		datamodel.ParamNumNeighborFreq: {Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.NeighborFreqList.X_BAICELLS_COM_NeighborFreqListNumberOfEntries", Type: datamodel.ParameterTypeUnsignedInt, IsOptional: true},

		datamodel.ParamPerfMgmtUploadInterval: {Path: "Device.FAP.PerfMgmt.Config.1.PeriodicUploadInterval", Type: datamodel.ParameterTypeUnsignedInt, IsOptional: true},

		// Synthetic download parameters — never cross the wire.
		datamodel.ParamDownloadURL:            {Path: datamodel.InvalidTrParamPath, Type: datamodel.ParameterTypeString},
		datamodel.ParamDownloadUser:           {Path: datamodel.InvalidTrParamPath, Type: datamodel.ParameterTypeString, IsOptional: true},
		datamodel.ParamDownloadPass:           {Path: datamodel.InvalidTrParamPath, Type: datamodel.ParameterTypeString, IsOptional: true},
		datamodel.ParamDownloadFileType:       {Path: datamodel.InvalidTrParamPath, Type: datamodel.ParameterTypeString},
		datamodel.ParamDownloadFileSize:       {Path: datamodel.InvalidTrParamPath, Type: datamodel.ParameterTypeUnsignedInt},
		datamodel.ParamDownloadMD5:            {Path: datamodel.InvalidTrParamPath, Type: datamodel.ParameterTypeString, IsOptional: true},
		datamodel.ParamDownloadTargetFileName: {Path: datamodel.InvalidTrParamPath, Type: datamodel.ParameterTypeString, IsOptional: true},
	}
}

// commonObjectFamilies returns the three indexed-collection templates
// (PLMN, neighbor cell, neighbor freq) shared by every Baicells model.
func commonObjectFamilies() (map[datamodel.ObjectFamily][]datamodel.ParameterName, map[datamodel.ObjectFamily]string) {
	numbered := map[datamodel.ObjectFamily][]datamodel.ParameterName{
		datamodel.FamilyPLMN: {
			datamodel.ParamPLMNPLMNID,
			datamodel.ParamPLMNEnable,
			datamodel.ParamPLMNCellReserved,
		},
		datamodel.FamilyNeighborCell: {
			datamodel.ParamNeighborCellPCI,
			datamodel.ParamNeighborCellEARFCN,
		},
		datamodel.FamilyNeighborFreq: {
			datamodel.ParamNeighborFreqEARFCN,
		},
	}
	templates := map[datamodel.ObjectFamily]string{
		datamodel.FamilyPLMN:         "Device.Services.FAPService.1.CellConfig.LTE.EPC.PLMNList.%d.",
		datamodel.FamilyNeighborCell: "Device.Services.FAPService.1.CellConfig.LTE.RAN.NeighborList.X_BAICELLS_COM_Cell.%d.",
		datamodel.FamilyNeighborFreq: "Device.Services.FAPService.1.CellConfig.LTE.RAN.NeighborFreqList.X_BAICELLS_COM_Freq.%d.",
	}
	return numbered, templates
}

// commonFamilyParams adds the per-family child TrParams into params,
// rendered against each family's template path so RenderPath can
// substitute the instance index directly — the %d placeholder lives
// only in the declared paths, never pre-rendered.
func commonFamilyParams(params map[datamodel.ParameterName]datamodel.TrParam) {
	params[datamodel.ParamPLMNPLMNID] = datamodel.TrParam{
		Path: "Device.Services.FAPService.1.CellConfig.LTE.EPC.PLMNList.%d.PLMNID", Type: datamodel.ParameterTypeString,
	}
	params[datamodel.ParamPLMNEnable] = datamodel.TrParam{
		Path: "Device.Services.FAPService.1.CellConfig.LTE.EPC.PLMNList.%d.Enable", Type: datamodel.ParameterTypeBool,
	}
	params[datamodel.ParamPLMNCellReserved] = datamodel.TrParam{
		Path: "Device.Services.FAPService.1.CellConfig.LTE.EPC.PLMNList.%d.CellReservedForOperatorUse", Type: datamodel.ParameterTypeBool, IsOptional: true,
	}
	params[datamodel.ParamNeighborCellPCI] = datamodel.TrParam{
		Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.NeighborList.X_BAICELLS_COM_Cell.%d.PCID", Type: datamodel.ParameterTypeUnsignedInt, IsOptional: true,
	}
	params[datamodel.ParamNeighborCellEARFCN] = datamodel.TrParam{
		Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.NeighborList.X_BAICELLS_COM_Cell.%d.EARFCN", Type: datamodel.ParameterTypeUnsignedInt, IsOptional: true,
	}
	params[datamodel.ParamNeighborFreqEARFCN] = datamodel.TrParam{
		Path: "Device.Services.FAPService.1.CellConfig.LTE.RAN.NeighborFreqList.X_BAICELLS_COM_Freq.%d.EARFCN", Type: datamodel.ParameterTypeUnsignedInt, IsOptional: true,
	}
}

// commonTransforms returns the bidirectional converters shared across
// the family: boolean wire encoding ("1"/"0", also used for the admin
// state) and GPS decimal scaling.
func commonTransforms() (map[datamodel.ParameterName]datamodel.Transform, map[datamodel.ParameterName]datamodel.Transform) {
	forEnb := map[datamodel.ParameterName]datamodel.Transform{
		datamodel.ParamAdminState:         datamodel.BoolMagmaToEnb,
		datamodel.ParamOpState:            datamodel.BoolMagmaToEnb,
		datamodel.ParamCellBarred:         datamodel.BoolMagmaToEnb,
		datamodel.ParamSubframeAssignment: datamodel.BoolMagmaToEnb,
		datamodel.ParamRFTxStatus:         datamodel.BoolMagmaToEnb,
		datamodel.ParamGPSStatus:          datamodel.BoolMagmaToEnb,
		datamodel.ParamMMEStatus:          datamodel.BoolMagmaToEnb,
		datamodel.ParamPTPStatus:          datamodel.BoolMagmaToEnb,
		datamodel.ParamREMStatus:          datamodel.BoolMagmaToEnb,
		datamodel.ParamGPSLatitude:        datamodel.GPSCoordMagmaToEnb,
		datamodel.ParamGPSLongitude:       datamodel.GPSCoordMagmaToEnb,
		datamodel.ParamPLMNEnable:         datamodel.BoolMagmaToEnb,
		datamodel.ParamPLMNCellReserved:   datamodel.BoolMagmaToEnb,
		datamodel.ParamSASEnabled:         datamodel.BoolMagmaToEnb,
		datamodel.ParamSASRadioEnable:     datamodel.BoolMagmaToEnb,
	}
	forMagma := map[datamodel.ParameterName]datamodel.Transform{
		datamodel.ParamAdminState:         datamodel.BoolEnbToMagma,
		datamodel.ParamOpState:            datamodel.BoolEnbToMagma,
		datamodel.ParamCellBarred:         datamodel.BoolEnbToMagma,
		datamodel.ParamSubframeAssignment: datamodel.BoolEnbToMagma,
		datamodel.ParamRFTxStatus:         datamodel.BoolEnbToMagma,
		datamodel.ParamGPSStatus:          datamodel.BoolEnbToMagma,
		datamodel.ParamMMEStatus:          datamodel.BoolEnbToMagma,
		datamodel.ParamPTPStatus:          datamodel.BoolEnbToMagma,
		datamodel.ParamREMStatus:          datamodel.BoolEnbToMagma,
		datamodel.ParamGPSLatitude:        datamodel.GPSCoordEnbToMagma,
		datamodel.ParamGPSLongitude:       datamodel.GPSCoordEnbToMagma,
		datamodel.ParamPLMNEnable:         datamodel.BoolEnbToMagma,
		datamodel.ParamPLMNCellReserved:   datamodel.BoolEnbToMagma,
		datamodel.ParamSASEnabled:         datamodel.BoolEnbToMagma,
		datamodel.ParamSASRadioEnable:     datamodel.BoolEnbToMagma,
	}
	return forEnb, forMagma
}

// commonLoadParameters is the seed list requested at session start,
// shared across the family (the get_transient_params pass requests its
// own fixed status list separately — see fsm.transientStatusNames).
var commonLoadParameters = []datamodel.ParameterName{
	datamodel.ParamSerialNumber,
	datamodel.ParamSoftwareVersion,
	datamodel.ParamHardwareVersion,
	datamodel.ParamPeriodicInformInterval,
	datamodel.ParamEARFCNDL,
	datamodel.ParamEARFCNUL,
	datamodel.ParamBand,
	datamodel.ParamDLBandwidth,
	datamodel.ParamULBandwidth,
	datamodel.ParamPCI,
	datamodel.ParamCellID,
	datamodel.ParamTAC,
	datamodel.ParamAdminState,
	datamodel.ParamCellBarred,
	datamodel.ParamNumPLMNs,
}

const (
	defaultNumPLMNs        = 6
	defaultNumNeighborCell = 16
	defaultNumNeighborFreq = 8
)
