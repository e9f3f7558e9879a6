package datamodel

import "fmt"

// ParameterName is the canonical, model-neutral key for a single scalar
// parameter (e.g. EARFCNDL, ADMIN_STATE, SERIAL_NUMBER) or for a child
// field within an indexed object template (e.g. PLMN_PLMNID, the
// PLMNID field of every PLMN_N[i] instance).
type ParameterName string

// Scalar (non-indexed) canonical parameter names shared across models.
const (
	ParamDeviceOUI              ParameterName = "DEVICE_OUI"
	ParamSerialNumber           ParameterName = "SERIAL_NUMBER"
	ParamSoftwareVersion        ParameterName = "SOFTWARE_VERSION"
	ParamHardwareVersion        ParameterName = "HARDWARE_VERSION"
	ParamPeriodicInformInterval ParameterName = "PERIODIC_INFORM_INTERVAL"

	ParamEARFCNDL    ParameterName = "EARFCNDL"
	ParamEARFCNUL    ParameterName = "EARFCNUL"
	ParamBand        ParameterName = "BAND"
	ParamDLBandwidth ParameterName = "DL_BANDWIDTH"
	ParamULBandwidth ParameterName = "UL_BANDWIDTH"
	ParamPCI         ParameterName = "PCI"
	ParamCellID      ParameterName = "CELL_ID"
	ParamTAC         ParameterName = "TAC"

	ParamAdminState             ParameterName = "ADMIN_STATE"
	ParamOpState                ParameterName = "OP_STATE"
	ParamCellBarred             ParameterName = "CELL_BARRED"
	ParamSubframeAssignment     ParameterName = "SUBFRAME_ASSIGNMENT"
	ParamSpecialSubframePattern ParameterName = "SPECIAL_SUBFRAME_PATTERN"

	ParamRFTxStatus   ParameterName = "RF_TX_STATUS"
	ParamGPSStatus    ParameterName = "GPS_STATUS"
	ParamGPSLatitude  ParameterName = "GPS_LAT"
	ParamGPSLongitude ParameterName = "GPS_LONG"
	ParamMMEStatus    ParameterName = "MME_STATUS"
	ParamPTPStatus    ParameterName = "PTP_STATUS"
	ParamREMStatus    ParameterName = "REM_STATUS"

	ParamNumPLMNs        ParameterName = "NUM_PLMNS"
	ParamNumNeighborCell ParameterName = "NUM_LTE_NEIGHBOR_CELL"
	ParamNumNeighborFreq ParameterName = "NUM_LTE_NEIGHBOR_FREQ"

	ParamPerfMgmtUploadInterval ParameterName = "PERF_MGMT_UPLOAD_INTERVAL"

	// CBRS-only (QRTB)
	ParamSASEnabled           ParameterName = "SAS_ENABLED"
	ParamSASRadioEnable       ParameterName = "SAS_RADIO_ENABLE"
	ParamPowerSpectralDensity ParameterName = "POWER_SPECTRAL_DENSITY"

	// Synthetic — never cross the wire, path is InvalidTrParamPath.
	ParamDownloadURL            ParameterName = "DOWNLOAD_URL"
	ParamDownloadUser           ParameterName = "DOWNLOAD_USER"
	ParamDownloadPass           ParameterName = "DOWNLOAD_PASS"
	ParamDownloadFileType       ParameterName = "DOWNLOAD_FILE_TYPE"
	ParamDownloadFileSize       ParameterName = "DOWNLOAD_FILE_SIZE"
	ParamDownloadMD5            ParameterName = "DOWNLOAD_MD5"
	ParamDownloadTargetFileName ParameterName = "DOWNLOAD_TARGET_FILE_NAME"
)

// ObjectFamily names an indexed collection template: PLMN entries,
// neighbor-cell entries, neighbor-frequency entries. The data model's
// NumberedParamNames maps a family to the child ParameterNames every
// instance carries; its ObjectTemplatePaths maps a family to a wire
// path pattern containing exactly one "%d" placeholder for the
// instance index.
type ObjectFamily string

const (
	FamilyPLMN         ObjectFamily = "PLMN"
	FamilyNeighborCell ObjectFamily = "NEIGHBOR_CELL_LIST"
	FamilyNeighborFreq ObjectFamily = "NEIGHBOR_FREQ_LIST"
)

// Per-family child parameter names (the %d-indexed object's fields).
const (
	ParamPLMNPLMNID       ParameterName = "PLMN_PLMNID"
	ParamPLMNEnable       ParameterName = "PLMN_ENABLE"
	ParamPLMNCellReserved ParameterName = "PLMN_CELL_RESERVED"

	ParamNeighborCellPCI    ParameterName = "NEIGHBOR_CELL_PCI"
	ParamNeighborCellEARFCN ParameterName = "NEIGHBOR_CELL_EARFCN"

	ParamNeighborFreqEARFCN ParameterName = "NEIGHBOR_FREQ_EARFCN"
)

// ObjectID identifies one instance of an indexed family, or the
// synthetic root object for scalar (non-indexed) parameters.
type ObjectID struct {
	Family ObjectFamily
	Index  int
}

// RootObject is the sentinel object-name for top-level scalar
// parameters that do not belong to any indexed family.
var RootObject = ObjectID{}

// IsRoot reports whether this is the synthetic root object.
func (o ObjectID) IsRoot() bool { return o.Family == "" }

// Name renders the object-name used as a configuration-store key, e.g.
// "PLMN.1". The root object renders as "ROOT".
func (o ObjectID) Name() string {
	if o.IsRoot() {
		return "ROOT"
	}
	return fmt.Sprintf("%s.%d", o.Family, o.Index)
}

// WithIndex returns a copy of o with a different instance index, used
// by the AddObject-response remap: the device-assigned
// InstanceNumber replaces the tentative slot the engine reserved.
func (o ObjectID) WithIndex(index int) ObjectID {
	return ObjectID{Family: o.Family, Index: index}
}
