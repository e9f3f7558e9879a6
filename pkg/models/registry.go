package models

import "github.com/enodebd-net/enodebd-acs/pkg/datamodel"

// Registered (OUI, HardwareVersion, SoftwareVersion) triples for the
// Baicells family. HardwareVersion
// is left blank (matches any) for models that don't vary behavior by
// hardware revision; SoftwareVersion distinguishes firmware variants
// that changed their data model (the two QAFA GPS declarations).
var (
	qafaHW    = ""
	qafaSW    = "BaiBS_QAFA"
	qafaGPSSW = "BaiBS_QAFA_FAPGPS"
	qafbSW    = "BaiBS_QAFB"
	qrtbSW    = "BaiBS_QRTB"
)

// NewRegistry builds the populated registry used by the manager to
// dispatch Informs to a concrete data model. Triples are
// registered most-specific first; a catch-all QAFA entry with a blank
// software-version prefix is intentionally omitted — an unrecognized
// software version is an UnknownDeviceError, not silently mapped to
// QAFA.
func NewRegistry() *datamodel.Registry {
	r := datamodel.NewRegistry()

	r.RegisterModel(datamodel.ModelBaicellsQAFA, NewBaicellsQAFA())
	r.RegisterModel(datamodel.ModelBaicellsQAFAGPS, NewBaicellsQAFAGPS())
	r.RegisterModel(datamodel.ModelBaicellsQAFB, NewBaicellsQAFB())
	r.RegisterModel(datamodel.ModelBaicellsQRTB, NewBaicellsQRTB())

	r.Register(datamodel.DeviceTriple{OUI: baicellsOUI, HardwareVersion: qafaHW, SoftwareVersion: qafaSW}, datamodel.ModelBaicellsQAFA)
	r.Register(datamodel.DeviceTriple{OUI: baicellsOUI, HardwareVersion: qafaHW, SoftwareVersion: qafaGPSSW}, datamodel.ModelBaicellsQAFAGPS)
	r.Register(datamodel.DeviceTriple{OUI: baicellsOUI, HardwareVersion: qafaHW, SoftwareVersion: qafbSW}, datamodel.ModelBaicellsQAFB)
	r.Register(datamodel.DeviceTriple{OUI: baicellsOUI, HardwareVersion: qafaHW, SoftwareVersion: qrtbSW}, datamodel.ModelBaicellsQRTB)

	return r
}
