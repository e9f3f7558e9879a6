// Package tr069 defines the parsed TR-069 (CWMP) message variants the
// session state machine consumes and produces. Wire framing (the SOAP
// envelope, HTTP chunking) is an external collaborator's concern — this
// package only holds the already-parsed Go values that cross that
// boundary, plus the error taxonomy raised while processing them.
package tr069

// ParameterValueStruct is a single (path, value) pair as it appears on
// the wire, e.g. in GetParameterValuesResponse or as an element of a
// SetParameterValues request.
type ParameterValueStruct struct {
	Name  string
	Value string
	Type  string
}

// DeviceID identifies the reporting device in an Inform message.
type DeviceID struct {
	Manufacturer    string
	OUI             string
	ProductClass    string
	SerialNumber    string
	HardwareVersion string
	SoftwareVersion string
}

// EventCode is one entry of an Inform's EventCodes list, e.g. "0 BOOTSTRAP".
type EventCode string

// Common event codes seen in Inform messages.
const (
	EventBootstrap    EventCode = "0 BOOTSTRAP"
	EventBoot         EventCode = "1 BOOT"
	EventPeriodic     EventCode = "2 PERIODIC"
	EventValueChange  EventCode = "4 VALUE CHANGE"
	EventConnReq      EventCode = "6 CONNECTION REQUEST"
	EventTransferComp EventCode = "7 TRANSFER COMPLETE"
	EventMReboot      EventCode = "M Reboot"
)

// Inbound is implemented by every message variant the engine can
// receive in a session. A concrete type asserts to the variant the
// state expects via a type switch in its Read implementation.
type Inbound interface {
	inboundMessage()
}

// Inform is the session-initiating message from device to ACS.
type Inform struct {
	EventCodes []EventCode
	DeviceID   DeviceID
	Parameters []ParameterValueStruct // values the device pushed unsolicited, if any
}

func (Inform) inboundMessage() {}

// GetRPCMethodsResponse lists the RPC methods the device supports.
// The engine does not currently gate behavior on its contents; it is
// consumed only to advance past get_rpc_methods.
type GetRPCMethodsResponse struct {
	MethodList []string
}

func (GetRPCMethodsResponse) inboundMessage() {}

// GetParameterValuesResponse answers a GetParameterValues request.
type GetParameterValuesResponse struct {
	ParameterList []ParameterValueStruct
}

func (GetParameterValuesResponse) inboundMessage() {}

// Status is the shared result code on Set/Add/Delete responses. Zero
// means success; any other value surfaces a ProtocolFault.
type Status int

const StatusOK Status = 0

// SetParameterValuesResponse answers a SetParameterValues request.
type SetParameterValuesResponse struct {
	Status Status
}

func (SetParameterValuesResponse) inboundMessage() {}

// AddObjectResponse answers an AddObject request, carrying the
// device-assigned instance number for the new object.
type AddObjectResponse struct {
	Status         Status
	InstanceNumber int
}

func (AddObjectResponse) inboundMessage() {}

// DeleteObjectResponse answers a DeleteObject request.
type DeleteObjectResponse struct {
	Status Status
}

func (DeleteObjectResponse) inboundMessage() {}

// DownloadResponse answers a Download request.
type DownloadResponse struct {
	Status Status
}

func (DownloadResponse) inboundMessage() {}

// RebootResponse answers a Reboot request.
type RebootResponse struct{}

func (RebootResponse) inboundMessage() {}

// FactoryResetResponse answers a FactoryReset request.
type FactoryResetResponse struct{}

func (FactoryResetResponse) inboundMessage() {}

// Fault is a SOAP Fault carried in place of the expected response.
type Fault struct {
	FaultCode   int
	FaultString string
}

func (Fault) inboundMessage() {}

// DummyInput is an empty envelope — sent by the device to poll for
// outstanding work, and sent by the engine to close a round-trip.
type DummyInput struct{}

func (DummyInput) inboundMessage() {}

// Outbound is implemented by every message variant the engine can emit.
type Outbound interface {
	outboundMessage()
}

// GetRPCMethods asks the device to enumerate the RPCs it supports.
type GetRPCMethods struct{}

func (GetRPCMethods) outboundMessage() {}

// GetParameterValues requests the named parameter values.
type GetParameterValues struct {
	ParameterNames []string
}

func (GetParameterValues) outboundMessage() {}

// SetParameterValues requests the device apply the given values.
type SetParameterValues struct {
	ParameterList []ParameterValueStruct
}

func (SetParameterValues) outboundMessage() {}

// AddObject requests creation of a new instance under ObjectName (a
// parent path, not a template path — the caller has already truncated
// any trailing instance placeholder).
type AddObject struct {
	ObjectName string
}

func (AddObject) outboundMessage() {}

// DeleteObject requests deletion of the object at ObjectName.
type DeleteObject struct {
	ObjectName string
}

func (DeleteObject) outboundMessage() {}

// Reboot requests an immediate device reboot.
type Reboot struct{}

func (Reboot) outboundMessage() {}

// FactoryReset requests the device restore factory defaults.
type FactoryReset struct{}

func (FactoryReset) outboundMessage() {}

// Download requests a firmware/file transfer.
type Download struct {
	URL            string
	Username       string
	Password       string
	FileType       string
	FileSize       int
	TargetFileName string
	MD5            string
}

func (Download) outboundMessage() {}

// Empty closes a round-trip with no further request.
type Empty struct{}

func (Empty) outboundMessage() {}
