package fsm

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/enodebd-net/enodebd-acs/pkg/config"
	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
	"github.com/enodebd-net/enodebd-acs/pkg/tr069"
	"github.com/enodebd-net/enodebd-acs/pkg/util"
)

// InvasivePolicy selects how a handler reacts to an invasive parameter
// change after wait_set_params.
type InvasivePolicy int

const (
	// ApplyInPlace assumes the device applies invasive changes without
	// a reboot (QAFA/QAFB): when_apply_invasive == check_get_params.
	ApplyInPlace InvasivePolicy = iota
	// ApplyViaReboot routes invasive changes through the reboot branch
	// (QRTB): when_apply_invasive == reboot.
	ApplyViaReboot
)

// CBSDState is the result of a domain-proxy lookup for a CBRS-capable
// device. Defined here rather than in a cbrs-specific package so
// that fsm stays the dependency root; pkg/cbrs implements
// DomainProxyClient and the notify_dp State against these types.
type CBSDState struct {
	RadioEnabled  bool
	LowHz         float64
	HighHz        float64
	MaxEIRPDBmMHz float64
}

// DomainProxyClient is the external collaborator notify_dp consults.
// Only QRTB handlers are constructed with a non-nil client.
type DomainProxyClient interface {
	FetchCBSDState(ctx context.Context, serial string) (CBSDState, error)
}

// PostProcessor mutates desired_cfg after the operator configuration
// has been projected into it. Implemented per model in
// pkg/postprocess. It runs exactly once, applied by whoever builds a
// handler (pkg/bootstrap) immediately after construction and the
// opconfig projection — DeviceHandler itself has no further use for
// it, so it is not part of Config/stored on the handler.
type PostProcessor func(desired *config.Store)

// Config is the construction-time wiring for a DeviceHandler: the
// pieces that vary per device model and per deployment, gathered so
// that NewDeviceHandler takes one argument instead of a long list.
type Config struct {
	Serial         string
	ModelKey       datamodel.ModelKey
	DataModel      *datamodel.DataModel
	States         map[Label]State // typically BuildStandardStates (provisioning + manual + error states)
	InvasivePolicy InvasivePolicy
	DomainProxy    DomainProxyClient // nil unless the model wires notify_dp
	Logger         util.HandlerLogger
	Now            func() time.Time // injectable clock; defaults to time.Now
}

// DeviceHandler drives one physical eNB's TR-069 session for the
// lifetime of that device's connectivity. It owns its two
// configuration snapshots, the active state, and the pending-transition
// slot control RPCs write into. A handler processes at most one
// inbound message at a time; its mutex serializes both the session
// loop and control-RPC mutation.
type DeviceHandler struct {
	mu sync.Mutex

	serial   string
	modelKey datamodel.ModelKey
	dm       *datamodel.DataModel

	deviceCfg  *config.Store
	desiredCfg *config.Store

	states  map[Label]State
	current Label
	pending Label // set by a control RPC, applied at the next Emit

	invasivePolicy InvasivePolicy
	domainProxy    DomainProxyClient
	logger         util.HandlerLogger
	now            func() time.Time

	requestAllParams bool
	pendingQuery     []probeEntry

	pendingSetChanges  []config.ParamValueChange
	pendingInvasiveSet bool

	pendingDeleteTarget datamodel.ObjectID
	pendingAddTarget    datamodel.ObjectID

	postRebootTimer   Timer
	rebootInformTimer Timer

	lastFault error
}

// NewDeviceHandler constructs a handler in its initial state (wait_inform).
func NewDeviceHandler(cfg Config) *DeviceHandler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	h := &DeviceHandler{
		serial:         cfg.Serial,
		modelKey:       cfg.ModelKey,
		dm:             cfg.DataModel,
		deviceCfg:      config.NewStore(cfg.DataModel),
		desiredCfg:     config.NewStore(cfg.DataModel),
		states:         cfg.States,
		current:        LabelWaitInform,
		invasivePolicy: cfg.InvasivePolicy,
		domainProxy:    cfg.DomainProxy,
		logger:         cfg.Logger,
		now:            now,
	}
	h.deviceCfg.SetLogger(cfg.Logger)
	h.desiredCfg.SetLogger(cfg.Logger)
	return h
}

// Serial returns the device's serial number.
func (h *DeviceHandler) Serial() string { return h.serial }

// ModelKey returns the registered model this handler was built for.
func (h *DeviceHandler) ModelKey() datamodel.ModelKey { return h.modelKey }

// CurrentState returns the active state label, for status reporting.
func (h *DeviceHandler) CurrentState() Label {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentLocked()
}

// currentLocked is CurrentState's body, for callers that already hold
// h.mu (e.g. a WithLock closure) — h.mu is not reentrant, so those
// callers must not go through CurrentState itself.
func (h *DeviceHandler) currentLocked() Label {
	return h.current
}

// IsConnected reports whether the handler believes the device is
// mid-session (anything other than wait_inform or unexpected_fault).
func (h *DeviceHandler) IsConnected() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.isConnectedLocked()
}

// isConnectedLocked is IsConnected's body, for callers that already
// hold h.mu (see currentLocked).
func (h *DeviceHandler) isConnectedLocked() bool {
	return h.current != LabelWaitInform && h.current != LabelUnexpectedFault
}

// DeviceConfig and DesiredConfig expose the two configuration
// snapshots for read-mostly callers (status RPCs, tests). Callers must
// not retain these across Step calls without holding WithLock.
func (h *DeviceHandler) DeviceConfig() *config.Store  { return h.deviceCfg }
func (h *DeviceHandler) DesiredConfig() *config.Store { return h.desiredCfg }

// DataModel returns the shared, process-wide data model this handler
// was constructed against.
func (h *DeviceHandler) DataModel() *datamodel.DataModel { return h.dm }

// DomainProxy returns the handler's domain-proxy collaborator, or nil
// for non-CBRS models. Exposed so pkg/cbrs's notify_dp State (which
// cannot reach DeviceHandler's unexported fields) can reach it.
func (h *DeviceHandler) DomainProxy() DomainProxyClient { return h.domainProxy }

// Logger exposes the handler's logging capability to out-of-package
// State implementations such as pkg/cbrs's notify_dp.
func (h *DeviceHandler) Logger() util.HandlerLogger { return h.logger }

// SetLastFault records the most recently observed fault from an
// out-of-package State implementation (e.g. notify_dp's PSD-range
// check, which raises a *config.ConfigurationError rather than a
// *tr069.ProtocolFault).
func (h *DeviceHandler) SetLastFault(err error) { h.lastFault = err }

// WithLock runs fn with the handler's lock held, for callers (e.g. the
// control surface) that need a consistent read across several fields.
func (h *DeviceHandler) WithLock(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn()
}

// CurrentStateLocked and IsConnectedLocked are CurrentState/IsConnected
// without taking h.mu themselves: callers already inside a WithLock
// closure must use these instead, since h.mu is not reentrant.
func (h *DeviceHandler) CurrentStateLocked() Label { return h.currentLocked() }
func (h *DeviceHandler) IsConnectedLocked() bool   { return h.isConnectedLocked() }

// Now returns the handler's clock — states should read time through
// this accessor rather than time.Now so tests can inject a fake clock.
func (h *DeviceHandler) Now() time.Time { return h.now() }

// LastFault returns the most recently observed protocol/config fault,
// or nil.
func (h *DeviceHandler) LastFault() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastFault
}

// Step feeds one inbound message through the current state's Read,
// applies any pending control-RPC transition, and then calls Emit on
// whatever state is current afterward — a control-RPC transition takes
// effect at the next emit. Returns the outbound message to send.
func (h *DeviceHandler) Step(msg tr069.Inbound) tr069.Outbound {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stepLocked(msg)
}

func (h *DeviceHandler) stepLocked(msg tr069.Inbound) tr069.Outbound {
	st, ok := h.states[h.current]
	if !ok {
		h.logger.Errorf("no state registered for %q, resetting to wait_inform", h.current)
		h.current = LabelWaitInform
		st = h.states[h.current]
	}

	outcome := st.Read(h, msg)
	if !outcome.Handled {
		h.logger.Warnf("unexpected message in state %q", h.current)
		h.current = LabelUnexpectedFault
	} else if outcome.Next != "" {
		h.current = outcome.Next
	}

	if h.pending != "" {
		h.logger.Infof("control RPC preempting %q -> %q", h.current, h.pending)
		h.current = h.pending
		h.pending = ""
	}

	st, ok = h.states[h.current]
	if !ok {
		h.logger.Errorf("no state registered for %q, resetting to wait_inform", h.current)
		h.current = LabelWaitInform
		st = h.states[h.current]
	}
	emit := st.Emit(h)
	if emit.Next != "" {
		h.current = emit.Next
	}
	return emit.Msg
}

// requestTransition is the shared implementation behind the control-RPC
// entry points: it is safe to call from a non-session thread
// because it only sets the pending label under the handler's lock — no
// direct outbound emission happens from an RPC path.
func (h *DeviceHandler) requestTransition(label Label) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending = label
}

// Disconnect resets the handler to wait_inform after the transport
// reports loss of connectivity. Mid-session bookkeeping is
// dropped — the next Inform rebuilds it from scratch — but desired_cfg
// and the cached device_cfg survive, so reconnection converges without
// refetching values the device already reported.
func (h *DeviceHandler) Disconnect() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.logger.Infof("transport disconnected in state %q, resetting to wait_inform", h.current)
	h.current = LabelWaitInform
	h.pendingQuery = nil
	h.pendingSetChanges = nil
	h.pendingInvasiveSet = false
	h.postRebootTimer.Disarm()
	h.rebootInformTimer.Disarm()
}

// RebootASAP requests the manual reboot branch.
func (h *DeviceHandler) RebootASAP() {
	h.requestTransition(LabelReboot)
}

// FactoryResetASAP requests the manual factory-reset branch.
func (h *DeviceHandler) FactoryResetASAP() {
	h.requestTransition(LabelFactoryReset)
}

// downloadFileType is the fixed CWMP FileType value every Download RPC
// carries ("1 Firmware Upgrade Image" per TR-069 Annex A) — the control
// RPC surface has no file-type argument of its own, only a target
// file name.
const downloadFileType = "1 Firmware Upgrade Image"

// DownloadASAP stores the synthetic download parameters into
// desired_cfg and requests the manual download branch.
func (h *DeviceHandler) DownloadASAP(url, user, pass, targetFileName string, fileSize int, md5 string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for name, val := range map[datamodel.ParameterName]string{
		datamodel.ParamDownloadURL:            url,
		datamodel.ParamDownloadUser:           user,
		datamodel.ParamDownloadPass:           pass,
		datamodel.ParamDownloadFileType:       downloadFileType,
		datamodel.ParamDownloadFileSize:       strconv.Itoa(fileSize),
		datamodel.ParamDownloadMD5:            md5,
		datamodel.ParamDownloadTargetFileName: targetFileName,
	} {
		if err := h.desiredCfg.SetParameter(name, val); err != nil {
			return err
		}
	}
	h.pending = LabelDownload
	return nil
}

// SetParameterASAP validates and stages a single parameter change into
// desired_cfg; it takes effect through the normal provisioning loop on
// the device's next session, it does not itself force a
// transition.
func (h *DeviceHandler) SetParameterASAP(name datamodel.ParameterName, value string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.desiredCfg.SetParameter(name, value)
}
