package acs

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/enodebd-net/enodebd-acs/pkg/fsm"
	"github.com/enodebd-net/enodebd-acs/pkg/manager"
)

// ACS is the in-process control surface facade: the shape an
// external gRPC servicer or HTTP
// handler would wrap around the manager, and the surface
// cmd/enodebdctl drives directly for local operator use and
// integration testing without a real transport.
type ACS struct {
	mgr *manager.Manager

	mu        sync.RWMutex
	addresses map[string]string // serial -> last known IP, set by the transport layer on connect
}

// New builds an ACS facade over an already-wired manager.
func New(mgr *manager.Manager) *ACS {
	return &ACS{mgr: mgr, addresses: map[string]string{}}
}

// NoteConnection records the IP address a serial most recently
// connected from. The core itself has no transport-level addressing
// the transport calls this on every accepted
// session so GetEnodebStatus can report it.
func (a *ACS) NoteConnection(serial, ipAddress string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.addresses[serial] = ipAddress
}

func (a *ACS) handler(serial string) (*fsm.DeviceHandler, error) {
	h := a.mgr.Handler(serial)
	if h == nil {
		return nil, fmt.Errorf("acs: unknown or disconnected enodeb %q", serial)
	}
	return h, nil
}

// GetParameter returns the named parameter's current canonical value
// from device_cfg, along with the resolved canonical name.
func (a *ACS) GetParameter(serial, path string) (name string, value string, err error) {
	h, err := a.handler(serial)
	if err != nil {
		return "", "", err
	}
	pname, _, ok := h.DataModel().LookupByPath(path)
	if !ok {
		return "", "", fmt.Errorf("acs: %q declares no parameter at path %q", h.ModelKey(), path)
	}
	var v string
	var present bool
	h.WithLock(func() {
		v, present = h.DeviceConfig().GetParameter(pname)
	})
	if !present {
		return string(pname), "", fmt.Errorf("acs: no cached value for %q yet", path)
	}
	return string(pname), v, nil
}

// SetParameter stages a single parameter change into desired_cfg
// value must be an int, int64, bool, or string; any other Go
// type is an invalid-argument error.
func (a *ACS) SetParameter(serial, path string, value interface{}) error {
	h, err := a.handler(serial)
	if err != nil {
		return err
	}
	pname, _, ok := h.DataModel().LookupByPath(path)
	if !ok {
		return fmt.Errorf("acs: %q declares no parameter at path %q", h.ModelKey(), path)
	}
	str, err := renderValue(value)
	if err != nil {
		return fmt.Errorf("acs: SetParameter %q: %w", path, err)
	}
	return h.SetParameterASAP(pname, str)
}

func renderValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("invalid-argument: unsupported value type %T", value)
	}
}

// Reboot forces serial's handler into the manual reboot branch.
func (a *ACS) Reboot(serial string) error {
	h, err := a.handler(serial)
	if err != nil {
		return err
	}
	h.RebootASAP()
	return nil
}

// RebootAll reboots every currently known enodeb.
func (a *ACS) RebootAll() {
	for _, serial := range a.mgr.Serials() {
		if h := a.mgr.Handler(serial); h != nil {
			h.RebootASAP()
		}
	}
}

// DownloadResult timestamps are plain RFC 3339 strings rather than a
// transport-coupled Timestamp type.
type DownloadResult struct {
	Status       string
	StartTime    string
	CompleteTime string
}

// Download stages a firmware/file transfer and forces the manual
// download branch. StartTime/CompleteTime are left blank here — the
// handler enters the download branch at its next Step, after that
// step's Read, whatever state it is in; a transport-integrated ACS
// would fill these in from its own session bookkeeping. Status reports
// "queued" once staged.
func (a *ACS) Download(serial, url, user, password, targetFileName string, fileSize int, md5 string) (DownloadResult, error) {
	h, err := a.handler(serial)
	if err != nil {
		return DownloadResult{}, err
	}
	if err := h.DownloadASAP(url, user, password, targetFileName, fileSize, md5); err != nil {
		return DownloadResult{}, err
	}
	return DownloadResult{Status: "queued"}, nil
}

// GetStatus returns a flat string-keyed summary of every known enodeb,
// the way an overview health-check RPC would.
func (a *ACS) GetStatus() map[string]string {
	out := map[string]string{}
	serials := a.mgr.Serials()
	out["num_enodebs"] = strconv.Itoa(len(serials))
	for _, serial := range serials {
		h := a.mgr.Handler(serial)
		if h == nil {
			continue
		}
		out["enodeb."+serial+".fsm_state"] = string(h.CurrentState())
		out["enodeb."+serial+".model"] = string(h.ModelKey())
	}
	return out
}

// GetAllEnodebStatus returns the per-device status row for every
// currently known enodeb, sorted by serial.
func (a *ACS) GetAllEnodebStatus() []EnodebStatus {
	serials := a.mgr.Serials()
	out := make([]EnodebStatus, 0, len(serials))
	for _, serial := range serials {
		h := a.mgr.Handler(serial)
		if h == nil {
			continue
		}
		a.mu.RLock()
		ip := a.addresses[serial]
		a.mu.RUnlock()
		out = append(out, statusFor(h, ip))
	}
	return out
}

// GetEnodebStatus returns the status row for a single serial.
func (a *ACS) GetEnodebStatus(serial string) (EnodebStatus, error) {
	h, err := a.handler(serial)
	if err != nil {
		return EnodebStatus{}, err
	}
	a.mu.RLock()
	ip := a.addresses[serial]
	a.mu.RUnlock()
	return statusFor(h, ip), nil
}
