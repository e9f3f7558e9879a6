// Package manager implements the state-machine manager: it owns one
// DeviceHandler per physical eNB serial number, resolves the data
// model an Inform's (OUI, HW, SW) triple dispatches to via the shared
// datamodel.Registry, and re-creates a handler (preserving its serial)
// when a later Inform reports a changed triple. The serial-keyed map
// of live handlers sits behind a single sync.RWMutex; read-mostly
// accessors and mutating entry points take only the lock they need.
package manager

import (
	"fmt"
	"sort"
	"sync"

	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
	"github.com/enodebd-net/enodebd-acs/pkg/fsm"
	"github.com/enodebd-net/enodebd-acs/pkg/tr069"
	"github.com/enodebd-net/enodebd-acs/pkg/util"
)

// Factory builds a *fsm.DeviceHandler for a newly classified device.
// Supplied by the code wiring everything together (pkg/bootstrap, used
// by cmd/enodebdctl or an equivalent servicer), since only it knows how to assemble a
// model's state map, invasive policy, post-processor, and domain-proxy
// client from a ModelKey.
type Factory func(serial string, key datamodel.ModelKey, dm *datamodel.DataModel) (*fsm.DeviceHandler, error)

// Manager owns the serial -> handler map exclusively; each handler in
// turn exclusively owns its own configurations. Data
// model tables referenced through the Registry are shared-immutable.
type Manager struct {
	mu       sync.RWMutex
	registry *datamodel.Registry
	build    Factory

	handlers map[string]*fsm.DeviceHandler
	triples  map[string]datamodel.DeviceTriple // last classified triple per serial, for re-classification
}

// NewManager builds an empty manager bound to registry, which must
// already have every supported model registered (pkg/models.NewRegistry).
func NewManager(registry *datamodel.Registry, build Factory) *Manager {
	return &Manager{
		registry: registry,
		build:    build,
		handlers: map[string]*fsm.DeviceHandler{},
		triples:  map[string]datamodel.DeviceTriple{},
	}
}

// Handler returns the live handler for serial, or nil if none exists
// (the device has never Informed, or was evicted).
func (m *Manager) Handler(serial string) *fsm.DeviceHandler {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.handlers[serial]
}

// Serials returns every serial with a live handler, sorted for
// deterministic iteration (status RPCs, tests).
func (m *Manager) Serials() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.handlers))
	for s := range m.handlers {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// NotifyDisconnect is called by the transport when serial's connection
// drops mid-session; the handler survives with its configurations
// intact and resumes at wait_inform on the device's next Inform.
func (m *Manager) NotifyDisconnect(serial string) {
	if h := m.Handler(serial); h != nil {
		h.Disconnect()
	}
}

// Evict removes a handler, e.g. after explicit teardown.
func (m *Manager) Evict(serial string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.handlers, serial)
	delete(m.triples, serial)
}

// Dispatch routes one inbound message to the handler for serial and
// returns the outbound response. For an Inform, serial may be empty — the Inform's
// own DeviceID.SerialNumber is authoritative and is used to get-or-
// create the handler, reclassifying it if the reported triple changed.
// For every other message type the caller must already know
// which serial the in-flight session belongs to (transport session
// bookkeeping, out of this package's scope).
func (m *Manager) Dispatch(serial string, msg tr069.Inbound) (tr069.Outbound, error) {
	if inform, ok := msg.(tr069.Inform); ok {
		h, err := m.resolveForInform(inform)
		if err != nil {
			return nil, err
		}
		return h.Step(msg), nil
	}

	h := m.Handler(serial)
	if h == nil {
		return nil, fmt.Errorf("manager: no handler for serial %q (session state lost or device never informed)", serial)
	}
	return h.Step(msg), nil
}

// resolveForInform implements dispatch and re-classification:
// match the triple against the registry, and if the handler already
// live for this serial was built from a different triple, discard and
// rebuild it (preserving the serial).
func (m *Manager) resolveForInform(inform tr069.Inform) (*fsm.DeviceHandler, error) {
	serial := inform.DeviceID.SerialNumber
	observed := datamodel.DeviceTriple{
		OUI:             inform.DeviceID.OUI,
		HardwareVersion: inform.DeviceID.HardwareVersion,
		SoftwareVersion: inform.DeviceID.SoftwareVersion,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.handlers[serial]; ok {
		if m.triples[serial] == observed {
			return existing, nil
		}
		util.WithSerial(serial).Infof("device triple changed (%s -> %s), rebuilding handler", m.triples[serial], observed)
		delete(m.handlers, serial)
		delete(m.triples, serial)
	}

	key, dm, ok := m.registry.Match(observed)
	if !ok {
		return nil, &tr069.UnknownDeviceError{
			OUI: observed.OUI, HardwareVersion: observed.HardwareVersion, SoftwareVersion: observed.SoftwareVersion,
		}
	}

	h, err := m.build(serial, key, dm)
	if err != nil {
		return nil, fmt.Errorf("manager: building handler for serial %q model %s: %w", serial, key, err)
	}
	m.handlers[serial] = h
	m.triples[serial] = observed
	return h, nil
}
