package datamodel

import "fmt"

// ModelKey names a concrete device model the registry can dispatch to.
type ModelKey string

const (
	ModelBaicellsQAFA    ModelKey = "BaicellsQAFA"
	ModelBaicellsQAFAGPS ModelKey = "BaicellsQAFAGPS" // FAP.GPS.* firmware variant, see DESIGN.md
	ModelBaicellsQAFB    ModelKey = "BaicellsQAFB"
	ModelBaicellsQRTB    ModelKey = "BaicellsQRTB"
)

// DeviceTriple is the (OUI, HardwareVersion, SoftwareVersion) key an
// Inform's DeviceID is matched against.
type DeviceTriple struct {
	OUI             string
	HardwareVersion string
	SoftwareVersion string
}

// entry pairs a registered triple with the model it resolves to. A
// blank field in the registered triple matches any value in the probe
// (e.g. a model registered for all hardware versions of a given OUI).
type entry struct {
	triple DeviceTriple
	model  ModelKey
}

// Registry maps declared (OUI, HW, SW) triples to a ModelKey, and
// ModelKey to the shared, process-wide *DataModel for that model.
// Construct-once, read-only thereafter — safe for concurrent lookup
// from every handler's session loop.
type Registry struct {
	entries []entry
	models  map[ModelKey]*DataModel
}

// NewRegistry builds an empty registry. Use Register and RegisterModel
// to populate it, typically from a constructor in the package that
// defines the concrete data models (pkg/models.NewRegistry).
func NewRegistry() *Registry {
	return &Registry{models: map[ModelKey]*DataModel{}}
}

// RegisterModel associates a ModelKey with its process-wide DataModel.
func (r *Registry) RegisterModel(key ModelKey, dm *DataModel) {
	r.models[key] = dm
}

// Register declares that an Inform matching triple should dispatch to
// key. Triples are matched in registration order; the first match wins,
// so more specific triples should be registered before catch-alls.
func (r *Registry) Register(triple DeviceTriple, key ModelKey) {
	r.entries = append(r.entries, entry{triple: triple, model: key})
}

// Match resolves an observed (OUI, HW, SW) triple to a ModelKey and its
// DataModel. Returns false when nothing registered matches; callers in
// pkg/manager turn that into a *tr069.UnknownDeviceError.
func (r *Registry) Match(observed DeviceTriple) (ModelKey, *DataModel, bool) {
	for _, e := range r.entries {
		if tripleMatches(e.triple, observed) {
			return e.model, r.models[e.model], true
		}
	}
	return "", nil, false
}

// Model returns the DataModel registered under key.
func (r *Registry) Model(key ModelKey) (*DataModel, bool) {
	dm, ok := r.models[key]
	return dm, ok
}

func tripleMatches(registered, observed DeviceTriple) bool {
	return fieldMatches(registered.OUI, observed.OUI) &&
		fieldMatches(registered.HardwareVersion, observed.HardwareVersion) &&
		fieldMatches(registered.SoftwareVersion, observed.SoftwareVersion)
}

func fieldMatches(registered, observed string) bool {
	return registered == "" || registered == observed
}

// String renders a DeviceTriple for logging/error messages.
func (t DeviceTriple) String() string {
	return fmt.Sprintf("OUI=%s hw=%s sw=%s", t.OUI, t.HardwareVersion, t.SoftwareVersion)
}
