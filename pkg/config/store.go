package config

import (
	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
)

// storeLogger is the subset of util.HandlerLogger Store needs. Declared
// locally rather than importing pkg/util so config stays a dependency
// leaf (pkg/util is process-wide plumbing; pkg/config is not).
type storeLogger interface {
	Debugf(format string, args ...interface{})
}

type noopStoreLogger struct{}

func (noopStoreLogger) Debugf(string, ...interface{}) {}

// Store is one mutable configuration snapshot — either device_cfg (what
// the eNB reports) or desired_cfg (what it should be). Values are
// always held in canonical form; transform_for_enb is applied only at
// emission and transform_for_magma only at ingestion, both outside
// this package.
type Store struct {
	dm      *datamodel.DataModel
	root    map[datamodel.ParameterName]string
	objects map[datamodel.ObjectID]map[datamodel.ParameterName]string
	logger  storeLogger
}

// NewStore creates an empty configuration snapshot bound to dm. dm is
// shared-immutable across every handler of the same device model.
// Logs nowhere until SetLogger is called (tests and one-off stores
// don't need one).
func NewStore(dm *datamodel.DataModel) *Store {
	return &Store{
		dm:      dm,
		root:    map[datamodel.ParameterName]string{},
		objects: map[datamodel.ObjectID]map[datamodel.ParameterName]string{},
		logger:  noopStoreLogger{},
	}
}

// SetLogger wires a handler's logger into the store, for the
// diagnostics DeleteParameter emits.
func (s *Store) SetLogger(logger storeLogger) {
	if logger == nil {
		logger = noopStoreLogger{}
	}
	s.logger = logger
}

func (s *Store) bucket(obj datamodel.ObjectID) (map[datamodel.ParameterName]string, bool) {
	if obj.IsRoot() {
		return s.root, true
	}
	b, ok := s.objects[obj]
	return b, ok
}

// SetParameter writes a root-level (non-indexed) parameter. name must
// have a TrParam in the data model — synthetic download parameters are
// the only exception, tolerated via their InvalidTrParamPath sentinel,
// but they must still be declared.
func (s *Store) SetParameter(name datamodel.ParameterName, value string) error {
	if _, ok := s.dm.Lookup(name); !ok {
		return errInvariant("set_parameter: %s has no TrParam in the data model", name)
	}
	s.root[name] = value
	return nil
}

// GetParameter returns a root-level parameter's canonical value.
func (s *Store) GetParameter(name datamodel.ParameterName) (string, bool) {
	v, ok := s.root[name]
	return v, ok
}

// HasParameter reports whether a root-level parameter has a cached value.
func (s *Store) HasParameter(name datamodel.ParameterName) bool {
	_, ok := s.root[name]
	return ok
}

// DeleteParameter removes a root-level parameter. Deleting a
// non-existent parameter is a no-op, logged at debug level.
func (s *Store) DeleteParameter(name datamodel.ParameterName) {
	if _, ok := s.root[name]; !ok {
		s.logger.Debugf("delete_parameter: %s not present, no-op", name)
		return
	}
	delete(s.root, name)
}

// AddObject registers a new instance of an indexed family. A no-op if
// the object already exists (idempotent, matching the object-reconciliation
// use from the diff engine's object-params-to-get pass).
func (s *Store) AddObject(obj datamodel.ObjectID) error {
	if obj.IsRoot() {
		return errInvariant("add_object: cannot add the root object")
	}
	if _, ok := s.objects[obj]; ok {
		return nil
	}
	s.objects[obj] = map[datamodel.ParameterName]string{}
	return nil
}

// DeleteObject removes an object and all of its parameter values.
func (s *Store) DeleteObject(obj datamodel.ObjectID) {
	delete(s.objects, obj)
}

// HasObject reports whether obj has been registered via AddObject.
func (s *Store) HasObject(obj datamodel.ObjectID) bool {
	_, ok := s.objects[obj]
	return ok
}

// Objects returns every registered object, in no particular order.
func (s *Store) Objects() []datamodel.ObjectID {
	out := make([]datamodel.ObjectID, 0, len(s.objects))
	for obj := range s.objects {
		out = append(out, obj)
	}
	return out
}

// SetParameterForObject writes a parameter within obj. Requires obj to
// already exist via AddObject.
func (s *Store) SetParameterForObject(obj datamodel.ObjectID, name datamodel.ParameterName, value string) error {
	if obj.IsRoot() {
		return s.SetParameter(name, value)
	}
	bucket, ok := s.objects[obj]
	if !ok {
		return errInvariant("set_parameter_for_object: object %s does not exist", obj.Name())
	}
	bucket[name] = value
	return nil
}

// GetParameterForObject returns a parameter's value within obj.
func (s *Store) GetParameterForObject(obj datamodel.ObjectID, name datamodel.ParameterName) (string, bool) {
	bucket, ok := s.bucket(obj)
	if !ok {
		return "", false
	}
	v, ok := bucket[name]
	return v, ok
}

// GetParameterNamesForObject returns the parameter names with cached
// values within obj.
func (s *Store) GetParameterNamesForObject(obj datamodel.ObjectID) []datamodel.ParameterName {
	bucket, ok := s.bucket(obj)
	if !ok {
		return nil
	}
	out := make([]datamodel.ParameterName, 0, len(bucket))
	for name := range bucket {
		out = append(out, name)
	}
	return out
}

// RenameObject moves all parameter values of an object to a new
// ObjectID, used by the AddObject-response index remap: the
// device assigns instance number n; the tentative slot the engine
// reserved is relabeled to n without losing any values already staged
// on it.
func (s *Store) RenameObject(from, to datamodel.ObjectID) {
	bucket, ok := s.objects[from]
	if !ok {
		return
	}
	delete(s.objects, from)
	s.objects[to] = bucket
}

// DataModel returns the data model this store is bound to.
func (s *Store) DataModel() *datamodel.DataModel {
	return s.dm
}
