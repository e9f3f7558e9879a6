// Package bootstrap wires the concrete Baicells model registry, the
// per-model invasive policy and post-processor, and an optional
// domain-proxy client into a manager.Factory, producing the *acs.ACS
// facade cmd/enodebdctl (or an equivalent servicer) drives. Kept as
// its own package so cmd/enodebdctl stays a thin cobra entrypoint and
// the wiring is testable independent of flag parsing.
package bootstrap

import (
	"fmt"

	"github.com/enodebd-net/enodebd-acs/pkg/acs"
	"github.com/enodebd-net/enodebd-acs/pkg/cbrs"
	"github.com/enodebd-net/enodebd-acs/pkg/datamodel"
	"github.com/enodebd-net/enodebd-acs/pkg/fsm"
	"github.com/enodebd-net/enodebd-acs/pkg/manager"
	"github.com/enodebd-net/enodebd-acs/pkg/models"
	"github.com/enodebd-net/enodebd-acs/pkg/opconfig"
	"github.com/enodebd-net/enodebd-acs/pkg/postprocess"
	"github.com/enodebd-net/enodebd-acs/pkg/util"
)

// Options configures the process-wide wiring.
type Options struct {
	// OperatorConfig supplies the ServiceConfig/GatewayConfig projected
	// into every handler's desired_cfg before its post-processor runs.
	// May be nil (an empty operator config is used).
	OperatorConfig *opconfig.OperatorConfig

	// DomainProxy is the shared SAS-facing client QRTB handlers use for
	// notify_dp. Leave nil to run without CBRS support — QRTB
	// devices then fail to build with a clear error, since notify_dp
	// requires a non-nil client.
	DomainProxy fsm.DomainProxyClient
}

// NewACS builds a fully wired manager and control-surface facade.
func NewACS(opts Options) *acs.ACS {
	registry := models.NewRegistry()
	mgr := manager.NewManager(registry, buildFactory(opts))
	return acs.New(mgr)
}

func buildFactory(opts Options) manager.Factory {
	return func(serial string, key datamodel.ModelKey, dm *datamodel.DataModel) (*fsm.DeviceHandler, error) {
		gwCfg := opts.OperatorConfig.GatewayConfigFor(serial)
		var svcCfg opconfig.ServiceConfig
		if opts.OperatorConfig != nil {
			svcCfg = opts.OperatorConfig.Service
		}

		states := fsm.BuildStandardStates()
		var policy fsm.InvasivePolicy
		var pp fsm.PostProcessor
		var domainProxy fsm.DomainProxyClient

		switch key {
		case datamodel.ModelBaicellsQAFA, datamodel.ModelBaicellsQAFAGPS:
			policy = fsm.ApplyInPlace
			pp = postprocess.QAFA(gwCfg, svcCfg)
		case datamodel.ModelBaicellsQAFB:
			policy = fsm.ApplyInPlace
			pp = postprocess.QAFB(gwCfg, svcCfg)
		case datamodel.ModelBaicellsQRTB:
			if opts.DomainProxy == nil {
				return nil, fmt.Errorf("bootstrap: model %s requires a domain-proxy client", key)
			}
			policy = fsm.ApplyViaReboot
			pp = postprocess.QRTB(gwCfg, svcCfg)
			domainProxy = opts.DomainProxy
			for label, st := range cbrs.BuildStates() {
				states[label] = st
			}
		default:
			return nil, fmt.Errorf("bootstrap: no wiring registered for model %s", key)
		}

		h := fsm.NewDeviceHandler(fsm.Config{
			Serial:         serial,
			ModelKey:       key,
			DataModel:      dm,
			States:         states,
			InvasivePolicy: policy,
			DomainProxy:    domainProxy,
			Logger:         util.NewHandlerLogger(serial),
		})

		opconfig.Project(h.DesiredConfig(), dm, gwCfg, svcCfg)
		pp(h.DesiredConfig())
		return h, nil
	}
}
